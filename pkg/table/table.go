// Package table implements the match-action unit: a table maps a key
// extracted from packet fields to an entry naming an action and its
// parameters.
//
// Four match kinds are supported per key field: exact, ternary
// (value/mask), lpm (longest prefix) and valid (header presence). Entry
// sets are mutable at runtime; mutation is safe against concurrent
// lookups from the packet-processing threads.
package table

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/psaab/refswitch/pkg/action"
	"github.com/psaab/refswitch/pkg/config"
	"github.com/psaab/refswitch/pkg/packet"
)

// ErrTableConfig marks configuration-class failures: unknown actions or
// match fields, ambiguous duplicate exact entries. These surface at
// table construction or entry-add time, before packets are processed,
// and are the only error class eligible to be fatal at startup.
var ErrTableConfig = errors.New("table configuration")

// entry is one keyed table entry. The id is assigned at add time and
// breaks ties between otherwise equal candidates.
type entry struct {
	id       uint64
	values   map[string]uint64
	masks    map[string]uint64
	priority int
	action   string
	params   map[string]uint64
}

// Result is the outcome of a lookup: whether a keyed entry hit, and the
// selected action if any. A default-entry selection reports Hit=false
// while still naming an action.
type Result struct {
	Hit    bool
	Action string
	Params map[string]uint64
}

// Stats are the table's hit counters.
type Stats struct {
	Packets uint64
	Bytes   uint64
	Hits    uint64
	Misses  uint64
}

// Table is a runtime match-action table.
type Table struct {
	name    string
	keys    map[string]config.MatchKind
	ordered []config.MatchKeyDef
	actions map[string]*action.Action
	allowed map[string]bool // nil means unrestricted

	// anyMasked is true when the key includes ternary or lpm fields,
	// which makes multi-candidate resolution possible.
	anyMasked bool

	mu         sync.RWMutex
	entries    []*entry
	defaultEnt *entry
	nextID     uint64

	packets atomic.Uint64
	bytes   atomic.Uint64
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// New builds a Table from its validated definition and the instance's
// action map.
func New(def config.TableDef, actions map[string]*action.Action) (*Table, error) {
	t := &Table{
		name:    def.Name,
		keys:    make(map[string]config.MatchKind, len(def.Keys)),
		ordered: def.Keys,
		actions: actions,
	}
	for _, k := range def.Keys {
		switch k.Kind {
		case config.MatchExact, config.MatchTernary, config.MatchLPM, config.MatchValid:
		default:
			return nil, fmt.Errorf("table %s: key %s: unknown match kind %q: %w",
				def.Name, k.Field, k.Kind, ErrTableConfig)
		}
		if _, dup := t.keys[k.Field]; dup {
			return nil, fmt.Errorf("table %s: duplicate key field %s: %w", def.Name, k.Field, ErrTableConfig)
		}
		t.keys[k.Field] = k.Kind
		if k.Kind == config.MatchTernary || k.Kind == config.MatchLPM {
			t.anyMasked = true
		}
	}
	if len(def.AllowedActions) > 0 {
		t.allowed = make(map[string]bool, len(def.AllowedActions))
		for _, name := range def.AllowedActions {
			if _, ok := actions[name]; !ok {
				return nil, fmt.Errorf("table %s: allowed action %s not defined: %w",
					def.Name, name, ErrTableConfig)
			}
			t.allowed[name] = true
		}
	}
	return t, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Keys returns the ordered key definition.
func (t *Table) Keys() []config.MatchKeyDef { return t.ordered }

func (t *Table) checkAction(name string) error {
	if _, ok := t.actions[name]; !ok {
		return fmt.Errorf("table %s: unknown action %s: %w", t.name, name, ErrTableConfig)
	}
	if t.allowed != nil && !t.allowed[name] {
		return fmt.Errorf("table %s: action %s not allowed: %w", t.name, name, ErrTableConfig)
	}
	return nil
}

// AddEntry installs a keyed entry, or the default entry when the
// definition carries no match values. Safe to call while lookups are in
// flight.
func (t *Table) AddEntry(def config.EntryDef) error {
	if len(def.MatchValues) == 0 {
		return t.SetDefault(def.Action, def.ActionParams)
	}
	if err := t.checkAction(def.Action); err != nil {
		return err
	}
	for field := range def.MatchValues {
		if _, ok := t.keys[field]; !ok {
			return fmt.Errorf("table %s: match field %s not in key: %w", t.name, field, ErrTableConfig)
		}
	}
	for field := range def.MatchMasks {
		kind := t.keys[field]
		if kind != config.MatchTernary && kind != config.MatchLPM {
			return fmt.Errorf("table %s: mask for %s match field %s: %w", t.name, kind, field, ErrTableConfig)
		}
	}

	e := &entry{
		values:   cloneMap(def.MatchValues),
		masks:    cloneMap(def.MatchMasks),
		priority: def.Priority,
		action:   def.Action,
		params:   cloneMap(def.ActionParams),
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.anyMasked {
		// An exact-only key must stay unambiguous.
		for _, other := range t.entries {
			if equalMaps(other.values, e.values) {
				return fmt.Errorf("table %s: duplicate exact entry: %w", t.name, ErrTableConfig)
			}
		}
	}
	e.id = t.nextID
	t.nextID++
	t.entries = append(t.entries, e)
	slog.Debug("table entry added", "table", t.name, "id", e.id, "action", e.action)
	return nil
}

// RemoveEntry deletes entries whose match criteria and priority equal
// the given definition. It returns the number removed.
func (t *Table) RemoveEntry(def config.EntryDef) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	kept := t.entries[:0]
	removed := 0
	for _, e := range t.entries {
		if equalMaps(e.values, def.MatchValues) && equalMaps(e.masks, def.MatchMasks) && e.priority == def.Priority {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	t.entries = kept
	if removed > 0 {
		slog.Debug("table entries removed", "table", t.name, "count", removed)
	}
	return removed
}

// SetDefault installs or replaces the default entry.
func (t *Table) SetDefault(actionName string, params map[string]uint64) error {
	if err := t.checkAction(actionName); err != nil {
		return err
	}
	t.mu.Lock()
	t.defaultEnt = &entry{action: actionName, params: cloneMap(params)}
	t.mu.Unlock()
	return nil
}

// Clear removes all keyed entries. The default entry survives unless
// clearDefault is set.
func (t *Table) Clear(clearDefault bool) {
	t.mu.Lock()
	t.entries = nil
	if clearDefault {
		t.defaultEnt = nil
	}
	t.mu.Unlock()
}

// Lookup matches the packet against the keyed entry set.
//
// Candidate resolution is deterministic: the candidate with the longest
// total lpm prefix wins; remaining ties go to the highest priority,
// then to the lowest (earliest-added) entry id. When no keyed entry
// matches, the default entry's action is returned with Hit=false; with
// no default entry the zero Result reports a miss with no action.
func (t *Table) Lookup(pkt *packet.Packet) Result {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var best *entry
	bestPrefix := -1
	for _, e := range t.entries {
		prefix, ok := t.matchEntry(pkt, e)
		if !ok {
			continue
		}
		if !t.anyMasked {
			// Exact-only keys have at most one match by configuration
			// invariant; take the first.
			best = e
			break
		}
		if best == nil ||
			prefix > bestPrefix ||
			(prefix == bestPrefix && e.priority > best.priority) ||
			(prefix == bestPrefix && e.priority == best.priority && e.id < best.id) {
			best = e
			bestPrefix = prefix
		}
	}

	if best != nil {
		return Result{Hit: true, Action: best.action, Params: best.params}
	}
	if t.defaultEnt != nil {
		return Result{Hit: false, Action: t.defaultEnt.action, Params: t.defaultEnt.params}
	}
	return Result{}
}

// matchEntry reports whether the packet satisfies every field of the
// entry, and the total lpm prefix length for tie-break scoring.
func (t *Table) matchEntry(pkt *packet.Packet, e *entry) (prefix int, ok bool) {
	for field, want := range e.values {
		switch t.keys[field] {
		case config.MatchValid:
			present := pkt.HeaderValid(field)
			if present != (want != 0) {
				return 0, false
			}
		case config.MatchExact:
			v, err := pkt.GetField(field)
			if err != nil || v != want {
				return 0, false
			}
		case config.MatchTernary:
			v, err := pkt.GetField(field)
			if err != nil {
				return 0, false
			}
			mask, has := e.masks[field]
			if !has {
				mask = ^uint64(0)
			}
			if v&mask != want&mask {
				return 0, false
			}
		case config.MatchLPM:
			v, err := pkt.GetField(field)
			if err != nil {
				return 0, false
			}
			width, err := fieldWidth(pkt, field)
			if err != nil {
				return 0, false
			}
			plen := width
			if l, has := e.masks[field]; has {
				plen = int(l)
			}
			mask := prefixMask(plen, width)
			if v&mask != want&mask {
				return 0, false
			}
			prefix += plen
		}
	}
	return prefix, true
}

// Apply looks the packet up and evaluates the selected action, if any.
// The hit/miss outcome is recorded for control-flow edge selection. An
// action evaluation error is returned for the caller to drop the
// packet; it never unwinds the processing loop.
func (t *Table) Apply(pkt *packet.Packet) (Result, error) {
	res := t.Lookup(pkt)

	t.packets.Add(1)
	t.bytes.Add(uint64(pkt.Len()))
	if res.Hit {
		t.hits.Add(1)
	} else {
		t.misses.Add(1)
	}

	if res.Action == "" {
		return res, nil
	}
	act, ok := t.actions[res.Action]
	if !ok {
		return res, fmt.Errorf("table %s: entry names unknown action %s: %w", t.name, res.Action, ErrTableConfig)
	}
	if err := act.Eval(pkt, res.Params); err != nil {
		return res, fmt.Errorf("table %s: %w", t.name, err)
	}
	return res, nil
}

// Stats returns the current hit counters.
func (t *Table) Stats() Stats {
	return Stats{
		Packets: t.packets.Load(),
		Bytes:   t.bytes.Load(),
		Hits:    t.hits.Load(),
		Misses:  t.misses.Load(),
	}
}

// EntryInfo is a snapshot of one installed entry, for the management
// surface.
type EntryInfo struct {
	ID           uint64
	MatchValues  map[string]uint64
	MatchMasks   map[string]uint64
	Priority     int
	Action       string
	ActionParams map[string]uint64
}

// Entries returns a snapshot of the keyed entry set in id order.
func (t *Table) Entries() []EntryInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]EntryInfo, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, EntryInfo{
			ID:           e.id,
			MatchValues:  cloneMap(e.values),
			MatchMasks:   cloneMap(e.masks),
			Priority:     e.priority,
			Action:       e.action,
			ActionParams: cloneMap(e.params),
		})
	}
	return out
}

// Default returns the default entry's action and params, if set.
func (t *Table) Default() (string, map[string]uint64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.defaultEnt == nil {
		return "", nil, false
	}
	return t.defaultEnt.action, cloneMap(t.defaultEnt.params), true
}

func fieldWidth(pkt *packet.Packet, ref string) (int, error) {
	hdr, field, err := splitRef(ref)
	if err != nil {
		return 0, err
	}
	h, err := pkt.Header(hdr)
	if err != nil {
		return 0, err
	}
	return h.Type().FieldWidth(field)
}

func splitRef(ref string) (string, string, error) {
	for i := 0; i < len(ref); i++ {
		if ref[i] == '.' {
			return ref[:i], ref[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("bad field ref %q: %w", ref, ErrTableConfig)
}

func prefixMask(plen, width int) uint64 {
	if plen >= width {
		if width >= 64 {
			return ^uint64(0)
		}
		return (1 << uint(width)) - 1
	}
	if plen <= 0 {
		return 0
	}
	return ((1 << uint(plen)) - 1) << uint(width-plen)
}

func cloneMap(m map[string]uint64) map[string]uint64 {
	if m == nil {
		return nil
	}
	c := make(map[string]uint64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func equalMaps(a, b map[string]uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
