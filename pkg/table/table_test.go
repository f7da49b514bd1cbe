package table

import (
	"errors"
	"sync"
	"testing"

	"github.com/psaab/refswitch/pkg/action"
	"github.com/psaab/refswitch/pkg/config"
	"github.com/psaab/refswitch/pkg/packet"
)

// testEnv builds a small universe: one header with an 8-bit flags field
// and a 32-bit address field, plus a mark action writing its parameter
// into metadata.
type testEnv struct {
	types   map[string]*packet.HeaderType
	actions map[string]*action.Action
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{types: map[string]*packet.HeaderType{}}
	defs := []config.HeaderTypeDef{
		{Name: "hdr", Fields: []config.FieldDef{
			{Name: "flags", Width: 8},
			{Name: "addr", Width: 32},
		}},
		{Name: "meta", Fields: []config.FieldDef{
			{Name: "mark", Width: 32},
		}},
	}
	for _, d := range defs {
		typ, err := packet.NewHeaderType(d)
		if err != nil {
			t.Fatalf("NewHeaderType(%s): %v", d.Name, err)
		}
		env.types[d.Name] = typ
	}
	mark, err := action.New(config.ActionDef{
		Name:   "mark",
		Params: []string{"value"},
		Primitives: []config.PrimitiveDef{
			{Op: config.OpModifyField, Args: []string{"meta.mark", "value"}},
		},
	}, env.types)
	if err != nil {
		t.Fatalf("action.New: %v", err)
	}
	noop, err := action.New(config.ActionDef{
		Name:       "noop",
		Primitives: []config.PrimitiveDef{{Op: config.OpNoOp}},
	}, env.types)
	if err != nil {
		t.Fatalf("action.New: %v", err)
	}
	env.actions = map[string]*action.Action{"mark": mark, "noop": noop}
	return env
}

// pkt builds a parsed packet whose hdr.flags and hdr.addr carry the
// given values.
func (env *testEnv) pkt(t *testing.T, flags uint64, addr uint64) *packet.Packet {
	t.Helper()
	buf := make([]byte, 16)
	buf[0] = byte(flags)
	buf[1] = byte(addr >> 24)
	buf[2] = byte(addr >> 16)
	buf[3] = byte(addr >> 8)
	buf[4] = byte(addr)
	p := packet.New(buf, map[string]*packet.HeaderType{"meta": env.types["meta"]})
	if err := p.ParseHeader("hdr", env.types["hdr"]); err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	return p
}

func (env *testEnv) table(t *testing.T, keys ...config.MatchKeyDef) *Table {
	t.Helper()
	tbl, err := New(config.TableDef{Name: "t", Keys: keys}, env.actions)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tbl
}

func TestExactMatch(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.flags", Kind: config.MatchExact})

	if err := tbl.AddEntry(config.EntryDef{
		MatchValues:  map[string]uint64{"hdr.flags": 7},
		Action:       "mark",
		ActionParams: map[string]uint64{"value": 1},
	}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	if res := tbl.Lookup(env.pkt(t, 7, 0)); !res.Hit || res.Action != "mark" {
		t.Fatalf("lookup(7) = %+v, want mark hit", res)
	}
	if res := tbl.Lookup(env.pkt(t, 8, 0)); res.Hit || res.Action != "" {
		t.Fatalf("lookup(8) = %+v, want miss", res)
	}
}

func TestExactDuplicateRejected(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.flags", Kind: config.MatchExact})
	e := config.EntryDef{
		MatchValues: map[string]uint64{"hdr.flags": 7},
		Action:      "noop",
	}
	if err := tbl.AddEntry(e); err != nil {
		t.Fatalf("first AddEntry: %v", err)
	}
	if err := tbl.AddEntry(e); !errors.Is(err, ErrTableConfig) {
		t.Fatalf("duplicate AddEntry: err = %v, want ErrTableConfig", err)
	}
}

func TestEmptyMatchValuesInstallsDefault(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.flags", Kind: config.MatchExact})

	// An entry with an empty (but non-nil) match map addresses the
	// default entry, same as a nil map. It must never become a keyed
	// entry that matches every packet as a hit.
	if err := tbl.AddEntry(config.EntryDef{
		MatchValues:  map[string]uint64{},
		Action:       "mark",
		ActionParams: map[string]uint64{"value": 9},
	}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if n := len(tbl.Entries()); n != 0 {
		t.Fatalf("keyed entries = %d, want 0", n)
	}
	res := tbl.Lookup(env.pkt(t, 7, 0))
	if res.Hit {
		t.Error("default entry must report a miss")
	}
	if res.Action != "mark" || res.Params["value"] != 9 {
		t.Errorf("result = %+v, want default action mark", res)
	}
}

func TestTernaryMatch(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.flags", Kind: config.MatchTernary})

	if err := tbl.AddEntry(config.EntryDef{
		MatchValues: map[string]uint64{"hdr.flags": 0b1010},
		MatchMasks:  map[string]uint64{"hdr.flags": 0b1110},
		Action:      "noop",
	}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	if res := tbl.Lookup(env.pkt(t, 0b1011, 0)); !res.Hit {
		t.Error("0b1011 should match value 0b1010 under mask 0b1110")
	}
	if res := tbl.Lookup(env.pkt(t, 0b0010, 0)); res.Hit {
		t.Error("0b0010 should not match value 0b1010 under mask 0b1110")
	}
}

func TestTernaryMissingMaskIsExact(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.flags", Kind: config.MatchTernary})
	if err := tbl.AddEntry(config.EntryDef{
		MatchValues: map[string]uint64{"hdr.flags": 0x42},
		Action:      "noop",
	}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if res := tbl.Lookup(env.pkt(t, 0x42, 0)); !res.Hit {
		t.Error("exact value should match with absent mask")
	}
	if res := tbl.Lookup(env.pkt(t, 0x43, 0)); res.Hit {
		t.Error("differing value should not match with absent mask")
	}
}

func TestLPMTieBreak(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.addr", Kind: config.MatchLPM})

	// Insert the shorter prefix first; insertion order must not matter.
	if err := tbl.AddEntry(config.EntryDef{
		MatchValues:  map[string]uint64{"hdr.addr": 0x0a000000}, // 10.0.0.0/16
		MatchMasks:   map[string]uint64{"hdr.addr": 16},
		Action:       "mark",
		ActionParams: map[string]uint64{"value": 16},
	}); err != nil {
		t.Fatalf("AddEntry /16: %v", err)
	}
	if err := tbl.AddEntry(config.EntryDef{
		MatchValues:  map[string]uint64{"hdr.addr": 0x0a000100}, // 10.0.1.0/24
		MatchMasks:   map[string]uint64{"hdr.addr": 24},
		Action:       "mark",
		ActionParams: map[string]uint64{"value": 24},
	}); err != nil {
		t.Fatalf("AddEntry /24: %v", err)
	}

	res := tbl.Lookup(env.pkt(t, 0, 0x0a000105))
	if !res.Hit || res.Params["value"] != 24 {
		t.Fatalf("lookup = %+v, want /24 entry", res)
	}
	res = tbl.Lookup(env.pkt(t, 0, 0x0a00ff05))
	if !res.Hit || res.Params["value"] != 16 {
		t.Fatalf("lookup = %+v, want /16 entry", res)
	}
}

func TestPriorityTieBreak(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.flags", Kind: config.MatchTernary})

	add := func(priority int, value uint64) {
		t.Helper()
		if err := tbl.AddEntry(config.EntryDef{
			MatchValues:  map[string]uint64{"hdr.flags": 0},
			MatchMasks:   map[string]uint64{"hdr.flags": 0}, // wildcard
			Priority:     priority,
			Action:       "mark",
			ActionParams: map[string]uint64{"value": value},
		}); err != nil {
			t.Fatalf("AddEntry: %v", err)
		}
	}
	add(1, 100)
	add(9, 900)
	add(5, 500)

	for i := 0; i < 10; i++ {
		res := tbl.Lookup(env.pkt(t, uint64(i), 0))
		if !res.Hit || res.Params["value"] != 900 {
			t.Fatalf("iteration %d: lookup = %+v, want priority-9 entry", i, res)
		}
	}
}

func TestEqualPriorityLowestIDWins(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.flags", Kind: config.MatchTernary})
	for i, v := range []uint64{111, 222} {
		if err := tbl.AddEntry(config.EntryDef{
			MatchValues:  map[string]uint64{"hdr.flags": 0},
			MatchMasks:   map[string]uint64{"hdr.flags": 0},
			Priority:     4,
			Action:       "mark",
			ActionParams: map[string]uint64{"value": v},
		}); err != nil {
			t.Fatalf("AddEntry %d: %v", i, err)
		}
	}
	res := tbl.Lookup(env.pkt(t, 0, 0))
	if res.Params["value"] != 111 {
		t.Fatalf("equal priority resolved to %+v, want earliest-added entry", res)
	}
}

func TestDefaultFallback(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.flags", Kind: config.MatchExact})
	if err := tbl.SetDefault("mark", map[string]uint64{"value": 99}); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}

	res := tbl.Lookup(env.pkt(t, 1, 0))
	if res.Hit {
		t.Error("default selection must report miss for edge selection")
	}
	if res.Action != "mark" || res.Params["value"] != 99 {
		t.Fatalf("default result = %+v", res)
	}
}

func TestValidMatchKind(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr", Kind: config.MatchValid})
	if err := tbl.AddEntry(config.EntryDef{
		MatchValues: map[string]uint64{"hdr": 1},
		Action:      "noop",
	}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	if res := tbl.Lookup(env.pkt(t, 0, 0)); !res.Hit {
		t.Error("packet with hdr present should match valid=1")
	}
	bare := packet.New(make([]byte, 4), map[string]*packet.HeaderType{"meta": env.types["meta"]})
	if res := tbl.Lookup(bare); res.Hit {
		t.Error("packet without hdr should not match valid=1")
	}
}

func TestApplyEvaluatesAction(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.flags", Kind: config.MatchExact})
	if err := tbl.AddEntry(config.EntryDef{
		MatchValues:  map[string]uint64{"hdr.flags": 5},
		Action:       "mark",
		ActionParams: map[string]uint64{"value": 77},
	}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	p := env.pkt(t, 5, 0)
	res, err := tbl.Apply(p)
	if err != nil || !res.Hit {
		t.Fatalf("Apply = %+v, %v", res, err)
	}
	if v, _ := p.GetField("meta.mark"); v != 77 {
		t.Fatalf("meta.mark = %d, want 77", v)
	}

	st := tbl.Stats()
	if st.Packets != 1 || st.Hits != 1 || st.Misses != 0 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestAddEntryValidation(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.flags", Kind: config.MatchExact})

	if err := tbl.AddEntry(config.EntryDef{
		MatchValues: map[string]uint64{"hdr.other": 1},
		Action:      "noop",
	}); !errors.Is(err, ErrTableConfig) {
		t.Errorf("non-key field: err = %v, want ErrTableConfig", err)
	}
	if err := tbl.AddEntry(config.EntryDef{
		MatchValues: map[string]uint64{"hdr.flags": 1},
		Action:      "nonesuch",
	}); !errors.Is(err, ErrTableConfig) {
		t.Errorf("unknown action: err = %v, want ErrTableConfig", err)
	}
	if err := tbl.AddEntry(config.EntryDef{
		MatchValues: map[string]uint64{"hdr.flags": 1},
		MatchMasks:  map[string]uint64{"hdr.flags": 0xf},
		Action:      "noop",
	}); !errors.Is(err, ErrTableConfig) {
		t.Errorf("mask on exact field: err = %v, want ErrTableConfig", err)
	}
}

func TestRemoveEntry(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.flags", Kind: config.MatchExact})
	e := config.EntryDef{
		MatchValues: map[string]uint64{"hdr.flags": 3},
		Action:      "noop",
	}
	if err := tbl.AddEntry(e); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if n := tbl.RemoveEntry(e); n != 1 {
		t.Fatalf("RemoveEntry = %d, want 1", n)
	}
	if res := tbl.Lookup(env.pkt(t, 3, 0)); res.Hit {
		t.Error("entry should be gone")
	}
	if n := tbl.RemoveEntry(e); n != 0 {
		t.Errorf("second RemoveEntry = %d, want 0", n)
	}
}

// TestConcurrentUpdateDuringLookup exercises the update discipline:
// lookups racing with entry churn must always see a consistent entry
// set and never a partially-updated one.
func TestConcurrentUpdateDuringLookup(t *testing.T) {
	env := newEnv(t)
	tbl := env.table(t, config.MatchKeyDef{Field: "hdr.flags", Kind: config.MatchTernary})
	if err := tbl.SetDefault("mark", map[string]uint64{"value": 1}); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		e := config.EntryDef{
			MatchValues:  map[string]uint64{"hdr.flags": 1},
			MatchMasks:   map[string]uint64{"hdr.flags": 0xff},
			Action:       "mark",
			ActionParams: map[string]uint64{"value": 2},
		}
		for {
			select {
			case <-stop:
				return
			default:
			}
			if err := tbl.AddEntry(e); err != nil {
				t.Errorf("AddEntry: %v", err)
				return
			}
			tbl.RemoveEntry(e)
		}
	}()

	p := env.pkt(t, 1, 0)
	for i := 0; i < 10000; i++ {
		res := tbl.Lookup(p)
		if res.Action != "mark" {
			t.Fatalf("lookup %d: result %+v", i, res)
		}
		if v := res.Params["value"]; v != 1 && v != 2 {
			t.Fatalf("lookup %d: inconsistent view %+v", i, res)
		}
	}
	close(stop)
	wg.Wait()
}
