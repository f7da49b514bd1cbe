// Package parser implements the parse-state machine that turns a raw
// receive buffer into a typed header stack.
//
// States are held in an arena keyed by name and referenced by name, so
// the graph is cycle-safe and shareable read-only across threads. Each
// non-terminal state extracts one or more fixed-length headers at the
// current offset, computes a select value by concatenating just-read
// field values, and transitions on it; `accept` and `reject` are the
// terminals.
package parser

import (
	"fmt"

	"github.com/psaab/refswitch/pkg/config"
	"github.com/psaab/refswitch/pkg/packet"
)

type extract struct {
	instance string
	typ      *packet.HeaderType
}

type selectField struct {
	ref   string
	width int
}

type state struct {
	name        string
	extracts    []extract
	sel         []selectField
	transitions map[uint64]string
	def         string // wildcard next state; empty means accept
}

// Parser is a constructed-once, read-only parse graph.
type Parser struct {
	name   string
	start  string
	states map[string]*state
}

// New builds a Parser from its validated definition, resolving header
// types and select-field widths up front.
func New(def config.ParserDef, types map[string]*packet.HeaderType) (*Parser, error) {
	p := &Parser{
		name:   def.Name,
		start:  def.StartState,
		states: make(map[string]*state, len(def.States)),
	}

	// Instance name -> type, across all states, for select resolution.
	instTypes := make(map[string]*packet.HeaderType)
	for _, sd := range def.States {
		for _, ex := range sd.Extracts {
			typ, ok := types[ex.Type]
			if !ok {
				return nil, fmt.Errorf("parser %s: state %s: unknown header type %s", def.Name, sd.Name, ex.Type)
			}
			instTypes[ex.Instance] = typ
		}
	}

	for _, sd := range def.States {
		st := &state{
			name:        sd.Name,
			transitions: sd.Transitions,
			def:         sd.Default,
		}
		for _, ex := range sd.Extracts {
			st.extracts = append(st.extracts, extract{instance: ex.Instance, typ: types[ex.Type]})
		}
		for _, ref := range sd.Select {
			hdr, field, ok := cutRef(ref)
			if !ok {
				return nil, fmt.Errorf("parser %s: state %s: bad select ref %q", def.Name, sd.Name, ref)
			}
			typ, ok := instTypes[hdr]
			if !ok {
				return nil, fmt.Errorf("parser %s: state %s: select ref %q names unextracted instance", def.Name, sd.Name, ref)
			}
			w, err := typ.FieldWidth(field)
			if err != nil {
				return nil, fmt.Errorf("parser %s: state %s: %w", def.Name, sd.Name, err)
			}
			if w > 64 {
				return nil, fmt.Errorf("parser %s: state %s: select field %q wider than 64 bits", def.Name, sd.Name, ref)
			}
			st.sel = append(st.sel, selectField{ref: ref, width: w})
		}
		p.states[sd.Name] = st
	}

	if _, ok := p.states[p.start]; !ok {
		return nil, fmt.Errorf("parser %s: unknown start state %s", def.Name, p.start)
	}
	return p, nil
}

// Name returns the parser name.
func (p *Parser) Name() string { return p.name }

// StartState returns the default start state name.
func (p *Parser) StartState() string { return p.start }

// Parse runs the state machine over the packet's payload, growing its
// header stack. startState selects the entry state; empty means the
// parser's default. On reject (explicit, short buffer, or a malformed
// graph revisiting an extracted instance) it returns an error wrapping
// packet.ErrParseReject and the packet must be dropped.
//
// Progress is guaranteed: every non-terminal state extracts at least
// one fixed-length header under a unique instance name, so a cycle that
// stops consuming bytes terminates as a reject.
func (p *Parser) Parse(pkt *packet.Packet, startState string) error {
	cur := startState
	if cur == "" {
		cur = p.start
	}
	for {
		switch cur {
		case config.StateAccept:
			return nil
		case config.StateReject:
			return fmt.Errorf("parser %s: reached reject: %w", p.name, packet.ErrParseReject)
		}
		st, ok := p.states[cur]
		if !ok {
			return fmt.Errorf("parser %s: no such state %s: %w", p.name, cur, packet.ErrParseReject)
		}

		for _, ex := range st.extracts {
			if err := pkt.ParseHeader(ex.instance, ex.typ); err != nil {
				return fmt.Errorf("parser %s: state %s: %w", p.name, st.name, err)
			}
		}

		if len(st.sel) == 0 {
			if st.def == "" {
				return nil
			}
			cur = st.def
			continue
		}

		var sel uint64
		for _, sf := range st.sel {
			v, err := pkt.GetField(sf.ref)
			if err != nil {
				return fmt.Errorf("parser %s: state %s: select %s: %w", p.name, st.name, sf.ref, err)
			}
			sel = sel<<uint(sf.width) | v
		}

		next, ok := st.transitions[sel]
		if !ok {
			next = st.def
		}
		if next == "" {
			return nil
		}
		cur = next
	}
}

func cutRef(ref string) (string, string, bool) {
	for i := 0; i < len(ref); i++ {
		if ref[i] == '.' {
			return ref[:i], ref[i+1:], true
		}
	}
	return "", "", false
}
