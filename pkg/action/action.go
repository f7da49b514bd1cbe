// Package action implements the named packet transformations invoked by
// match-action tables.
//
// An action is an ordered sequence of primitive operations over one
// parsed packet's fields and metadata (set a field, adjust a field,
// push or pop a header). Evaluation never blocks and never performs
// I/O; a primitive referencing a header absent from the packet's stack
// fails with packet.ErrHeaderNotPresent, which the pipeline treats as a
// drop of that packet only.
package action

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/psaab/refswitch/pkg/config"
	"github.com/psaab/refswitch/pkg/packet"
)

// operand is a primitive argument: an action parameter, a packet field
// reference, or a literal fixed at construction time.
type operand struct {
	param    string
	fieldRef string
	literal  uint64
	isLit    bool
}

func parseOperand(arg string) operand {
	if v, err := strconv.ParseInt(arg, 0, 64); err == nil {
		return operand{literal: uint64(v), isLit: true}
	}
	if strings.Contains(arg, ".") {
		return operand{fieldRef: arg}
	}
	return operand{param: arg}
}

func (o operand) resolve(pkt *packet.Packet, params map[string]uint64) (uint64, error) {
	switch {
	case o.isLit:
		return o.literal, nil
	case o.fieldRef != "":
		return pkt.GetField(o.fieldRef)
	default:
		v, ok := params[o.param]
		if !ok {
			return 0, fmt.Errorf("unbound action parameter %q", o.param)
		}
		return v, nil
	}
}

type primitive interface {
	eval(pkt *packet.Packet, params map[string]uint64) error
}

// modifyField sets dst to the resolved source value.
type modifyField struct {
	dst string
	src operand
}

func (m modifyField) eval(pkt *packet.Packet, params map[string]uint64) error {
	v, err := m.src.resolve(pkt, params)
	if err != nil {
		return err
	}
	return pkt.SetField(m.dst, v)
}

// addToField adds a (possibly negative) delta to a field, wrapping at
// the field's width.
type addToField struct {
	field string
	delta operand
}

func (a addToField) eval(pkt *packet.Packet, params map[string]uint64) error {
	cur, err := pkt.GetField(a.field)
	if err != nil {
		return err
	}
	d, err := a.delta.resolve(pkt, params)
	if err != nil {
		return err
	}
	hdr, field, _ := strings.Cut(a.field, ".")
	h, err := pkt.Header(hdr)
	if err != nil {
		return err
	}
	w, err := h.Type().FieldWidth(field)
	if err != nil {
		return err
	}
	v := cur + d
	if w < 64 {
		v &= (1 << uint(w)) - 1
	}
	return pkt.SetField(a.field, v)
}

// addHeader pushes a zeroed header instance before or after an anchor.
type addHeader struct {
	instance string
	typ      *packet.HeaderType
	before   bool
	anchor   string
}

func (a addHeader) eval(pkt *packet.Packet, _ map[string]uint64) error {
	var err error
	if a.before {
		_, err = pkt.AddHeaderBefore(a.instance, a.typ, a.anchor)
	} else {
		_, err = pkt.AddHeaderAfter(a.instance, a.typ, a.anchor)
	}
	return err
}

// removeHeader pops a header instance from the stack.
type removeHeader struct {
	instance string
}

func (r removeHeader) eval(pkt *packet.Packet, _ map[string]uint64) error {
	return pkt.RemoveHeader(r.instance)
}

type noOp struct{}

func (noOp) eval(*packet.Packet, map[string]uint64) error { return nil }

// Action is a named, constructed-once transformation applied to packets
// by table entries.
type Action struct {
	name   string
	params []string
	prims  []primitive
}

// New builds an Action from its validated definition. Header types
// referenced by add_header primitives are resolved against types here,
// so a bad reference fails at startup rather than per packet.
func New(def config.ActionDef, types map[string]*packet.HeaderType) (*Action, error) {
	a := &Action{name: def.Name, params: def.Params}
	for _, p := range def.Primitives {
		prim, err := buildPrimitive(def.Name, p, types)
		if err != nil {
			return nil, err
		}
		a.prims = append(a.prims, prim)
	}
	return a, nil
}

func buildPrimitive(action string, def config.PrimitiveDef, types map[string]*packet.HeaderType) (primitive, error) {
	switch def.Op {
	case config.OpModifyField:
		if len(def.Args) != 2 {
			return nil, fmt.Errorf("action %s: modify_field wants 2 args, got %d", action, len(def.Args))
		}
		return modifyField{dst: def.Args[0], src: parseOperand(def.Args[1])}, nil
	case config.OpAddToField:
		if len(def.Args) != 2 {
			return nil, fmt.Errorf("action %s: add_to_field wants 2 args, got %d", action, len(def.Args))
		}
		return addToField{field: def.Args[0], delta: parseOperand(def.Args[1])}, nil
	case config.OpAddHeader:
		if len(def.Args) != 4 {
			return nil, fmt.Errorf("action %s: add_header wants 4 args, got %d", action, len(def.Args))
		}
		typ, ok := types[def.Args[1]]
		if !ok {
			return nil, fmt.Errorf("action %s: add_header: unknown header type %s", action, def.Args[1])
		}
		switch def.Args[2] {
		case "before", "after":
		default:
			return nil, fmt.Errorf("action %s: add_header position %q not before/after", action, def.Args[2])
		}
		return addHeader{
			instance: def.Args[0],
			typ:      typ,
			before:   def.Args[2] == "before",
			anchor:   def.Args[3],
		}, nil
	case config.OpRemoveHeader:
		if len(def.Args) != 1 {
			return nil, fmt.Errorf("action %s: remove_header wants 1 arg, got %d", action, len(def.Args))
		}
		return removeHeader{instance: def.Args[0]}, nil
	case config.OpNoOp:
		return noOp{}, nil
	default:
		return nil, fmt.Errorf("action %s: unknown primitive %q", action, def.Op)
	}
}

// Name returns the action name.
func (a *Action) Name() string { return a.name }

// Params returns the declared parameter names.
func (a *Action) Params() []string { return a.params }

// Eval applies the action's primitives in order. Every declared
// parameter must be bound in params; values for undeclared names are
// ignored. The first failing primitive aborts the action; earlier
// primitives are not rolled back.
func (a *Action) Eval(pkt *packet.Packet, params map[string]uint64) error {
	for _, name := range a.params {
		if _, ok := params[name]; !ok {
			return fmt.Errorf("action %s: missing parameter %q", a.name, name)
		}
	}
	for _, p := range a.prims {
		if err := p.eval(pkt, params); err != nil {
			return fmt.Errorf("action %s: %w", a.name, err)
		}
	}
	return nil
}
