// Package config holds the validated, typed configuration objects the
// switch core is built from: header layouts, parser graphs, tables,
// actions, control flows, traffic managers and the processor layout.
//
// Loading and schema validation of a configuration language is out of
// scope here; a loader produces these structs and hands them to the
// component constructors once at startup.
package config

import "fmt"

// MatchKind selects the comparison semantics for a table key field.
type MatchKind string

const (
	MatchExact   MatchKind = "exact"
	MatchTernary MatchKind = "ternary"
	MatchLPM     MatchKind = "lpm"
	MatchValid   MatchKind = "valid"
)

// Discipline selects the traffic manager dequeue scheduling.
type Discipline string

const (
	DisciplineStrict     Discipline = "strict"
	DisciplineRoundRobin Discipline = "round_robin"
)

// PortClass determines whether ingress packets on a port already carry
// an encapsulation header, which selects the parser start state.
type PortClass string

const (
	PortNative PortClass = "native"
	PortEncap  PortClass = "encap"
)

// Parser terminal state names.
const (
	StateAccept = "accept"
	StateReject = "reject"
)

// Control-flow exit target.
const FlowExit = "exit"

// FieldDef is one bit field inside a header type, in declared order.
type FieldDef struct {
	Name  string
	Width int // bits
}

// HeaderTypeDef is an ordered, fixed-length sequence of fields.
type HeaderTypeDef struct {
	Name   string
	Fields []FieldDef
}

// MetadataDef describes a bag of per-packet fields that are not present
// in the wire buffer. Every instance must define an "intrinsic_metadata"
// set containing an "egress_specification" field.
type MetadataDef struct {
	Name   string
	Fields []FieldDef
}

// ExtractDef names a header instance to extract and its type.
type ExtractDef struct {
	Instance string
	Type     string
}

// ParseStateDef is one non-terminal parser state: extract the listed
// headers at the current offset, compute the select value from the
// listed field refs, and transition on it.
type ParseStateDef struct {
	Name     string
	Extracts []ExtractDef
	// Select lists field refs (hdr.field) whose values are concatenated,
	// in order, to form the select value. Empty means the state is
	// terminal-bound via Default.
	Select      []string
	Transitions map[uint64]string
	// Default is the wildcard transition taken when no Transitions entry
	// matches. Empty means accept.
	Default string
}

// ParserDef is a parse-state machine with a distinguished start state.
type ParserDef struct {
	Name       string
	StartState string
	States     []ParseStateDef
}

// PrimitiveOp names an action primitive.
type PrimitiveOp string

const (
	OpModifyField  PrimitiveOp = "modify_field"
	OpAddToField   PrimitiveOp = "add_to_field"
	OpAddHeader    PrimitiveOp = "add_header"
	OpRemoveHeader PrimitiveOp = "remove_header"
	OpNoOp         PrimitiveOp = "no_op"
)

// PrimitiveDef is one primitive call inside an action implementation.
//
// Argument shapes:
//
//	modify_field(dst_field_ref, src)     src: param name, field ref or literal
//	add_to_field(field_ref, delta)       delta: param name or literal (two's complement)
//	add_header(instance, type, pos, anchor)  pos: "before" or "after"
//	remove_header(instance)
//	no_op()
type PrimitiveDef struct {
	Op   PrimitiveOp
	Args []string
}

// ActionDef declares a named action: its parameter names and the
// ordered primitives forming its implementation.
type ActionDef struct {
	Name       string
	Params     []string
	Primitives []PrimitiveDef
}

// MatchKeyDef is one field of a table key.
type MatchKeyDef struct {
	Field string // hdr.field ref; for MatchValid, a header instance name
	Kind  MatchKind
}

// TableDef declares a match-action table. AllowedActions is advisory
// and not enforced at lookup time.
type TableDef struct {
	Name           string
	Keys           []MatchKeyDef
	AllowedActions []string
}

// EdgeLabel labels an outgoing control-flow edge.
type EdgeLabel string

const (
	EdgeAlways  EdgeLabel = "always"
	EdgeHit     EdgeLabel = "hit"
	EdgeMiss    EdgeLabel = "miss"
	EdgeDefault EdgeLabel = "default"
)

// FlowNodeDef is a table node in a control-flow graph. Edge targets are
// table names or FlowExit; a label with no edge means implicit exit.
type FlowNodeDef struct {
	Table string
	Edges map[EdgeLabel]string
}

// ControlFlowDef is a directed graph of table nodes with a start node.
type ControlFlowDef struct {
	Name  string
	Start string
	Nodes []FlowNodeDef
}

// PortQueue addresses one queue on one port.
type PortQueue struct {
	Port  uint16
	Queue uint8
}

// TrafficManagerDef declares the queuing stage.
type TrafficManagerDef struct {
	Name          string
	QueuesPerPort int
	Discipline    Discipline
	// MulticastGroups maps a group id (egress_specification low bits
	// with the multicast bit set) to its member queues.
	MulticastGroups map[uint16][]PortQueue
}

// PortDef declares one switch port. StartState overrides the parser
// start state for packets arriving on the port; empty means the class
// default.
type PortDef struct {
	Number     uint16
	Class      PortClass
	StartState string
}

// EntryDef is the literal shape of a table entry as accepted by table
// initialization and the runtime management surface. A nil MatchValues
// denotes the default entry. For lpm key fields the mask value is a
// prefix length; for valid key fields the value is 0 or 1.
type EntryDef struct {
	Table        string
	MatchValues  map[string]uint64
	MatchMasks   map[string]uint64
	Priority     int
	Action       string
	ActionParams map[string]uint64
}

// Config is the full validated instance description consumed by the
// switch constructor.
type Config struct {
	Name            string
	PortCount       int
	HeaderTypes     []HeaderTypeDef
	Metadata        []MetadataDef
	Parsers         []ParserDef
	Actions         []ActionDef
	Tables          []TableDef
	ControlFlows    []ControlFlowDef
	TrafficManagers []TrafficManagerDef
	Ports           []PortDef
	// Layout is the ordered processor chain: parser, pipelines and
	// traffic managers by name. The transmit stage is appended
	// implicitly.
	Layout    []string
	TableInit []EntryDef
}

// Validate performs the structural checks the core relies on. Full
// schema validation belongs to the (external) configuration loader.
func (c *Config) Validate() error {
	if c.PortCount <= 0 {
		return fmt.Errorf("config %s: port count must be positive", c.Name)
	}
	if len(c.Layout) == 0 {
		return fmt.Errorf("config %s: empty processor layout", c.Name)
	}
	var intrinsic *MetadataDef
	for i := range c.Metadata {
		if c.Metadata[i].Name == "intrinsic_metadata" {
			intrinsic = &c.Metadata[i]
		}
	}
	if intrinsic == nil {
		return fmt.Errorf("config %s: missing intrinsic_metadata", c.Name)
	}
	found := false
	for _, f := range intrinsic.Fields {
		if f.Name == "egress_specification" {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("config %s: intrinsic_metadata lacks egress_specification", c.Name)
	}
	types := make(map[string]bool, len(c.HeaderTypes))
	for _, ht := range c.HeaderTypes {
		if types[ht.Name] {
			return fmt.Errorf("config %s: duplicate header type %s", c.Name, ht.Name)
		}
		types[ht.Name] = true
		off := 0
		for _, f := range ht.Fields {
			if f.Width <= 0 {
				return fmt.Errorf("header type %s: field %s has non-positive width", ht.Name, f.Name)
			}
			if f.Width > 64 {
				if f.Width%8 != 0 {
					return fmt.Errorf("header type %s: field %s wider than 64 bits must be byte aligned", ht.Name, f.Name)
				}
				if off%8 != 0 {
					return fmt.Errorf("header type %s: field %s wider than 64 bits must start on a byte boundary", ht.Name, f.Name)
				}
			}
			off += f.Width
		}
	}
	for _, p := range c.Parsers {
		states := make(map[string]bool, len(p.States))
		for _, st := range p.States {
			states[st.Name] = true
			for _, ex := range st.Extracts {
				if !types[ex.Type] {
					return fmt.Errorf("parser %s: state %s extracts unknown type %s", p.Name, st.Name, ex.Type)
				}
			}
		}
		valid := func(name string) bool {
			return name == "" || name == StateAccept || name == StateReject || states[name]
		}
		if !states[p.StartState] {
			return fmt.Errorf("parser %s: unknown start state %s", p.Name, p.StartState)
		}
		for _, st := range p.States {
			for _, next := range st.Transitions {
				if !valid(next) {
					return fmt.Errorf("parser %s: state %s transitions to unknown state %s", p.Name, st.Name, next)
				}
			}
			if !valid(st.Default) {
				return fmt.Errorf("parser %s: state %s defaults to unknown state %s", p.Name, st.Name, st.Default)
			}
		}
	}
	return nil
}
