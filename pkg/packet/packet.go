package packet

import (
	"fmt"
	"strings"
	"sync/atomic"
)

var nextID atomic.Uint64

// Packet is a parsed packet: the raw receive buffer, the ordered stack
// of parsed header instances (outermost first), and the out-of-band
// metadata bags. A Packet is owned by exactly one processor at a time;
// Replicate is the only sanctioned way to create an independent copy.
type Packet struct {
	id       uint64
	parentID uint64

	buf        []byte
	headers    []*Header
	meta       map[string]*Header
	payloadOff int
	payloadLen int
}

// New wraps a raw receive buffer in an unparsed Packet, creating a
// zeroed metadata bag per metadata type.
func New(buf []byte, metaTypes map[string]*HeaderType) *Packet {
	p := &Packet{
		id:         nextID.Add(1),
		buf:        buf,
		meta:       make(map[string]*Header, len(metaTypes)),
		payloadLen: len(buf),
	}
	for name, typ := range metaTypes {
		p.meta[name] = NewHeader(name, typ)
	}
	return p
}

// ID returns the packet's unique id.
func (p *Packet) ID() uint64 { return p.id }

// ParentID returns the id of the packet this one was replicated from,
// or zero for an original.
func (p *Packet) ParentID() uint64 { return p.parentID }

// PayloadLen returns the number of unparsed trailing bytes.
func (p *Packet) PayloadLen() int { return p.payloadLen }

// HeaderLen returns the total serialized length of the header stack.
func (p *Packet) HeaderLen() int {
	n := 0
	for _, h := range p.headers {
		n += h.ByteLen()
	}
	return n
}

// Len returns the current total packet length (headers + payload).
func (p *Packet) Len() int { return p.HeaderLen() + p.payloadLen }

// ParseHeader extracts an instance of typ from the front of the payload
// and appends it to the header stack. It fails with ErrParseReject when
// the payload is too short and with ErrHeaderPresent on a duplicate
// instance name.
func (p *Packet) ParseHeader(instance string, typ *HeaderType) error {
	if p.headerIndex(instance) >= 0 {
		return fmt.Errorf("parse %s: %w", instance, ErrHeaderPresent)
	}
	h, err := ExtractHeader(instance, typ, p.buf, p.payloadOff)
	if err != nil {
		return err
	}
	p.headers = append(p.headers, h)
	p.payloadOff += h.ByteLen()
	p.payloadLen -= h.ByteLen()
	return nil
}

func (p *Packet) headerIndex(name string) int {
	for i, h := range p.headers {
		if h.name == name {
			return i
		}
	}
	return -1
}

// Header returns the named header instance from the stack or metadata,
// or an error wrapping ErrHeaderNotPresent.
func (p *Packet) Header(name string) (*Header, error) {
	if i := p.headerIndex(name); i >= 0 {
		return p.headers[i], nil
	}
	if m, ok := p.meta[name]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("header %s: %w", name, ErrHeaderNotPresent)
}

// HeaderValid reports whether the named header instance is present in
// the current stack. Metadata bags are always present and not reported
// here; this is the "valid" match-kind predicate.
func (p *Packet) HeaderValid(name string) bool {
	return p.headerIndex(name) >= 0
}

// Headers returns the header stack in order, outermost first.
func (p *Packet) Headers() []*Header { return p.headers }

func splitRef(ref string) (hdr, field string, err error) {
	hdr, field, ok := strings.Cut(ref, ".")
	if !ok || hdr == "" || field == "" {
		return "", "", fmt.Errorf("field ref %q: %w", ref, ErrUnknownField)
	}
	return hdr, field, nil
}

// GetField resolves a "hdr.field" reference against the header stack
// and metadata and returns the field value.
func (p *Packet) GetField(ref string) (uint64, error) {
	hdr, field, err := splitRef(ref)
	if err != nil {
		return 0, err
	}
	h, err := p.Header(hdr)
	if err != nil {
		return 0, err
	}
	return h.Get(field)
}

// SetField resolves a "hdr.field" reference and stores a value.
func (p *Packet) SetField(ref string, v uint64) error {
	hdr, field, err := splitRef(ref)
	if err != nil {
		return err
	}
	h, err := p.Header(hdr)
	if err != nil {
		return err
	}
	return h.Set(field, v)
}

// AddHeaderBefore inserts a zeroed instance of typ immediately before
// the existing header named anchor. Position is relative to an existing
// header so that indices shifted by earlier mutations do not matter.
func (p *Packet) AddHeaderBefore(instance string, typ *HeaderType, anchor string) (*Header, error) {
	return p.addHeader(instance, typ, anchor, 0)
}

// AddHeaderAfter inserts a zeroed instance of typ immediately after the
// existing header named anchor.
func (p *Packet) AddHeaderAfter(instance string, typ *HeaderType, anchor string) (*Header, error) {
	return p.addHeader(instance, typ, anchor, 1)
}

func (p *Packet) addHeader(instance string, typ *HeaderType, anchor string, delta int) (*Header, error) {
	if p.headerIndex(instance) >= 0 {
		return nil, fmt.Errorf("add %s: %w", instance, ErrHeaderPresent)
	}
	at := p.headerIndex(anchor)
	if at < 0 {
		return nil, fmt.Errorf("add %s: anchor %s: %w", instance, anchor, ErrHeaderNotPresent)
	}
	h := NewHeader(instance, typ)
	at += delta
	p.headers = append(p.headers, nil)
	copy(p.headers[at+1:], p.headers[at:])
	p.headers[at] = h
	return h, nil
}

// RemoveHeader deletes the named instance from the header stack. The
// payload is unaffected.
func (p *Packet) RemoveHeader(instance string) error {
	i := p.headerIndex(instance)
	if i < 0 {
		return fmt.Errorf("remove %s: %w", instance, ErrHeaderNotPresent)
	}
	p.headers = append(p.headers[:i], p.headers[i+1:]...)
	return nil
}

// Serialize rebuilds the wire buffer: each header in stack order
// followed by the unconsumed payload bytes.
func (p *Packet) Serialize() []byte {
	out := make([]byte, 0, p.Len())
	for _, h := range p.headers {
		out = h.AppendBytes(out)
	}
	return append(out, p.buf[p.payloadOff:p.payloadOff+p.payloadLen]...)
}

// Replicate returns a fully independent copy of the packet: buffer,
// header stack and metadata are deep-copied, so no mutable state is
// shared between the original and the replica.
func (p *Packet) Replicate() *Packet {
	r := &Packet{
		id:         nextID.Add(1),
		parentID:   p.id,
		buf:        append([]byte(nil), p.buf...),
		headers:    make([]*Header, len(p.headers)),
		meta:       make(map[string]*Header, len(p.meta)),
		payloadOff: p.payloadOff,
		payloadLen: p.payloadLen,
	}
	for i, h := range p.headers {
		r.headers[i] = h.Clone()
	}
	for name, m := range p.meta {
		r.meta[name] = m.Clone()
	}
	return r
}
