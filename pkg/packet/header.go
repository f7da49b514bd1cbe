package packet

import "fmt"

// Header is a live occurrence of a HeaderType inside one packet's
// header stack, or a metadata bag. It owns decoded field values; it is
// mutable and owned exclusively by the packet that contains it.
type Header struct {
	name string
	typ  *HeaderType
	vals []uint64 // one slot per field; fields wider than 64 bits use wide
	wide [][]byte // non-nil slot for fields wider than 64 bits
}

// NewHeader returns a zero-valued instance of typ, used for metadata
// bags and for headers pushed by actions.
func NewHeader(name string, typ *HeaderType) *Header {
	h := &Header{
		name: name,
		typ:  typ,
		vals: make([]uint64, len(typ.fields)),
		wide: make([][]byte, len(typ.fields)),
	}
	for i, f := range typ.fields {
		if f.Width > 64 {
			h.wide[i] = make([]byte, f.Width/8)
		}
	}
	return h
}

// ExtractHeader decodes an instance of typ from buf starting at byte
// offset off. It returns an error wrapping ErrParseReject when fewer
// than typ.ByteLen() bytes remain.
func ExtractHeader(name string, typ *HeaderType, buf []byte, off int) (*Header, error) {
	if off+typ.ByteLen() > len(buf) {
		return nil, fmt.Errorf("header %s: need %d bytes at offset %d, have %d: %w",
			name, typ.ByteLen(), off, len(buf)-off, ErrParseReject)
	}
	h := NewHeader(name, typ)
	for i, f := range typ.fields {
		bitOff := off*8 + typ.offsets[i]
		if f.Width > 64 {
			copy(h.wide[i], buf[bitOff/8:bitOff/8+f.Width/8])
			continue
		}
		h.vals[i] = extractBits(buf, bitOff, f.Width)
	}
	return h, nil
}

// Name returns the instance name (e.g. "outer_ipv4").
func (h *Header) Name() string { return h.name }

// Type returns the header's type.
func (h *Header) Type() *HeaderType { return h.typ }

// ByteLen returns the serialized length of the instance in bytes.
func (h *Header) ByteLen() int { return h.typ.ByteLen() }

// Get returns the value of the named field. Fields wider than 64 bits
// are not readable through Get; use GetBytes.
func (h *Header) Get(field string) (uint64, error) {
	i, ok := h.typ.index[field]
	if !ok {
		return 0, fmt.Errorf("%s.%s: %w", h.name, field, ErrUnknownField)
	}
	if h.typ.fields[i].Width > 64 {
		return 0, fmt.Errorf("%s.%s: wide field: %w", h.name, field, ErrValueRange)
	}
	return h.vals[i], nil
}

// GetBytes returns the value of a field wider than 64 bits. The slice
// aliases the header's storage.
func (h *Header) GetBytes(field string) ([]byte, error) {
	i, ok := h.typ.index[field]
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", h.name, field, ErrUnknownField)
	}
	if h.wide[i] == nil {
		return nil, fmt.Errorf("%s.%s: not a wide field: %w", h.name, field, ErrValueRange)
	}
	return h.wide[i], nil
}

// Set stores a value into the named field. It fails with ErrValueRange
// when v does not fit in the field's width.
func (h *Header) Set(field string, v uint64) error {
	i, ok := h.typ.index[field]
	if !ok {
		return fmt.Errorf("%s.%s: %w", h.name, field, ErrUnknownField)
	}
	w := h.typ.fields[i].Width
	if w > 64 {
		return fmt.Errorf("%s.%s: wide field: %w", h.name, field, ErrValueRange)
	}
	if w < 64 && v >= 1<<uint(w) {
		return fmt.Errorf("%s.%s: value %#x exceeds %d bits: %w", h.name, field, v, w, ErrValueRange)
	}
	h.vals[i] = v
	return nil
}

// SetBytes stores a byte value into a field wider than 64 bits.
func (h *Header) SetBytes(field string, v []byte) error {
	i, ok := h.typ.index[field]
	if !ok {
		return fmt.Errorf("%s.%s: %w", h.name, field, ErrUnknownField)
	}
	if h.wide[i] == nil {
		return fmt.Errorf("%s.%s: not a wide field: %w", h.name, field, ErrValueRange)
	}
	if len(v) != len(h.wide[i]) {
		return fmt.Errorf("%s.%s: need %d bytes, got %d: %w", h.name, field, len(h.wide[i]), len(v), ErrValueRange)
	}
	copy(h.wide[i], v)
	return nil
}

// AppendBytes serializes the header's current field values onto dst in
// declared field order and returns the extended slice.
func (h *Header) AppendBytes(dst []byte) []byte {
	out := make([]byte, h.typ.ByteLen())
	for i, f := range h.typ.fields {
		if f.Width > 64 {
			copy(out[h.typ.offsets[i]/8:], h.wide[i])
			continue
		}
		writeBits(out, h.typ.offsets[i], f.Width, h.vals[i])
	}
	return append(dst, out...)
}

// Clone returns an independent deep copy of the header.
func (h *Header) Clone() *Header {
	c := &Header{
		name: h.name,
		typ:  h.typ,
		vals: make([]uint64, len(h.vals)),
		wide: make([][]byte, len(h.wide)),
	}
	copy(c.vals, h.vals)
	for i, w := range h.wide {
		if w != nil {
			c.wide[i] = append([]byte(nil), w...)
		}
	}
	return c
}
