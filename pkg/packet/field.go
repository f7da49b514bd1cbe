// Package packet implements the typed field/header model and the parsed
// packet representation used throughout the forwarding pipeline.
//
// A HeaderType is an ordered sequence of bit fields with a fixed total
// width. A Header is a live instance of a type inside one packet's
// header stack, holding decoded field values. Field extraction and
// serialization use big-endian bit order, consistent with network byte
// order.
package packet

import (
	"fmt"

	"github.com/psaab/refswitch/pkg/config"
)

// FieldSpec is one field of a header type: a name and a width in bits.
type FieldSpec struct {
	Name  string
	Width int
}

// HeaderType is an immutable, ordered bit-field layout identified by
// name. Fields wider than 64 bits must be byte aligned and are handled
// as byte slices.
type HeaderType struct {
	name    string
	fields  []FieldSpec
	index   map[string]int
	offsets []int // bit offset of each field from header start
	bitLen  int
}

// NewHeaderType builds a HeaderType from its validated definition.
func NewHeaderType(def config.HeaderTypeDef) (*HeaderType, error) {
	t := &HeaderType{
		name:    def.Name,
		fields:  make([]FieldSpec, 0, len(def.Fields)),
		index:   make(map[string]int, len(def.Fields)),
		offsets: make([]int, 0, len(def.Fields)),
	}
	for _, f := range def.Fields {
		if f.Width <= 0 {
			return nil, fmt.Errorf("header type %s: field %s: non-positive width %d", def.Name, f.Name, f.Width)
		}
		if f.Width > 64 {
			if f.Width%8 != 0 {
				return nil, fmt.Errorf("header type %s: field %s: width %d > 64 must be byte aligned", def.Name, f.Name, f.Width)
			}
			// Wide fields are copied bytewise, so the offset must be
			// byte aligned too.
			if t.bitLen%8 != 0 {
				return nil, fmt.Errorf("header type %s: field %s: wide field at bit offset %d must start on a byte boundary", def.Name, f.Name, t.bitLen)
			}
		}
		if _, dup := t.index[f.Name]; dup {
			return nil, fmt.Errorf("header type %s: duplicate field %s", def.Name, f.Name)
		}
		t.index[f.Name] = len(t.fields)
		t.offsets = append(t.offsets, t.bitLen)
		t.fields = append(t.fields, FieldSpec{Name: f.Name, Width: f.Width})
		t.bitLen += f.Width
	}
	return t, nil
}

// Name returns the type name.
func (t *HeaderType) Name() string { return t.name }

// BitLen returns the total width of the header in bits.
func (t *HeaderType) BitLen() int { return t.bitLen }

// ByteLen returns the header length in bytes, rounded up.
func (t *HeaderType) ByteLen() int { return (t.bitLen + 7) / 8 }

// Fields returns the ordered field specs.
func (t *HeaderType) Fields() []FieldSpec { return t.fields }

// FieldWidth returns the bit width of the named field, or an error
// wrapping ErrUnknownField.
func (t *HeaderType) FieldWidth(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%s.%s: %w", t.name, name, ErrUnknownField)
	}
	return t.fields[i].Width, nil
}

var byteMask = [9]byte{0, 0x01, 0x03, 0x07, 0x0f, 0x1f, 0x3f, 0x7f, 0xff}

// extractBits reads width bits starting bitOff bits into buf, high bit
// first, and returns them right-aligned. The caller guarantees the
// range is inside buf. width must be <= 64.
func extractBits(buf []byte, bitOff, width int) uint64 {
	var v uint64
	for width > 0 {
		b := buf[bitOff/8]
		off := bitOff % 8
		take := 8 - off
		if take > width {
			take = width
		}
		shift := 8 - off - take
		v = v<<uint(take) | uint64((b>>uint(shift))&byteMask[take])
		bitOff += take
		width -= take
	}
	return v
}

// writeBits stores the low width bits of v into buf starting at bitOff,
// high bit first, preserving surrounding bits. width must be <= 64.
func writeBits(buf []byte, bitOff, width int, v uint64) {
	for width > 0 {
		off := bitOff % 8
		take := 8 - off
		if take > width {
			take = width
		}
		shift := 8 - off - take
		mask := byteMask[take] << uint(shift)
		part := byte(v>>uint(width-take)) & byteMask[take]
		idx := bitOff / 8
		buf[idx] = buf[idx]&^mask | part<<uint(shift)
		bitOff += take
		width -= take
	}
}
