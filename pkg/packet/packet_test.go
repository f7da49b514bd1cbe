package packet

import (
	"bytes"
	"errors"
	"testing"

	"github.com/psaab/refswitch/pkg/config"
)

func intrinsicType(t *testing.T) *HeaderType {
	t.Helper()
	typ, err := NewHeaderType(config.HeaderTypeDef{
		Name: "intrinsic_metadata",
		Fields: []config.FieldDef{
			{Name: "ingress_port", Width: 16},
			{Name: "egress_port", Width: 16},
			{Name: "egress_specification", Width: 32},
		},
	})
	if err != nil {
		t.Fatalf("NewHeaderType: %v", err)
	}
	return typ
}

func testPacket(t *testing.T, n int) *Packet {
	t.Helper()
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i)
	}
	return New(buf, map[string]*HeaderType{"intrinsic_metadata": intrinsicType(t)})
}

func TestParseHeaderConsumesPayload(t *testing.T) {
	p := testPacket(t, 100)
	if p.PayloadLen() != 100 || p.HeaderLen() != 0 {
		t.Fatalf("fresh packet: payload %d, headers %d", p.PayloadLen(), p.HeaderLen())
	}

	if err := p.ParseHeader("ethernet", ethernetType(t)); err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if p.PayloadLen() != 86 || p.HeaderLen() != 14 {
		t.Fatalf("after ethernet: payload %d, headers %d", p.PayloadLen(), p.HeaderLen())
	}
	if !p.HeaderValid("ethernet") {
		t.Fatal("ethernet should be valid")
	}
	if p.HeaderValid("ipv4") {
		t.Fatal("ipv4 should not be valid")
	}
}

func TestGetSetField(t *testing.T) {
	p := testPacket(t, 100)
	if err := p.ParseHeader("ethernet", ethernetType(t)); err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}

	if _, err := p.GetField("ipv4.version"); !errors.Is(err, ErrHeaderNotPresent) {
		t.Errorf("get on unparsed header: err = %v, want ErrHeaderNotPresent", err)
	}
	if err := p.SetField("ipv4.version", 4); !errors.Is(err, ErrHeaderNotPresent) {
		t.Errorf("set on unparsed header: err = %v, want ErrHeaderNotPresent", err)
	}
	if _, err := p.GetField("ethernet.nonesuch"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("get of unknown field: err = %v, want ErrUnknownField", err)
	}
	if err := p.SetField("ethernet.ethertype", 1<<16); !errors.Is(err, ErrValueRange) {
		t.Errorf("oversized set: err = %v, want ErrValueRange", err)
	}

	if err := p.SetField("ethernet.ethertype", 0x17); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	v, err := p.GetField("ethernet.ethertype")
	if err != nil || v != 0x17 {
		t.Fatalf("GetField after set = %#x, %v; want 0x17", v, err)
	}
	// Idempotent: a second get with no intervening set returns the same.
	v2, _ := p.GetField("ethernet.ethertype")
	if v2 != v {
		t.Fatalf("repeated GetField = %#x, want %#x", v2, v)
	}
	// Neighbor fields untouched.
	if mac, _ := p.GetField("ethernet.dst_mac"); mac != 0x000102030405 {
		t.Errorf("dst_mac disturbed by ethertype set: %#x", mac)
	}

	// Metadata resolves through the same reference syntax.
	if err := p.SetField("intrinsic_metadata.egress_specification", 3); err != nil {
		t.Fatalf("metadata set: %v", err)
	}
	if v, _ := p.GetField("intrinsic_metadata.egress_specification"); v != 3 {
		t.Errorf("metadata get = %d, want 3", v)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	p := testPacket(t, 100)
	if err := p.ParseHeader("ethernet", ethernetType(t)); err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	out := p.Serialize()
	orig := make([]byte, 100)
	for i := range orig {
		orig[i] = byte(i)
	}
	if !bytes.Equal(out, orig) {
		t.Fatal("serialize without mutation must reproduce the original bytes")
	}
}

func TestAddRemoveHeader(t *testing.T) {
	p := testPacket(t, 100)
	if err := p.ParseHeader("ethernet", ethernetType(t)); err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}

	if _, err := p.AddHeaderAfter("ethernet", ethernetType(t), "ethernet"); !errors.Is(err, ErrHeaderPresent) {
		t.Errorf("duplicate add: err = %v, want ErrHeaderPresent", err)
	}
	if _, err := p.AddHeaderAfter("vlan", vlanType(t), "ipv4"); !errors.Is(err, ErrHeaderNotPresent) {
		t.Errorf("add after missing anchor: err = %v, want ErrHeaderNotPresent", err)
	}

	if _, err := p.AddHeaderAfter("vlan", vlanType(t), "ethernet"); err != nil {
		t.Fatalf("AddHeaderAfter: %v", err)
	}
	if p.HeaderLen() != 18 {
		t.Fatalf("header length after vlan add = %d, want 18", p.HeaderLen())
	}
	// Payload untouched by stack mutation.
	if p.PayloadLen() != 86 {
		t.Fatalf("payload length changed by add: %d", p.PayloadLen())
	}

	// New header serializes between ethernet and payload.
	if err := p.SetField("vlan.vid", 10); err != nil {
		t.Fatalf("set vlan.vid: %v", err)
	}
	out := p.Serialize()
	if len(out) != 18+86 {
		t.Fatalf("serialized length = %d, want 104", len(out))
	}
	if got := extractBits(out[14:], 4, 12); got != 10 {
		t.Errorf("serialized vid = %d, want 10", got)
	}

	if err := p.RemoveHeader("ethernet"); err != nil {
		t.Fatalf("RemoveHeader: %v", err)
	}
	if p.HeaderLen() != 4 || p.PayloadLen() != 86 {
		t.Fatalf("after remove: headers %d payload %d", p.HeaderLen(), p.PayloadLen())
	}
	if err := p.RemoveHeader("ethernet"); !errors.Is(err, ErrHeaderNotPresent) {
		t.Errorf("double remove: err = %v, want ErrHeaderNotPresent", err)
	}
}

func TestAddHeaderBeforeOutermost(t *testing.T) {
	p := testPacket(t, 50)
	if err := p.ParseHeader("ethernet", ethernetType(t)); err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if _, err := p.AddHeaderBefore("outer_ethernet", ethernetType(t), "ethernet"); err != nil {
		t.Fatalf("AddHeaderBefore: %v", err)
	}
	hdrs := p.Headers()
	if hdrs[0].Name() != "outer_ethernet" || hdrs[1].Name() != "ethernet" {
		t.Fatalf("stack order = %s, %s", hdrs[0].Name(), hdrs[1].Name())
	}
}

func TestReplicateIndependence(t *testing.T) {
	p1 := testPacket(t, 100)
	if err := p1.ParseHeader("ethernet", ethernetType(t)); err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	p2 := p1.Replicate()

	if p2.ParentID() != p1.ID() {
		t.Errorf("replica parent = %d, want %d", p2.ParentID(), p1.ID())
	}
	if p2.ID() == p1.ID() {
		t.Error("replica must get its own id")
	}

	if err := p2.SetField("ethernet.dst_mac", 0xa0a1a2a3a4a5); err != nil {
		t.Fatalf("set on replica: %v", err)
	}
	if err := p2.SetField("intrinsic_metadata.egress_port", 7); err != nil {
		t.Fatalf("set metadata on replica: %v", err)
	}

	if v, _ := p1.GetField("ethernet.dst_mac"); v != 0x000102030405 {
		t.Errorf("original dst_mac changed by replica mutation: %#x", v)
	}
	if v, _ := p1.GetField("intrinsic_metadata.egress_port"); v != 0 {
		t.Errorf("original metadata changed by replica mutation: %d", v)
	}

	if err := p1.SetField("ethernet.src_mac", 1); err != nil {
		t.Fatalf("set on original: %v", err)
	}
	if v, _ := p2.GetField("ethernet.src_mac"); v != 0x060708090a0b {
		t.Errorf("replica src_mac changed by original mutation: %#x", v)
	}
}
