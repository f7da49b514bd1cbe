package core

import (
	"testing"
	"time"

	"github.com/psaab/refswitch/pkg/config"
	"github.com/psaab/refswitch/pkg/dataplane"
	"github.com/psaab/refswitch/pkg/tm"
)

const (
	hostA = 0x02_00_00_00_00_aa // behind native port 0, vlan 10
	hostB = 0x02_00_00_00_00_bb // behind tunnel port 2, vni 10
)

func put48(b []byte, v uint64) {
	for i := 0; i < 6; i++ {
		b[i] = byte(v >> uint(40-8*i))
	}
}

func be16(b []byte) uint16 { return uint16(b[0])<<8 | uint16(b[1]) }

// ethFrame builds dst/src/ethertype followed by payload.
func ethFrame(dst, src uint64, ethertype uint16, payload []byte) []byte {
	b := make([]byte, 14)
	put48(b[0:], dst)
	put48(b[6:], src)
	b[12], b[13] = byte(ethertype>>8), byte(ethertype)
	return append(b, payload...)
}

// taggedFrame builds an 802.1Q frame with the given vid.
func taggedFrame(dst, src uint64, vid uint16, payload []byte) []byte {
	tag := []byte{0, 0, 0x08, 0x00}
	tag[0] = byte(vid >> 8)
	tag[1] = byte(vid)
	return ethFrame(dst, src, 0x8100, append(tag, payload...))
}

// vxlanFrame wraps inner in outer ethernet + ipv4 + udp(4789) + vxlan.
func vxlanFrame(vni uint32, inner []byte) []byte {
	ip := make([]byte, 20)
	ip[0] = 0x45
	ip[8] = 64
	ip[9] = 17
	udp := make([]byte, 8)
	udp[2], udp[3] = 4789>>8, 4789&0xff
	vx := make([]byte, 8)
	vx[0] = 0x08
	vx[4], vx[5], vx[6] = byte(vni>>16), byte(vni>>8), byte(vni)
	outer := ethFrame(0x02_00_00_00_0b_02, 0x02_00_00_00_00_02, 0x0800, nil)
	out := append(outer, ip...)
	out = append(out, udp...)
	out = append(out, vx...)
	return append(out, inner...)
}

func newSwitch(t *testing.T) (*Switch, *dataplane.Channel) {
	t.Helper()
	cfg := config.VXLANGateway()
	dp := dataplane.NewChannel(cfg.PortCount)
	s, err := New(cfg, dp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, dp
}

func addForward(t *testing.T, s *Switch, mac uint64, vni, spec uint64) {
	t.Helper()
	fwd, err := s.Table("forward")
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if err := fwd.AddEntry(config.EntryDef{
		MatchValues: map[string]uint64{"ethernet.dst_mac": mac, "route_md.vni": vni},
		Action:      "set_egress",
		ActionParams: map[string]uint64{
			"spec": spec,
		},
	}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
}

func collectTx(t *testing.T, dp *dataplane.Channel, n int) []*dataplane.Frame {
	t.Helper()
	frames := make([]*dataplane.Frame, 0, n)
	for len(frames) < n {
		select {
		case f := <-dp.TxChan():
			frames = append(frames, f)
		case <-time.After(2 * time.Second):
			t.Fatalf("got %d of %d tx frames", len(frames), n)
		}
	}
	return frames
}

func expectNoTx(t *testing.T, dp *dataplane.Channel) {
	t.Helper()
	select {
	case f := <-dp.TxChan():
		t.Fatalf("unexpected tx frame on port %d", f.Port)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNativeToTunnelEncap(t *testing.T) {
	s, dp := newSwitch(t)
	addForward(t, s, hostB, 10, tm.UnicastSpec(2, 0))
	s.Start()
	defer s.Stop()

	payload := []byte{0xca, 0xfe, 0xca, 0xfe}
	if err := dp.Inject(0, taggedFrame(hostB, hostA, 10, payload)); err != nil {
		t.Fatalf("Inject: %v", err)
	}

	f := collectTx(t, dp, 1)[0]
	if f.Port != 2 {
		t.Fatalf("egress port = %d, want 2", f.Port)
	}
	out := f.Data
	// Outer stack: ethernet(14) + ipv4(20) + udp(8) + vxlan(8).
	if et := be16(out[12:14]); et != 0x0800 {
		t.Errorf("outer ethertype = %#x, want 0x0800", et)
	}
	if out[23] != 17 {
		t.Errorf("outer protocol = %d, want 17", out[23])
	}
	if dst := be16(out[36:38]); dst != 4789 {
		t.Errorf("outer udp dst = %d, want 4789", dst)
	}
	vni := uint32(out[46])<<16 | uint32(out[47])<<8 | uint32(out[48])
	if vni != 10 {
		t.Errorf("vni = %d, want 10", vni)
	}
	inner := out[50:]
	if et := be16(inner[12:14]); et != 0x8100 {
		t.Errorf("inner ethertype = %#x, want 0x8100", et)
	}
}

func TestTunnelToNativeDecap(t *testing.T) {
	s, dp := newSwitch(t)
	addForward(t, s, hostA, 10, tm.UnicastSpec(0, 0))
	s.Start()
	defer s.Stop()

	inner := ethFrame(hostA, hostB, 0x1234, []byte{1, 2, 3, 4})
	if err := dp.Inject(2, vxlanFrame(10, inner)); err != nil {
		t.Fatalf("Inject: %v", err)
	}

	f := collectTx(t, dp, 1)[0]
	if f.Port != 0 {
		t.Fatalf("egress port = %d, want 0", f.Port)
	}
	if len(f.Data) != len(inner) {
		t.Fatalf("decap frame length = %d, want %d", len(f.Data), len(inner))
	}
	for i := range inner {
		if f.Data[i] != inner[i] {
			t.Fatalf("decap frame differs at byte %d: %#x != %#x", i, f.Data[i], inner[i])
		}
	}
}

func TestUnknownDestinationFloods(t *testing.T) {
	s, dp := newSwitch(t)
	s.Start()
	defer s.Stop()

	unknown := uint64(0x02_00_00_00_0f_0f)
	if err := dp.Inject(0, taggedFrame(unknown, hostA, 10, []byte{9})); err != nil {
		t.Fatalf("Inject: %v", err)
	}

	frames := collectTx(t, dp, 4)
	ports := map[uint16]bool{}
	for _, f := range frames {
		ports[f.Port] = true
	}
	for p := uint16(0); p < 4; p++ {
		if !ports[p] {
			t.Errorf("no flood replica on port %d", p)
		}
	}
	for _, f := range frames {
		encapped := be16(f.Data[12:14]) == 0x0800 && len(f.Data) > 50
		switch f.Port {
		case 2, 3:
			if !encapped {
				t.Errorf("port %d replica not encapsulated", f.Port)
			}
		default:
			if encapped {
				t.Errorf("port %d replica unexpectedly encapsulated", f.Port)
			}
		}
	}
}

func TestDisableGatesIngress(t *testing.T) {
	s, dp := newSwitch(t)
	addForward(t, s, hostB, 10, tm.UnicastSpec(2, 0))
	s.Start()
	defer s.Stop()

	s.Disable()
	if s.Enabled() {
		t.Fatal("Enabled after Disable")
	}
	if err := dp.Inject(0, taggedFrame(hostB, hostA, 10, nil)); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	expectNoTx(t, dp)

	s.Enable()
	if err := dp.Inject(0, taggedFrame(hostB, hostA, 10, nil)); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	collectTx(t, dp, 1)

	st := s.Stats()
	if st.Received != 2 || st.DisabledDrops != 1 {
		t.Errorf("stats = %+v, want 2 received, 1 disabled drop", st)
	}
}

func TestParseRejectCounted(t *testing.T) {
	s, _ := newSwitch(t)
	// Runt frame: shorter than an ethernet header.
	s.Inject(0, []byte{1, 2, 3})
	st := s.Stats()
	if st.ParseRejects != 1 || st.Drops != 1 {
		t.Errorf("stats = %+v, want 1 parse reject, 1 drop", st)
	}
}

func TestAccessors(t *testing.T) {
	s, _ := newSwitch(t)
	if s.Name() != "vxlan-gateway" {
		t.Errorf("name = %q", s.Name())
	}
	want := []string{"egress_encap", "forward", "resolve_vni", "tunnel_decap"}
	got := s.TableNames()
	if len(got) != len(want) {
		t.Fatalf("tables = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tables = %v, want %v", got, want)
		}
	}
	if names := s.TrafficManagerNames(); len(names) != 1 || names[0] != "tm0" {
		t.Errorf("tms = %v, want [tm0]", names)
	}
	if _, err := s.Table("nonesuch"); err == nil {
		t.Error("unknown table should error")
	}
	if _, err := s.TrafficManager("nonesuch"); err == nil {
		t.Error("unknown traffic manager should error")
	}
}

func TestConstructionErrors(t *testing.T) {
	cfg := config.VXLANGateway()
	cfg.Layout = []string{"pkt_parser", "nonesuch"}
	if _, err := New(cfg, dataplane.NewChannel(cfg.PortCount)); err == nil {
		t.Error("unknown layout name should fail")
	}

	cfg = config.VXLANGateway()
	cfg.Ports[0].Class = "virtual"
	if _, err := New(cfg, dataplane.NewChannel(cfg.PortCount)); err == nil {
		t.Error("unknown port class should fail")
	}

	cfg = config.VXLANGateway()
	cfg.Ports[0].Number = 99
	if _, err := New(cfg, dataplane.NewChannel(cfg.PortCount)); err == nil {
		t.Error("port number out of range should fail")
	}

	cfg = config.VXLANGateway()
	cfg.TableInit = append(cfg.TableInit, config.EntryDef{Table: "nonesuch", Action: "no_op"})
	if _, err := New(cfg, dataplane.NewChannel(cfg.PortCount)); err == nil {
		t.Error("table init on unknown table should fail")
	}
}
