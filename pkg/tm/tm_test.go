package tm

import (
	"errors"
	"testing"
	"time"

	"github.com/psaab/refswitch/pkg/config"
	"github.com/psaab/refswitch/pkg/packet"
)

func metaTypes(t *testing.T) map[string]*packet.HeaderType {
	t.Helper()
	typ, err := packet.NewHeaderType(config.HeaderTypeDef{
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
	return map[string]*packet.HeaderType{"intrinsic_metadata": typ}
}

func specPkt(t *testing.T, types map[string]*packet.HeaderType, spec uint64) *packet.Packet {
	t.Helper()
	p := packet.New([]byte{0xaa, 0xbb}, types)
	if err := p.SetField("intrinsic_metadata.egress_specification", spec); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	return p
}

type delivery struct {
	id   uint64
	port uint64
}

func collector(t *testing.T, n int) (func(*packet.Packet), chan delivery) {
	t.Helper()
	ch := make(chan delivery, n)
	return func(p *packet.Packet) {
		port, err := p.GetField("intrinsic_metadata.egress_port")
		if err != nil {
			t.Errorf("egress_port: %v", err)
		}
		ch <- delivery{id: p.ID(), port: port}
	}, ch
}

func recv(t *testing.T, ch chan delivery) delivery {
	t.Helper()
	select {
	case d := <-ch:
		return d
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
		return delivery{}
	}
}

func newTM(t *testing.T, def config.TrafficManagerDef, ports int, out func(*packet.Packet)) *TrafficManager {
	t.Helper()
	tm, err := New(def, ports, out)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tm
}

func TestUnicastDelivery(t *testing.T) {
	types := metaTypes(t)
	out, ch := collector(t, 1)
	tm := newTM(t, config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 1, Discipline: config.DisciplineStrict,
	}, 4, out)
	tm.Start()
	defer tm.Stop()

	pkt := specPkt(t, types, UnicastSpec(2, 0))
	if err := tm.Process(pkt); err != nil {
		t.Fatalf("Process: %v", err)
	}
	d := recv(t, ch)
	if d.port != 2 {
		t.Errorf("egress_port = %d, want 2", d.port)
	}
	if d.id != pkt.ID() {
		t.Errorf("delivered id = %d, want %d", d.id, pkt.ID())
	}
}

func TestDropSpec(t *testing.T) {
	types := metaTypes(t)
	out, ch := collector(t, 1)
	tm := newTM(t, config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 1, Discipline: config.DisciplineStrict,
	}, 4, out)
	tm.Start()
	defer tm.Stop()

	if err := tm.Process(specPkt(t, types, DropSpec)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	select {
	case d := <-ch:
		t.Fatalf("unexpected delivery %+v for drop spec", d)
	case <-time.After(50 * time.Millisecond):
	}
	if s := tm.Stats(); s.Dropped != 1 || s.Enqueued != 0 {
		t.Errorf("stats = %+v, want 1 dropped, 0 enqueued", s)
	}
}

func TestStrictPriorityServesHighQueueFirst(t *testing.T) {
	types := metaTypes(t)
	out, ch := collector(t, 3)
	tm := newTM(t, config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 4, Discipline: config.DisciplineStrict,
	}, 1, out)

	low := specPkt(t, types, UnicastSpec(0, 0))
	high := specPkt(t, types, UnicastSpec(0, 3))
	mid := specPkt(t, types, UnicastSpec(0, 1))
	for _, p := range []*packet.Packet{low, high, mid} {
		if err := tm.Process(p); err != nil {
			t.Fatalf("Process: %v", err)
		}
	}

	tm.Start()
	defer tm.Stop()
	want := []uint64{high.ID(), mid.ID(), low.ID()}
	for i, id := range want {
		if d := recv(t, ch); d.id != id {
			t.Fatalf("delivery %d: id = %d, want %d", i, d.id, id)
		}
	}
}

func TestStrictRotatesPortsAtSamePriority(t *testing.T) {
	types := metaTypes(t)
	out, ch := collector(t, 3)
	tm := newTM(t, config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 1, Discipline: config.DisciplineStrict,
	}, 2, out)

	a := specPkt(t, types, UnicastSpec(0, 0))
	b := specPkt(t, types, UnicastSpec(0, 0))
	c := specPkt(t, types, UnicastSpec(1, 0))
	for _, p := range []*packet.Packet{a, b, c} {
		if err := tm.Process(p); err != nil {
			t.Fatalf("Process: %v", err)
		}
	}

	tm.Start()
	defer tm.Stop()
	want := []uint64{a.ID(), c.ID(), b.ID()}
	for i, id := range want {
		if d := recv(t, ch); d.id != id {
			t.Fatalf("delivery %d: id = %d, want %d", i, d.id, id)
		}
	}
}

func TestRoundRobinInterleavesQueues(t *testing.T) {
	types := metaTypes(t)
	out, ch := collector(t, 3)
	tm := newTM(t, config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 2, Discipline: config.DisciplineRoundRobin,
	}, 1, out)

	a1 := specPkt(t, types, UnicastSpec(0, 0))
	a2 := specPkt(t, types, UnicastSpec(0, 0))
	b1 := specPkt(t, types, UnicastSpec(0, 1))
	for _, p := range []*packet.Packet{a1, a2, b1} {
		if err := tm.Process(p); err != nil {
			t.Fatalf("Process: %v", err)
		}
	}

	tm.Start()
	defer tm.Stop()
	want := []uint64{a1.ID(), b1.ID(), a2.ID()}
	for i, id := range want {
		if d := recv(t, ch); d.id != id {
			t.Fatalf("delivery %d: id = %d, want %d", i, d.id, id)
		}
	}
}

func TestMulticastFanout(t *testing.T) {
	types := metaTypes(t)
	out, ch := collector(t, 3)
	tm := newTM(t, config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 1, Discipline: config.DisciplineStrict,
		MulticastGroups: map[uint16][]config.PortQueue{
			7: {{Port: 0}, {Port: 1}, {Port: 3}},
		},
	}, 4, out)
	tm.Start()
	defer tm.Stop()

	orig := specPkt(t, types, MulticastSpec(7))
	if err := tm.Process(orig); err != nil {
		t.Fatalf("Process: %v", err)
	}

	ports := map[uint64]bool{}
	originals, replicas := 0, 0
	for i := 0; i < 3; i++ {
		d := recv(t, ch)
		ports[d.port] = true
		if d.id == orig.ID() {
			originals++
		} else {
			replicas++
		}
	}
	if originals != 1 || replicas != 2 {
		t.Errorf("originals = %d, replicas = %d, want 1 and 2", originals, replicas)
	}
	for _, p := range []uint64{0, 1, 3} {
		if !ports[p] {
			t.Errorf("no delivery on port %d", p)
		}
	}
	if s := tm.Stats(); s.Replicated != 2 {
		t.Errorf("replicated = %d, want 2", s.Replicated)
	}
}

func TestUnknownMulticastGroupDrops(t *testing.T) {
	types := metaTypes(t)
	tm := newTM(t, config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 1, Discipline: config.DisciplineStrict,
	}, 4, func(*packet.Packet) {})
	if err := tm.Process(specPkt(t, types, MulticastSpec(9))); err == nil {
		t.Fatal("unknown multicast group should error")
	}
	if s := tm.Stats(); s.Dropped != 1 {
		t.Errorf("dropped = %d, want 1", s.Dropped)
	}
}

func TestOutOfRangeSpecDrops(t *testing.T) {
	types := metaTypes(t)
	tm := newTM(t, config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 2, Discipline: config.DisciplineStrict,
	}, 4, func(*packet.Packet) {})
	if err := tm.Process(specPkt(t, types, UnicastSpec(99, 0))); err == nil {
		t.Fatal("out-of-range port should error")
	}
	if err := tm.Process(specPkt(t, types, UnicastSpec(0, 5))); err == nil {
		t.Fatal("out-of-range queue should error")
	}
	if s := tm.Stats(); s.Dropped != 2 {
		t.Errorf("dropped = %d, want 2", s.Dropped)
	}
}

func TestStopDiscardsQueued(t *testing.T) {
	types := metaTypes(t)
	gate := make(chan struct{})
	started := make(chan struct{}, 4)
	delivered := 0
	tm := newTM(t, config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 1, Discipline: config.DisciplineStrict,
	}, 1, func(*packet.Packet) {
		started <- struct{}{}
		<-gate
		delivered++
	})

	for i := 0; i < 3; i++ {
		if err := tm.Process(specPkt(t, types, UnicastSpec(0, 0))); err != nil {
			t.Fatalf("Process: %v", err)
		}
	}
	tm.Start()
	<-started // scheduler is mid-delivery on the first packet

	stopDone := make(chan struct{})
	go func() {
		tm.Stop()
		close(stopDone)
	}()
	time.Sleep(20 * time.Millisecond)
	close(gate)
	select {
	case <-stopDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}

	if delivered != 1 {
		t.Errorf("delivered = %d, want 1", delivered)
	}
	if tm.Depth() != 0 {
		t.Errorf("depth = %d, want 0 after Stop", tm.Depth())
	}
	if s := tm.Stats(); s.Dropped != 2 {
		t.Errorf("dropped = %d, want 2 discarded at Stop", s.Dropped)
	}
}

func TestConstructionValidation(t *testing.T) {
	if _, err := New(config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 0, Discipline: config.DisciplineStrict,
	}, 1, nil); err == nil {
		t.Error("zero queues per port should fail")
	}
	if _, err := New(config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 1, Discipline: "fifo",
	}, 1, nil); err == nil {
		t.Error("unknown discipline should fail")
	}
	if _, err := New(config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 1, Discipline: config.DisciplineStrict,
		MulticastGroups: map[uint16][]config.PortQueue{1: {{Port: 9}}},
	}, 2, nil); err == nil {
		t.Error("multicast member out of range should fail")
	}
	if _, err := New(config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 1, Discipline: config.DisciplineStrict,
		MulticastGroups: map[uint16][]config.PortQueue{1: {}},
	}, 2, nil); err == nil {
		t.Error("empty multicast group should fail")
	}
}

func TestProcessWithoutSpecErrors(t *testing.T) {
	tm := newTM(t, config.TrafficManagerDef{
		Name: "tm", QueuesPerPort: 1, Discipline: config.DisciplineStrict,
	}, 1, func(*packet.Packet) {})
	p := packet.New([]byte{1}, nil) // no intrinsic metadata bag
	if err := tm.Process(p); !errors.Is(err, packet.ErrHeaderNotPresent) {
		t.Fatalf("err = %v, want ErrHeaderNotPresent", err)
	}
}
