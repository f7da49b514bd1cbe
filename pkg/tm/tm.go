// Package tm implements the traffic manager: the queuing stage between
// ingress processing and transmit. Packets are steered by the
// egress_specification intrinsic metadata field into per-port, per-queue
// FIFOs and drained by a single egress scheduler goroutine.
package tm

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/psaab/refswitch/pkg/config"
	"github.com/psaab/refswitch/pkg/packet"
)

// Egress specification encoding. The low 16 bits carry the port (or the
// multicast group id when MulticastBit is set); bits 16..30 carry the
// queue index.
const (
	// DropSpec discards the packet at the traffic manager.
	DropSpec uint64 = 0xffffffff
	// MulticastBit marks the low 16 bits as a multicast group id.
	MulticastBit uint64 = 1 << 31
)

const (
	egressSpecRef = "intrinsic_metadata.egress_specification"
	egressPortRef = "intrinsic_metadata.egress_port"
)

// UnicastSpec encodes a unicast egress specification.
func UnicastSpec(port uint16, queue uint8) uint64 {
	return uint64(queue)<<16 | uint64(port)
}

// MulticastSpec encodes a multicast egress specification.
func MulticastSpec(group uint16) uint64 {
	return MulticastBit | uint64(group)
}

// Stats is a point-in-time snapshot of the traffic manager counters.
type Stats struct {
	Enqueued   uint64
	Dequeued   uint64
	Dropped    uint64
	Replicated uint64
}

// TrafficManager owns the egress queues and the scheduler draining
// them. Enqueue is safe for concurrent use; the scheduler delivers
// dequeued packets to the out function one at a time.
type TrafficManager struct {
	name          string
	portCount     int
	queuesPerPort int
	discipline    config.Discipline
	groups        map[uint16][]config.PortQueue
	out           func(*packet.Packet)

	mu      sync.Mutex
	cond    *sync.Cond
	fifos   [][][]*packet.Packet // [port][queue] FIFO
	depth   int
	stopped bool
	done    chan struct{}

	// Scheduler cursors. nextPort rotates ports under strict priority;
	// rrPort/rrQueue walk the flattened queue space under round robin.
	nextPort int
	rrPort   int
	rrQueue  int

	enqueued   atomic.Uint64
	dequeued   atomic.Uint64
	dropped    atomic.Uint64
	replicated atomic.Uint64
}

// New builds a stopped TrafficManager. out receives each dequeued
// packet after its egress_port metadata has been set.
func New(def config.TrafficManagerDef, portCount int, out func(*packet.Packet)) (*TrafficManager, error) {
	if def.QueuesPerPort <= 0 {
		return nil, fmt.Errorf("traffic manager %s: queues per port must be positive", def.Name)
	}
	switch def.Discipline {
	case config.DisciplineStrict, config.DisciplineRoundRobin:
	default:
		return nil, fmt.Errorf("traffic manager %s: unknown discipline %q", def.Name, def.Discipline)
	}
	for group, members := range def.MulticastGroups {
		if len(members) == 0 {
			return nil, fmt.Errorf("traffic manager %s: multicast group %d has no members", def.Name, group)
		}
		for _, m := range members {
			if int(m.Port) >= portCount || int(m.Queue) >= def.QueuesPerPort {
				return nil, fmt.Errorf("traffic manager %s: multicast group %d member %d/%d out of range",
					def.Name, group, m.Port, m.Queue)
			}
		}
	}
	tm := &TrafficManager{
		name:          def.Name,
		portCount:     portCount,
		queuesPerPort: def.QueuesPerPort,
		discipline:    def.Discipline,
		groups:        def.MulticastGroups,
		out:           out,
		fifos:         make([][][]*packet.Packet, portCount),
	}
	for p := range tm.fifos {
		tm.fifos[p] = make([][]*packet.Packet, def.QueuesPerPort)
	}
	tm.cond = sync.NewCond(&tm.mu)
	return tm, nil
}

// Name returns the traffic manager name.
func (tm *TrafficManager) Name() string { return tm.name }

// Process steers the packet per its egress specification: drop,
// replicate to a multicast group's member queues, or enqueue on the
// addressed unicast queue. It never blocks on the scheduler.
func (tm *TrafficManager) Process(pkt *packet.Packet) error {
	spec, err := pkt.GetField(egressSpecRef)
	if err != nil {
		tm.dropped.Add(1)
		return fmt.Errorf("traffic manager %s: %w", tm.name, err)
	}
	if spec == DropSpec {
		tm.dropped.Add(1)
		slog.Debug("tm drop", "tm", tm.name, "packet", pkt.ID())
		return nil
	}
	if spec&MulticastBit != 0 {
		return tm.multicast(pkt, uint16(spec))
	}
	port := uint16(spec)
	queue := int(spec >> 16 & 0x7fff)
	return tm.enqueue(pkt, port, queue)
}

func (tm *TrafficManager) multicast(pkt *packet.Packet, group uint16) error {
	members, ok := tm.groups[group]
	if !ok {
		tm.dropped.Add(1)
		return fmt.Errorf("traffic manager %s: unknown multicast group %d", tm.name, group)
	}
	// The original packet takes the last member; replicas take the rest.
	for _, m := range members[:len(members)-1] {
		r := pkt.Replicate()
		tm.replicated.Add(1)
		if err := tm.enqueue(r, m.Port, int(m.Queue)); err != nil {
			return err
		}
	}
	last := members[len(members)-1]
	return tm.enqueue(pkt, last.Port, int(last.Queue))
}

func (tm *TrafficManager) enqueue(pkt *packet.Packet, port uint16, queue int) error {
	if int(port) >= tm.portCount || queue >= tm.queuesPerPort {
		tm.dropped.Add(1)
		return fmt.Errorf("traffic manager %s: egress %d/%d out of range", tm.name, port, queue)
	}
	tm.mu.Lock()
	if tm.stopped && tm.done != nil {
		tm.mu.Unlock()
		tm.dropped.Add(1)
		return fmt.Errorf("traffic manager %s: stopped", tm.name)
	}
	tm.fifos[port][queue] = append(tm.fifos[port][queue], pkt)
	tm.depth++
	tm.mu.Unlock()
	tm.enqueued.Add(1)
	tm.cond.Signal()
	return nil
}

// Start launches the egress scheduler goroutine.
func (tm *TrafficManager) Start() {
	tm.mu.Lock()
	if tm.done != nil {
		tm.mu.Unlock()
		return
	}
	tm.stopped = false
	tm.done = make(chan struct{})
	tm.mu.Unlock()
	go tm.run()
}

// Stop halts the scheduler and waits for it to exit. Packets still
// queued are discarded, not flushed.
func (tm *TrafficManager) Stop() {
	tm.mu.Lock()
	if tm.done == nil {
		tm.mu.Unlock()
		return
	}
	tm.stopped = true
	done := tm.done
	tm.mu.Unlock()
	tm.cond.Broadcast()
	<-done

	tm.mu.Lock()
	for p := range tm.fifos {
		for q := range tm.fifos[p] {
			tm.dropped.Add(uint64(len(tm.fifos[p][q])))
			tm.fifos[p][q] = nil
		}
	}
	tm.depth = 0
	tm.done = nil
	tm.mu.Unlock()
}

// Depth returns the total number of packets currently queued.
func (tm *TrafficManager) Depth() int {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.depth
}

// Stats returns a snapshot of the counters.
func (tm *TrafficManager) Stats() Stats {
	return Stats{
		Enqueued:   tm.enqueued.Load(),
		Dequeued:   tm.dequeued.Load(),
		Dropped:    tm.dropped.Load(),
		Replicated: tm.replicated.Load(),
	}
}

func (tm *TrafficManager) run() {
	for {
		tm.mu.Lock()
		for tm.depth == 0 && !tm.stopped {
			tm.cond.Wait()
		}
		if tm.stopped {
			done := tm.done
			tm.mu.Unlock()
			close(done)
			return
		}
		pkt, port := tm.dequeueLocked()
		tm.mu.Unlock()

		if pkt == nil {
			continue
		}
		tm.dequeued.Add(1)
		if err := pkt.SetField(egressPortRef, uint64(port)); err != nil {
			slog.Warn("tm egress port unset", "tm", tm.name, "err", err)
		}
		tm.out(pkt)
	}
}

// dequeueLocked picks the next packet per the configured discipline.
// Caller holds mu and has checked depth > 0.
func (tm *TrafficManager) dequeueLocked() (*packet.Packet, uint16) {
	switch tm.discipline {
	case config.DisciplineRoundRobin:
		return tm.dequeueRoundRobin()
	default:
		return tm.dequeueStrict()
	}
}

// dequeueStrict serves the highest-index non-empty queue, rotating
// across ports so one busy port cannot starve the others at the same
// priority level.
func (tm *TrafficManager) dequeueStrict() (*packet.Packet, uint16) {
	for q := tm.queuesPerPort - 1; q >= 0; q-- {
		for i := 0; i < tm.portCount; i++ {
			p := (tm.nextPort + i) % tm.portCount
			if len(tm.fifos[p][q]) > 0 {
				tm.nextPort = (p + 1) % tm.portCount
				return tm.popLocked(p, q), uint16(p)
			}
		}
	}
	return nil, 0
}

// dequeueRoundRobin walks the flattened (port, queue) space from the
// saved cursor, serving one packet per visit.
func (tm *TrafficManager) dequeueRoundRobin() (*packet.Packet, uint16) {
	total := tm.portCount * tm.queuesPerPort
	for i := 0; i < total; i++ {
		idx := (tm.rrPort*tm.queuesPerPort + tm.rrQueue + i) % total
		p, q := idx/tm.queuesPerPort, idx%tm.queuesPerPort
		if len(tm.fifos[p][q]) > 0 {
			next := (idx + 1) % total
			tm.rrPort, tm.rrQueue = next/tm.queuesPerPort, next%tm.queuesPerPort
			return tm.popLocked(p, q), uint16(p)
		}
	}
	return nil, 0
}

func (tm *TrafficManager) popLocked(p, q int) *packet.Packet {
	fifo := tm.fifos[p][q]
	pkt := fifo[0]
	tm.fifos[p][q] = fifo[1:]
	tm.depth--
	return pkt
}
