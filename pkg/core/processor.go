package core

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/psaab/refswitch/pkg/dataplane"
	"github.com/psaab/refswitch/pkg/packet"
	"github.com/psaab/refswitch/pkg/parser"
	"github.com/psaab/refswitch/pkg/pipeline"
	"github.com/psaab/refswitch/pkg/tm"
)

// Processor is one stage of the packet path. A processor owns the
// packet for the duration of Process; an error means the packet was
// dropped and accounting is the caller's concern.
type Processor interface {
	Name() string
	Process(*packet.Packet) error
}

// parseStage runs the parser with the start state configured for the
// packet's ingress port.
type parseStage struct {
	p         *parser.Parser
	portStart map[uint16]string
	next      Processor
	rejects   *atomic.Uint64
}

func (s *parseStage) Name() string { return s.p.Name() }

func (s *parseStage) Process(pkt *packet.Packet) error {
	port, err := pkt.GetField(ingressPortRef)
	if err != nil {
		return err
	}
	if err := s.p.Parse(pkt, s.portStart[uint16(port)]); err != nil {
		s.rejects.Add(1)
		return err
	}
	return s.next.Process(pkt)
}

// pipelineStage walks a control-flow graph and hands the survivor on.
type pipelineStage struct {
	p    *pipeline.Pipeline
	next Processor
}

func (s *pipelineStage) Name() string { return s.p.Name() }

func (s *pipelineStage) Process(pkt *packet.Packet) error {
	if err := s.p.Process(pkt); err != nil {
		return err
	}
	return s.next.Process(pkt)
}

// tmStage enqueues into a traffic manager; the manager's scheduler
// resumes the chain on its own goroutine.
type tmStage struct {
	tm *tm.TrafficManager
}

func (s *tmStage) Name() string { return s.tm.Name() }

func (s *tmStage) Process(pkt *packet.Packet) error {
	return s.tm.Process(pkt)
}

// transmitStage serializes the packet and hands it to the dataplane on
// its egress port. It terminates every chain.
type transmitStage struct {
	dp          dataplane.Dataplane
	transmitted *atomic.Uint64
	sendErrors  *atomic.Uint64
}

func (s *transmitStage) Name() string { return "transmit" }

func (s *transmitStage) Process(pkt *packet.Packet) error {
	port, err := pkt.GetField(egressPortRef)
	if err != nil {
		s.sendErrors.Add(1)
		return fmt.Errorf("transmit: %w", err)
	}
	if err := s.dp.Send(uint16(port), pkt.Serialize()); err != nil {
		s.sendErrors.Add(1)
		return fmt.Errorf("transmit port %d: %w", port, err)
	}
	s.transmitted.Add(1)
	slog.Debug("transmit", "port", port, "packet", pkt.ID(), "len", pkt.Len())
	return nil
}
