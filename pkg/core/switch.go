// Package core assembles the switch from its validated configuration:
// header types, actions, tables, parsers, control flows and traffic
// managers, wired into a processor chain fed by an ingress thread.
package core

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/psaab/refswitch/pkg/action"
	"github.com/psaab/refswitch/pkg/config"
	"github.com/psaab/refswitch/pkg/dataplane"
	"github.com/psaab/refswitch/pkg/packet"
	"github.com/psaab/refswitch/pkg/parser"
	"github.com/psaab/refswitch/pkg/pipeline"
	"github.com/psaab/refswitch/pkg/table"
	"github.com/psaab/refswitch/pkg/tm"
)

const (
	ingressPortRef = "intrinsic_metadata.ingress_port"
	egressPortRef  = "intrinsic_metadata.egress_port"
)

const pollInterval = 100 * time.Millisecond

// Stats is a snapshot of the switch counters.
type Stats struct {
	Received      uint64
	ParseRejects  uint64
	Drops         uint64
	DisabledDrops uint64
	Transmitted   uint64
	SendErrors    uint64
}

// Switch is one forwarding instance: the constructed component graph
// plus the ingress thread pulling frames from the dataplane.
type Switch struct {
	name      string
	dp        dataplane.Dataplane
	metaTypes map[string]*packet.HeaderType
	tables    map[string]*table.Table
	tms       map[string]*tm.TrafficManager
	head      Processor
	portStart map[uint16]string

	enabled atomic.Bool

	received      atomic.Uint64
	parseRejects  atomic.Uint64
	drops         atomic.Uint64
	disabledDrops atomic.Uint64
	transmitted   atomic.Uint64
	sendErrors    atomic.Uint64

	mu   sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

// New builds a stopped, enabled Switch from cfg and applies its table
// initialization entries.
func New(cfg *config.Config, dp dataplane.Dataplane) (*Switch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Switch{
		name:      cfg.Name,
		dp:        dp,
		metaTypes: make(map[string]*packet.HeaderType, len(cfg.Metadata)),
		tables:    make(map[string]*table.Table, len(cfg.Tables)),
		tms:       make(map[string]*tm.TrafficManager, len(cfg.TrafficManagers)),
		portStart: make(map[uint16]string, len(cfg.Ports)),
	}
	s.enabled.Store(true)

	types := make(map[string]*packet.HeaderType, len(cfg.HeaderTypes)+len(cfg.Metadata))
	for _, ht := range cfg.HeaderTypes {
		typ, err := packet.NewHeaderType(ht)
		if err != nil {
			return nil, err
		}
		types[ht.Name] = typ
	}
	for _, md := range cfg.Metadata {
		typ, err := packet.NewHeaderType(config.HeaderTypeDef{Name: md.Name, Fields: md.Fields})
		if err != nil {
			return nil, err
		}
		types[md.Name] = typ
		s.metaTypes[md.Name] = typ
	}
	if err := checkIntrinsic(s.metaTypes); err != nil {
		return nil, err
	}

	actions := make(map[string]*action.Action, len(cfg.Actions))
	for _, ad := range cfg.Actions {
		a, err := action.New(ad, types)
		if err != nil {
			return nil, err
		}
		actions[ad.Name] = a
	}

	for _, td := range cfg.Tables {
		t, err := table.New(td, actions)
		if err != nil {
			return nil, err
		}
		s.tables[td.Name] = t
	}

	parsers := make(map[string]*parser.Parser, len(cfg.Parsers))
	for _, pd := range cfg.Parsers {
		p, err := parser.New(pd, types)
		if err != nil {
			return nil, err
		}
		parsers[pd.Name] = p
	}

	pipelines := make(map[string]*pipeline.Pipeline, len(cfg.ControlFlows))
	for _, fd := range cfg.ControlFlows {
		p, err := pipeline.New(fd, s.tables)
		if err != nil {
			return nil, err
		}
		pipelines[fd.Name] = p
	}

	tmDefs := make(map[string]config.TrafficManagerDef, len(cfg.TrafficManagers))
	for _, td := range cfg.TrafficManagers {
		tmDefs[td.Name] = td
	}

	for _, pd := range cfg.Ports {
		if int(pd.Number) >= cfg.PortCount {
			return nil, fmt.Errorf("switch %s: port %d out of range", cfg.Name, pd.Number)
		}
		switch pd.Class {
		case config.PortNative, config.PortEncap, "":
		default:
			return nil, fmt.Errorf("switch %s: port %d: unknown class %q", cfg.Name, pd.Number, pd.Class)
		}
		if pd.StartState != "" {
			s.portStart[pd.Number] = pd.StartState
		}
	}

	// Wire the chain back to front so each stage captures its
	// downstream. Transmit is the implicit terminal stage.
	var next Processor = &transmitStage{
		dp:          dp,
		transmitted: &s.transmitted,
		sendErrors:  &s.sendErrors,
	}
	for i := len(cfg.Layout) - 1; i >= 0; i-- {
		name := cfg.Layout[i]
		switch {
		case pipelines[name] != nil:
			next = &pipelineStage{p: pipelines[name], next: next}
		case parsers[name] != nil:
			next = &parseStage{
				p:         parsers[name],
				portStart: s.portStart,
				next:      next,
				rejects:   &s.parseRejects,
			}
		default:
			td, ok := tmDefs[name]
			if !ok {
				return nil, fmt.Errorf("switch %s: layout names unknown processor %s", cfg.Name, name)
			}
			downstream := next
			t, err := tm.New(td, cfg.PortCount, func(pkt *packet.Packet) {
				if err := downstream.Process(pkt); err != nil {
					s.drops.Add(1)
					slog.Debug("egress drop", "switch", s.name, "packet", pkt.ID(), "err", err)
				}
			})
			if err != nil {
				return nil, err
			}
			s.tms[name] = t
			next = &tmStage{tm: t}
		}
	}
	s.head = next

	for _, e := range cfg.TableInit {
		t, ok := s.tables[e.Table]
		if !ok {
			return nil, fmt.Errorf("switch %s: table init names unknown table %s", cfg.Name, e.Table)
		}
		if err := t.AddEntry(e); err != nil {
			return nil, fmt.Errorf("switch %s: table init: %w", cfg.Name, err)
		}
	}
	return s, nil
}

func checkIntrinsic(metaTypes map[string]*packet.HeaderType) error {
	typ, ok := metaTypes["intrinsic_metadata"]
	if !ok {
		return fmt.Errorf("missing intrinsic_metadata")
	}
	for _, f := range []string{"ingress_port", "egress_port", "egress_specification"} {
		if _, err := typ.FieldWidth(f); err != nil {
			return fmt.Errorf("intrinsic_metadata: %w", err)
		}
	}
	return nil
}

// Name returns the instance name.
func (s *Switch) Name() string { return s.name }

// Start launches the traffic manager schedulers and the ingress
// thread.
func (s *Switch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	for _, t := range s.tms {
		t.Start()
	}
	s.wg.Add(1)
	go s.ingressLoop(s.stop)
	slog.Info("switch started", "switch", s.name)
}

// Stop halts the ingress thread and the traffic managers. Queued
// packets are discarded.
func (s *Switch) Stop() {
	s.mu.Lock()
	stop := s.stop
	s.stop = nil
	s.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	s.wg.Wait()
	for _, t := range s.tms {
		t.Stop()
	}
	slog.Info("switch stopped", "switch", s.name)
}

// Enable opens the ingress gate.
func (s *Switch) Enable() { s.enabled.Store(true) }

// Disable closes the ingress gate; received frames are counted and
// discarded until Enable.
func (s *Switch) Disable() { s.enabled.Store(false) }

// Enabled reports the ingress gate state.
func (s *Switch) Enabled() bool { return s.enabled.Load() }

func (s *Switch) ingressLoop(stop chan struct{}) {
	defer s.wg.Done()
	for {
		select {
		case <-stop:
			return
		default:
		}
		f, err := s.dp.Poll(pollInterval)
		if err != nil {
			if err == dataplane.ErrKilled {
				return
			}
			slog.Warn("poll", "switch", s.name, "err", err)
			continue
		}
		if f == nil {
			continue
		}
		s.Inject(f.Port, f.Data)
	}
}

// Inject runs one frame through the full packet path as if it arrived
// on the given port. The management plane uses it for packet
// injection; the ingress thread uses it for received frames.
func (s *Switch) Inject(port uint16, data []byte) {
	s.received.Add(1)
	if !s.enabled.Load() {
		s.disabledDrops.Add(1)
		return
	}
	pkt := packet.New(data, s.metaTypes)
	if err := pkt.SetField(ingressPortRef, uint64(port)); err != nil {
		s.drops.Add(1)
		return
	}
	if err := s.head.Process(pkt); err != nil {
		s.drops.Add(1)
		slog.Debug("ingress drop", "switch", s.name, "port", port, "packet", pkt.ID(), "err", err)
	}
}

// Table returns the named table.
func (s *Switch) Table(name string) (*table.Table, error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("switch %s: no such table %s", s.name, name)
	}
	return t, nil
}

// TableNames returns the table names in sorted order.
func (s *Switch) TableNames() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TrafficManager returns the named traffic manager.
func (s *Switch) TrafficManager(name string) (*tm.TrafficManager, error) {
	t, ok := s.tms[name]
	if !ok {
		return nil, fmt.Errorf("switch %s: no such traffic manager %s", s.name, name)
	}
	return t, nil
}

// TrafficManagerNames returns the traffic manager names in sorted
// order.
func (s *Switch) TrafficManagerNames() []string {
	names := make([]string, 0, len(s.tms))
	for name := range s.tms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stats returns a snapshot of the switch counters.
func (s *Switch) Stats() Stats {
	return Stats{
		Received:      s.received.Load(),
		ParseRejects:  s.parseRejects.Load(),
		Drops:         s.drops.Load(),
		DisabledDrops: s.disabledDrops.Load(),
		Transmitted:   s.transmitted.Load(),
		SendErrors:    s.sendErrors.Load(),
	}
}
