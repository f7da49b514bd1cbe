// Package mgmt implements the gRPC management server for refswitch.
package mgmt

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/psaab/refswitch/pkg/config"
	"github.com/psaab/refswitch/pkg/core"
	pb "github.com/psaab/refswitch/pkg/mgmt/switchv1"
)

// Server implements the SwitchService gRPC service over one switch
// instance.
type Server struct {
	pb.UnimplementedSwitchServiceServer
	sw   *core.Switch
	addr string
}

// NewServer creates a new gRPC server for the given switch.
func NewServer(addr string, sw *core.Switch) *Server {
	return &Server{sw: sw, addr: addr}
}

// Run starts the gRPC server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("gRPC listen: %w", err)
	}

	srv := grpc.NewServer()
	pb.RegisterSwitchServiceServer(srv, s)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("gRPC server listening", "addr", s.addr)
		if err := srv.Serve(lis); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.GracefulStop()
	return nil
}

func entryDef(e *pb.Entry) config.EntryDef {
	def := config.EntryDef{
		Table:        e.GetTable(),
		Priority:     int(e.GetPriority()),
		Action:       e.GetAction(),
		ActionParams: e.GetActionParams(),
	}
	// An entry with no match values addresses the default entry.
	if len(e.GetMatchValues()) > 0 {
		def.MatchValues = e.GetMatchValues()
		def.MatchMasks = e.GetMatchMasks()
	}
	return def
}

// AddEntry installs a table entry, or the default entry when the
// request carries no match values.
func (s *Server) AddEntry(_ context.Context, req *pb.AddEntryRequest) (*pb.AddEntryResponse, error) {
	e := req.GetEntry()
	if e == nil {
		return nil, status.Errorf(codes.InvalidArgument, "entry required")
	}
	t, err := s.sw.Table(e.GetTable())
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "%v", err)
	}
	if err := t.AddEntry(entryDef(e)); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return &pb.AddEntryResponse{}, nil
}

// RemoveEntry deletes entries matching the request's match criteria
// and priority.
func (s *Server) RemoveEntry(_ context.Context, req *pb.RemoveEntryRequest) (*pb.RemoveEntryResponse, error) {
	e := req.GetEntry()
	if e == nil {
		return nil, status.Errorf(codes.InvalidArgument, "entry required")
	}
	t, err := s.sw.Table(e.GetTable())
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "%v", err)
	}
	removed := t.RemoveEntry(entryDef(e))
	return &pb.RemoveEntryResponse{Removed: uint32(removed)}, nil
}

// SetDefault installs or replaces a table's default entry.
func (s *Server) SetDefault(_ context.Context, req *pb.SetDefaultRequest) (*pb.SetDefaultResponse, error) {
	t, err := s.sw.Table(req.GetTable())
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "%v", err)
	}
	if err := t.SetDefault(req.GetAction(), req.GetActionParams()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return &pb.SetDefaultResponse{}, nil
}

// ListEntries returns a table's keyed entries and its default entry.
func (s *Server) ListEntries(_ context.Context, req *pb.ListEntriesRequest) (*pb.ListEntriesResponse, error) {
	t, err := s.sw.Table(req.GetTable())
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "%v", err)
	}
	resp := &pb.ListEntriesResponse{}
	for _, e := range t.Entries() {
		resp.Entries = append(resp.Entries, &pb.Entry{
			Table:        req.GetTable(),
			MatchValues:  e.MatchValues,
			MatchMasks:   e.MatchMasks,
			Priority:     int32(e.Priority),
			Action:       e.Action,
			ActionParams: e.ActionParams,
		})
	}
	if action, params, ok := t.Default(); ok {
		resp.HasDefault = true
		resp.DefaultAction = action
		resp.DefaultParams = params
	}
	return resp, nil
}

// TableStats returns a table's hit counters.
func (s *Server) TableStats(_ context.Context, req *pb.TableStatsRequest) (*pb.TableStatsResponse, error) {
	t, err := s.sw.Table(req.GetTable())
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "%v", err)
	}
	st := t.Stats()
	return &pb.TableStatsResponse{
		Packets: st.Packets,
		Bytes:   st.Bytes,
		Hits:    st.Hits,
		Misses:  st.Misses,
	}, nil
}

// SwitchStatus returns the instance name, gate state and counters.
func (s *Server) SwitchStatus(_ context.Context, _ *pb.SwitchStatusRequest) (*pb.SwitchStatusResponse, error) {
	st := s.sw.Stats()
	return &pb.SwitchStatusResponse{
		Name:            s.sw.Name(),
		Enabled:         s.sw.Enabled(),
		Received:        st.Received,
		ParseRejects:    st.ParseRejects,
		Drops:           st.Drops,
		DisabledDrops:   st.DisabledDrops,
		Transmitted:     st.Transmitted,
		SendErrors:      st.SendErrors,
		Tables:          s.sw.TableNames(),
		TrafficManagers: s.sw.TrafficManagerNames(),
	}, nil
}

// SetEnabled opens or closes the ingress gate.
func (s *Server) SetEnabled(_ context.Context, req *pb.SetEnabledRequest) (*pb.SetEnabledResponse, error) {
	if req.GetEnabled() {
		s.sw.Enable()
	} else {
		s.sw.Disable()
	}
	slog.Info("ingress gate set", "enabled", req.GetEnabled())
	return &pb.SetEnabledResponse{}, nil
}

// InjectPacket runs a frame through the packet path as if it arrived
// on the given port.
func (s *Server) InjectPacket(_ context.Context, req *pb.InjectPacketRequest) (*pb.InjectPacketResponse, error) {
	if req.GetPort() > 0xffff {
		return nil, status.Errorf(codes.InvalidArgument, "port %d out of range", req.GetPort())
	}
	if len(req.GetData()) == 0 {
		return nil, status.Errorf(codes.InvalidArgument, "empty frame")
	}
	s.sw.Inject(uint16(req.GetPort()), req.GetData())
	return &pb.InjectPacketResponse{}, nil
}
