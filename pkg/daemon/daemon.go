// Package daemon implements the refswitchd daemon lifecycle.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/psaab/refswitch/pkg/api"
	"github.com/psaab/refswitch/pkg/config"
	"github.com/psaab/refswitch/pkg/core"
	"github.com/psaab/refswitch/pkg/dataplane"
	"github.com/psaab/refswitch/pkg/mgmt"
)

// Options configures the daemon.
type Options struct {
	GRPCAddr      string
	APIAddr       string
	DataplaneType string
	Interfaces    []string
	// Discipline, when set, overrides the dequeue discipline of every
	// traffic manager in the instance.
	Discipline config.Discipline
	// Config selects the switch instance definition; nil runs the
	// built-in VXLAN gateway.
	Config *config.Config
}

// Daemon is the main refswitchd daemon.
type Daemon struct {
	opts Options
	sw   *core.Switch
}

// New creates a new Daemon.
func New(opts Options) *Daemon {
	if opts.GRPCAddr == "" {
		opts.GRPCAddr = ":50051"
	}
	if opts.APIAddr == "" {
		opts.APIAddr = ":9090"
	}
	if opts.Config == nil {
		opts.Config = config.VXLANGateway()
	}
	return &Daemon{opts: opts}
}

// Switch returns the running switch instance; nil before Run.
func (d *Daemon) Switch() *core.Switch { return d.sw }

// Run starts the daemon and blocks until shutdown.
func (d *Daemon) Run(ctx context.Context) error {
	slog.Info("starting refswitchd",
		"instance", d.opts.Config.Name,
		"dataplane", d.opts.DataplaneType,
		"pid", os.Getpid())

	if d.opts.Discipline != "" {
		for i := range d.opts.Config.TrafficManagers {
			d.opts.Config.TrafficManagers[i].Discipline = d.opts.Discipline
		}
	}

	dp, err := dataplane.New(d.opts.DataplaneType, d.opts.Interfaces)
	if err != nil {
		return fmt.Errorf("dataplane: %w", err)
	}

	sw, err := core.New(d.opts.Config, dp)
	if err != nil {
		dp.Kill()
		return fmt.Errorf("switch: %w", err)
	}
	d.sw = sw

	// Handle signals for clean shutdown.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	sw.Start()

	// WaitGroup for coordinated shutdown of the server goroutines.
	var wg sync.WaitGroup
	errCh := make(chan error, 2)

	grpcSrv := mgmt.NewServer(d.opts.GRPCAddr, sw)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := grpcSrv.Run(ctx); err != nil {
			errCh <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	apiSrv := api.NewServer(d.opts.APIAddr, sw)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := apiSrv.Run(ctx); err != nil {
			errCh <- fmt.Errorf("API server: %w", err)
		}
	}()

	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
		slog.Info("signal received, shutting down")
	}

	// Cancel context to stop the servers, then wait for them.
	stop()
	wg.Wait()

	sw.Stop()
	dp.Kill()

	slog.Info("refswitchd stopped")
	return runErr
}
