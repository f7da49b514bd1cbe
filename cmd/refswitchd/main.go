// refswitchd is the reference switch daemon.
//
// It runs a protocol-independent software switch built from a declared
// instance configuration and exposes a gRPC management API and a
// Prometheus metrics endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/psaab/refswitch/pkg/config"
	"github.com/psaab/refswitch/pkg/daemon"
)

func main() {
	dpType := flag.String("dataplane", "afpacket", "dataplane backend (afpacket, channel)")
	ifaces := flag.String("interfaces", "", "comma-separated interfaces bound to ports 0..n")
	discipline := flag.String("discipline", "", "override traffic manager discipline (strict, round_robin)")
	apiAddr := flag.String("api-addr", "127.0.0.1:9090", "HTTP API listen address")
	grpcAddr := flag.String("grpc-addr", "127.0.0.1:50051", "gRPC API listen address")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	// Set up structured logging
	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	var interfaces []string
	if *ifaces != "" {
		interfaces = strings.Split(*ifaces, ",")
	}

	d := daemon.New(daemon.Options{
		GRPCAddr:      *grpcAddr,
		APIAddr:       *apiAddr,
		DataplaneType: *dpType,
		Interfaces:    interfaces,
		Discipline:    config.Discipline(*discipline),
	})

	if err := d.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "refswitchd: %v\n", err)
		os.Exit(1)
	}
}
