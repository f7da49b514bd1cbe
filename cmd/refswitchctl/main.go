// refswitchctl is the remote CLI client for refswitchd.
//
// It connects to the refswitchd gRPC API and provides both one-shot
// subcommands and an interactive console.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/psaab/refswitch/pkg/mgmt/switchv1"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:50051", "refswitchd gRPC address")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "refswitchctl: connect: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	client := pb.NewSwitchServiceClient(conn)

	// Verify connectivity
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	st, err := client.SwitchStatus(ctx, &pb.SwitchStatusRequest{})
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "refswitchctl: cannot reach refswitchd at %s: %v\n", *addr, err)
		os.Exit(1)
	}

	c := &ctl{client: client}

	// One-shot mode: remaining arguments form a single command.
	if flag.NArg() > 0 {
		if err := c.dispatch(strings.Join(flag.Args(), " ")); err != nil && err != errExit {
			fmt.Fprintf(os.Stderr, "refswitchctl: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("%s> ", st.Name),
		HistoryFile:     "/tmp/refswitchctl_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    c.completer(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "refswitchctl: readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("refswitchctl — connected to %s\n", st.Name)
	fmt.Println("Type 'help' for commands")
	fmt.Println()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				break
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := c.dispatch(line); err != nil {
			if err == errExit {
				break
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

var errExit = fmt.Errorf("exit")

type ctl struct {
	client pb.SwitchServiceClient
}

func (c *ctl) dispatch(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	switch parts[0] {
	case "status":
		return c.showStatus()

	case "tables":
		return c.showTables()

	case "entries":
		if len(parts) != 2 {
			return fmt.Errorf("usage: entries <table>")
		}
		return c.showEntries(parts[1])

	case "stats":
		if len(parts) != 2 {
			return fmt.Errorf("usage: stats <table>")
		}
		return c.showStats(parts[1])

	case "add":
		return c.addEntry(parts[1:])

	case "del":
		return c.removeEntry(parts[1:])

	case "default":
		return c.setDefault(parts[1:])

	case "enable":
		return c.setEnabled(true)

	case "disable":
		return c.setEnabled(false)

	case "inject":
		if len(parts) != 3 {
			return fmt.Errorf("usage: inject <port> <hexbytes>")
		}
		return c.inject(parts[1], parts[2])

	case "quit", "exit":
		return errExit

	case "?", "help":
		showHelp()
		return nil

	default:
		return fmt.Errorf("unknown command: %s", parts[0])
	}
}

func (c *ctl) showStatus() error {
	resp, err := c.client.SwitchStatus(context.Background(), &pb.SwitchStatusRequest{})
	if err != nil {
		return fmt.Errorf("%v", err)
	}
	fmt.Printf("Switch: %s\n", resp.Name)
	fmt.Printf("  %-25s %v\n", "Enabled:", resp.Enabled)
	fmt.Printf("  %-25s %d\n", "Received:", resp.Received)
	fmt.Printf("  %-25s %d\n", "Parse rejects:", resp.ParseRejects)
	fmt.Printf("  %-25s %d\n", "Drops:", resp.Drops)
	fmt.Printf("  %-25s %d\n", "Disabled drops:", resp.DisabledDrops)
	fmt.Printf("  %-25s %d\n", "Transmitted:", resp.Transmitted)
	fmt.Printf("  %-25s %d\n", "Send errors:", resp.SendErrors)
	fmt.Printf("  %-25s %s\n", "Tables:", strings.Join(resp.Tables, ", "))
	fmt.Printf("  %-25s %s\n", "Traffic managers:", strings.Join(resp.TrafficManagers, ", "))
	return nil
}

func (c *ctl) showTables() error {
	resp, err := c.client.SwitchStatus(context.Background(), &pb.SwitchStatusRequest{})
	if err != nil {
		return fmt.Errorf("%v", err)
	}
	for _, t := range resp.Tables {
		fmt.Println(t)
	}
	return nil
}

func (c *ctl) showEntries(table string) error {
	resp, err := c.client.ListEntries(context.Background(), &pb.ListEntriesRequest{Table: table})
	if err != nil {
		return fmt.Errorf("%v", err)
	}
	for i, e := range resp.Entries {
		fmt.Printf("Entry %d: action=%s priority=%d\n", i, e.Action, e.Priority)
		for _, f := range sortedKeys(e.MatchValues) {
			if m, ok := e.MatchMasks[f]; ok {
				fmt.Printf("  match %s = %#x mask %#x\n", f, e.MatchValues[f], m)
			} else {
				fmt.Printf("  match %s = %#x\n", f, e.MatchValues[f])
			}
		}
		for _, p := range sortedKeys(e.ActionParams) {
			fmt.Printf("  param %s = %#x\n", p, e.ActionParams[p])
		}
	}
	if resp.HasDefault {
		fmt.Printf("Default: action=%s\n", resp.DefaultAction)
		for _, p := range sortedKeys(resp.DefaultParams) {
			fmt.Printf("  param %s = %#x\n", p, resp.DefaultParams[p])
		}
	}
	return nil
}

func (c *ctl) showStats(table string) error {
	resp, err := c.client.TableStats(context.Background(), &pb.TableStatsRequest{Table: table})
	if err != nil {
		return fmt.Errorf("%v", err)
	}
	fmt.Printf("Table %s:\n", table)
	fmt.Printf("  %-12s %d\n", "Packets:", resp.Packets)
	fmt.Printf("  %-12s %d\n", "Bytes:", resp.Bytes)
	fmt.Printf("  %-12s %d\n", "Hits:", resp.Hits)
	fmt.Printf("  %-12s %d\n", "Misses:", resp.Misses)
	return nil
}

// parseEntry parses "<table> <action> [match f=v[/mask]]... [param k=v]...
// [priority N]" into an Entry message.
func parseEntry(args []string) (*pb.Entry, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("usage: <table> <action> [match f=v[/mask]]... [param k=v]... [priority N]")
	}
	e := &pb.Entry{
		Table:        args[0],
		Action:       args[1],
		MatchValues:  map[string]uint64{},
		MatchMasks:   map[string]uint64{},
		ActionParams: map[string]uint64{},
	}
	for i := 2; i < len(args); i++ {
		switch args[i] {
		case "match":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("match: missing field=value")
			}
			field, val, mask, hasMask, err := parseMatch(args[i])
			if err != nil {
				return nil, err
			}
			e.MatchValues[field] = val
			if hasMask {
				e.MatchMasks[field] = mask
			}
		case "param":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("param: missing name=value")
			}
			name, val, err := parseKV(args[i])
			if err != nil {
				return nil, err
			}
			e.ActionParams[name] = val
		case "priority":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("priority: missing value")
			}
			v, err := strconv.Atoi(args[i])
			if err != nil {
				return nil, fmt.Errorf("priority: %v", err)
			}
			e.Priority = int32(v)
		default:
			return nil, fmt.Errorf("unexpected argument: %s", args[i])
		}
	}
	return e, nil
}

func parseKV(s string) (string, uint64, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return "", 0, fmt.Errorf("expected name=value, got %q", s)
	}
	val, err := strconv.ParseUint(v, 0, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %v", k, err)
	}
	return k, val, nil
}

func parseMatch(s string) (field string, val, mask uint64, hasMask bool, err error) {
	if raw, m, ok := strings.Cut(s, "/"); ok {
		field, val, err = parseKV(raw)
		if err != nil {
			return "", 0, 0, false, err
		}
		mask, err = strconv.ParseUint(m, 0, 64)
		if err != nil {
			return "", 0, 0, false, fmt.Errorf("%s: mask: %v", field, err)
		}
		return field, val, mask, true, nil
	}
	field, val, err = parseKV(s)
	return field, val, 0, false, err
}

func (c *ctl) addEntry(args []string) error {
	e, err := parseEntry(args)
	if err != nil {
		return err
	}
	if _, err := c.client.AddEntry(context.Background(), &pb.AddEntryRequest{Entry: e}); err != nil {
		return fmt.Errorf("%v", err)
	}
	fmt.Println("entry added")
	return nil
}

func (c *ctl) removeEntry(args []string) error {
	e, err := parseEntry(args)
	if err != nil {
		return err
	}
	resp, err := c.client.RemoveEntry(context.Background(), &pb.RemoveEntryRequest{Entry: e})
	if err != nil {
		return fmt.Errorf("%v", err)
	}
	fmt.Printf("%d entries removed\n", resp.Removed)
	return nil
}

func (c *ctl) setDefault(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: default <table> <action> [param k=v]...")
	}
	req := &pb.SetDefaultRequest{
		Table:        args[0],
		Action:       args[1],
		ActionParams: map[string]uint64{},
	}
	for i := 2; i < len(args); i++ {
		if args[i] != "param" {
			return fmt.Errorf("unexpected argument: %s", args[i])
		}
		i++
		if i >= len(args) {
			return fmt.Errorf("param: missing name=value")
		}
		name, val, err := parseKV(args[i])
		if err != nil {
			return err
		}
		req.ActionParams[name] = val
	}
	if _, err := c.client.SetDefault(context.Background(), req); err != nil {
		return fmt.Errorf("%v", err)
	}
	fmt.Println("default set")
	return nil
}

func (c *ctl) setEnabled(enabled bool) error {
	_, err := c.client.SetEnabled(context.Background(), &pb.SetEnabledRequest{Enabled: enabled})
	if err != nil {
		return fmt.Errorf("%v", err)
	}
	if enabled {
		fmt.Println("switch enabled")
	} else {
		fmt.Println("switch disabled")
	}
	return nil
}

func (c *ctl) inject(portArg, hexArg string) error {
	port, err := strconv.ParseUint(portArg, 10, 16)
	if err != nil {
		return fmt.Errorf("port: %v", err)
	}
	data, err := hex.DecodeString(hexArg)
	if err != nil {
		return fmt.Errorf("hexbytes: %v", err)
	}
	_, err = c.client.InjectPacket(context.Background(), &pb.InjectPacketRequest{
		Port: uint32(port),
		Data: data,
	})
	if err != nil {
		return fmt.Errorf("%v", err)
	}
	fmt.Printf("injected %d bytes on port %d\n", len(data), port)
	return nil
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// completer offers command words plus live table names from the daemon.
func (c *ctl) completer() readline.AutoCompleter {
	tables := readline.PcItemDynamic(func(string) []string {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		resp, err := c.client.SwitchStatus(ctx, &pb.SwitchStatusRequest{})
		if err != nil {
			return nil
		}
		return resp.Tables
	})
	return readline.NewPrefixCompleter(
		readline.PcItem("status"),
		readline.PcItem("tables"),
		readline.PcItem("entries", tables),
		readline.PcItem("stats", tables),
		readline.PcItem("add", tables),
		readline.PcItem("del", tables),
		readline.PcItem("default", tables),
		readline.PcItem("enable"),
		readline.PcItem("disable"),
		readline.PcItem("inject"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

func showHelp() {
	fmt.Println("Commands:")
	fmt.Println("  status                             Show switch status and counters")
	fmt.Println("  tables                             List match-action tables")
	fmt.Println("  entries <table>                    List entries in a table")
	fmt.Println("  stats <table>                      Show per-table counters")
	fmt.Println("  add <table> <action> [match f=v[/mask]]... [param k=v]... [priority N]")
	fmt.Println("                                     Add a table entry")
	fmt.Println("  del <table> <action> [match f=v]... [priority N]")
	fmt.Println("                                     Remove matching entries")
	fmt.Println("  default <table> <action> [param k=v]...")
	fmt.Println("                                     Set the table default action")
	fmt.Println("  enable                             Enable packet processing")
	fmt.Println("  disable                            Disable packet processing")
	fmt.Println("  inject <port> <hexbytes>           Inject a raw frame")
	fmt.Println("  exit                               Exit CLI")
}
