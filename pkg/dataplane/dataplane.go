// Package dataplane abstracts how raw frames enter and leave the
// switch: an AF_PACKET backend binds real network interfaces, and an
// in-memory channel backend serves tests and packet injection.
package dataplane

import (
	"errors"
	"fmt"
	"time"
)

// Dataplane type constants used by the -dataplane flag.
const (
	TypeAFPacket = "afpacket" // default
	TypeChannel  = "channel"
)

// ErrKilled is returned by Poll and Send after Kill.
var ErrKilled = errors.New("dataplane killed")

// Frame is one raw frame tagged with the switch port it arrived on (or
// is destined to) and its receive timestamp.
type Frame struct {
	Port uint16
	Data []byte
	Time time.Time
}

// Dataplane moves raw frames between switch ports and the outside
// world. Poll and Send may be called from different goroutines; neither
// is safe for concurrent use with itself.
type Dataplane interface {
	// Poll waits up to timeout for one received frame. It returns nil
	// with a nil error when the timeout expires and ErrKilled after Kill.
	Poll(timeout time.Duration) (*Frame, error)
	// Send transmits a frame out the given port.
	Send(port uint16, data []byte) error
	// Kill tears the backend down and unblocks a pending Poll.
	Kill() error
}

// backendRegistry holds constructors for platform-specific backends.
// Implementations register themselves in their init().
var backendRegistry = map[string]func(interfaces []string) (Dataplane, error){}

// RegisterBackend registers a dataplane constructor for the given type.
func RegisterBackend(dpType string, ctor func(interfaces []string) (Dataplane, error)) {
	backendRegistry[dpType] = ctor
}

// New creates a Dataplane backend by type name. Port numbers map to the
// interfaces slice by position; the channel backend ignores it.
func New(dpType string, interfaces []string) (Dataplane, error) {
	switch dpType {
	case "", TypeAFPacket:
		ctor, ok := backendRegistry[TypeAFPacket]
		if !ok {
			return nil, fmt.Errorf("afpacket dataplane not available on this platform")
		}
		return ctor(interfaces)
	case TypeChannel:
		return NewChannel(len(interfaces)), nil
	default:
		if ctor, ok := backendRegistry[dpType]; ok {
			return ctor(interfaces)
		}
		return nil, fmt.Errorf("unknown dataplane type %q (valid: afpacket, channel)", dpType)
	}
}
