//go:build linux

package dataplane

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

func init() {
	RegisterBackend(TypeAFPacket, func(interfaces []string) (Dataplane, error) {
		return NewAFPacket(interfaces)
	})
}

// AFPacket binds one AF_PACKET SOCK_RAW socket per interface. The
// switch port number is the interface's position in the configured
// list.
type AFPacket struct {
	ports  []afPort
	fds    []unix.PollFd
	buf    []byte
	killed atomic.Bool
}

type afPort struct {
	name    string
	ifindex int
	fd      int
}

var _ Dataplane = (*AFPacket)(nil)

func htons(v uint16) uint16 { return v<<8 | v>>8 }

// NewAFPacket opens and binds a raw socket per interface, putting each
// interface into promiscuous mode.
func NewAFPacket(interfaces []string) (*AFPacket, error) {
	if len(interfaces) == 0 {
		return nil, fmt.Errorf("afpacket dataplane: no interfaces")
	}
	dp := &AFPacket{buf: make([]byte, 65536)}
	for _, name := range interfaces {
		link, err := netlink.LinkByName(name)
		if err != nil {
			dp.Kill()
			return nil, fmt.Errorf("afpacket dataplane: %s: %w", name, err)
		}
		ifindex := link.Attrs().Index

		fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(htons(unix.ETH_P_ALL)))
		if err != nil {
			dp.Kill()
			return nil, fmt.Errorf("afpacket dataplane: %s: socket: %w", name, err)
		}
		if err := unix.Bind(fd, &unix.SockaddrLinklayer{
			Protocol: htons(unix.ETH_P_ALL),
			Ifindex:  ifindex,
		}); err != nil {
			unix.Close(fd)
			dp.Kill()
			return nil, fmt.Errorf("afpacket dataplane: %s: bind: %w", name, err)
		}
		if err := netlink.SetPromiscOn(link); err != nil {
			slog.Warn("promiscuous mode not set", "interface", name, "err", err)
		}
		dp.ports = append(dp.ports, afPort{name: name, ifindex: ifindex, fd: fd})
		dp.fds = append(dp.fds, unix.PollFd{Fd: int32(fd), Events: unix.POLLIN})
		slog.Info("port bound", "port", len(dp.ports)-1, "interface", name, "ifindex", ifindex)
	}
	return dp, nil
}

// Poll waits up to timeout for a frame on any bound port.
func (dp *AFPacket) Poll(timeout time.Duration) (*Frame, error) {
	if dp.killed.Load() {
		return nil, ErrKilled
	}
	n, err := unix.Poll(dp.fds, int(timeout.Milliseconds()))
	if err != nil {
		if dp.killed.Load() {
			return nil, ErrKilled
		}
		if err == unix.EINTR {
			return nil, nil
		}
		return nil, fmt.Errorf("afpacket dataplane: poll: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	for i := range dp.fds {
		if dp.fds[i].Revents&unix.POLLIN == 0 {
			continue
		}
		dp.fds[i].Revents = 0
		sz, _, err := unix.Recvfrom(dp.ports[i].fd, dp.buf, unix.MSG_DONTWAIT)
		if err != nil {
			if dp.killed.Load() {
				return nil, ErrKilled
			}
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return nil, fmt.Errorf("afpacket dataplane: recv %s: %w", dp.ports[i].name, err)
		}
		return &Frame{
			Port: uint16(i),
			Data: append([]byte(nil), dp.buf[:sz]...),
			Time: time.Now(),
		}, nil
	}
	return nil, nil
}

// Send transmits the frame out the interface bound to port.
func (dp *AFPacket) Send(port uint16, data []byte) error {
	if dp.killed.Load() {
		return ErrKilled
	}
	if int(port) >= len(dp.ports) {
		return fmt.Errorf("afpacket dataplane: port %d out of range", port)
	}
	p := dp.ports[port]
	addr := &unix.SockaddrLinklayer{
		Protocol: htons(unix.ETH_P_ALL),
		Ifindex:  p.ifindex,
		Halen:    6,
	}
	if len(data) >= 6 {
		copy(addr.Addr[:6], data[:6])
	}
	if err := unix.Sendto(p.fd, data, 0, addr); err != nil {
		if dp.killed.Load() {
			return ErrKilled
		}
		return fmt.Errorf("afpacket dataplane: send %s: %w", p.name, err)
	}
	return nil
}

// Kill closes all sockets. Safe against concurrent Poll and Send: the
// flag flips first, so a poll woken by the close reports ErrKilled, and
// only the first caller closes. The port slices stay in place for
// in-flight readers.
func (dp *AFPacket) Kill() error {
	if dp.killed.Swap(true) {
		return nil
	}
	for _, p := range dp.ports {
		unix.Close(p.fd)
	}
	return nil
}
