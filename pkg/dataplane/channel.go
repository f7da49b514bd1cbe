package dataplane

import (
	"fmt"
	"sync"
	"time"
)

// Channel is an in-memory Dataplane. Inject feeds the receive side;
// transmitted frames are delivered on TxChan. It backs tests and the
// management-plane packet injection path.
type Channel struct {
	portCount int

	rx chan *Frame
	tx chan *Frame

	mu     sync.Mutex
	killed chan struct{}
}

var _ Dataplane = (*Channel)(nil)

// NewChannel returns a Channel dataplane. portCount bounds the port
// numbers accepted by Send and Inject; zero means unchecked.
func NewChannel(portCount int) *Channel {
	return &Channel{
		portCount: portCount,
		rx:        make(chan *Frame, 1024),
		tx:        make(chan *Frame, 1024),
		killed:    make(chan struct{}),
	}
}

// Inject queues a frame on the receive side as if it arrived on port.
func (c *Channel) Inject(port uint16, data []byte) error {
	if err := c.checkPort(port); err != nil {
		return err
	}
	f := &Frame{Port: port, Data: append([]byte(nil), data...), Time: time.Now()}
	select {
	case <-c.killed:
		return ErrKilled
	case c.rx <- f:
		return nil
	}
}

// Poll returns the next injected frame, nil on timeout.
func (c *Channel) Poll(timeout time.Duration) (*Frame, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-c.killed:
		return nil, ErrKilled
	case f := <-c.rx:
		return f, nil
	case <-t.C:
		return nil, nil
	}
}

// Send delivers the frame on TxChan. It drops the frame rather than
// block when the channel is full.
func (c *Channel) Send(port uint16, data []byte) error {
	if err := c.checkPort(port); err != nil {
		return err
	}
	f := &Frame{Port: port, Data: append([]byte(nil), data...), Time: time.Now()}
	select {
	case <-c.killed:
		return ErrKilled
	case c.tx <- f:
		return nil
	default:
		return fmt.Errorf("channel dataplane: tx full, frame for port %d dropped", port)
	}
}

// TxChan exposes the transmitted frames.
func (c *Channel) TxChan() <-chan *Frame { return c.tx }

// Kill unblocks pending Poll and fails subsequent calls.
func (c *Channel) Kill() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case <-c.killed:
	default:
		close(c.killed)
	}
	return nil
}

func (c *Channel) checkPort(port uint16) error {
	if c.portCount > 0 && int(port) >= c.portCount {
		return fmt.Errorf("channel dataplane: port %d out of range", port)
	}
	return nil
}
