package conn

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/rileyhilliard/pcmon/internal/frame"
)

// manualClock fires timers only when advanced.
type manualClock struct {
	mu        sync.Mutex
	now       time.Duration
	timers    []*manualTimer
	scheduled chan *manualTimer
}

type manualTimer struct {
	clock   *manualClock
	at      time.Duration
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func newManualClock() *manualClock {
	return &manualClock{scheduled: make(chan *manualTimer, 16)}
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	t := &manualTimer{clock: c, at: c.now + d, delay: d, f: f}
	c.timers = append(c.timers, t)
	c.mu.Unlock()
	c.scheduled <- t
	return t
}

// Advance moves time forward and runs every timer that came due.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

// Pending counts timers that are neither stopped nor fired.
func (c *manualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// Fire runs the callback regardless of state, like a timer whose fire raced
// with Stop.
func (t *manualTimer) Fire() {
	t.f()
}

func (t *manualTimer) Stopped() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.stopped
}

// fakeTransport delivers messages pushed by the test.
type fakeTransport struct {
	msgs      chan []byte
	closeOnce sync.Once
	closed    chan struct{}
	err       error
	mu        sync.Mutex
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{msgs: make(chan []byte, 16), closed: make(chan struct{})}
}

func (t *fakeTransport) ReadMessage() ([]byte, error) {
	select {
	case m := <-t.msgs:
		return m, nil
	case <-t.closed:
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.err != nil {
			return nil, t.err
		}
		return nil, io.EOF
	}
}

func (t *fakeTransport) Close() error {
	t.closeOnce.Do(func() { close(t.closed) })
	return nil
}

// Drop ends the stream from the producer side with err.
func (t *fakeTransport) Drop(err error) {
	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
	t.Close()
}

func (t *fakeTransport) IsClosed() bool {
	select {
	case <-t.closed:
		return true
	default:
		return false
	}
}

// fakeDialer hands out fakeTransports, or fails while fail is set.
type fakeDialer struct {
	mu       sync.Mutex
	fail     bool
	dials    int
	attempts chan *fakeTransport // nil entry for a failed attempt
}

func newFakeDialer() *fakeDialer {
	return &fakeDialer{attempts: make(chan *fakeTransport, 16)}
}

func (d *fakeDialer) Dial(ctx context.Context, endpoint string) (Transport, error) {
	d.mu.Lock()
	d.dials++
	fail := d.fail
	d.mu.Unlock()

	if fail {
		d.attempts <- nil
		return nil, errors.New("connection refused")
	}
	t := newFakeTransport()
	d.attempts <- t
	return t, nil
}

func (d *fakeDialer) SetFail(fail bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fail = fail
}

func (d *fakeDialer) Dials() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dials
}

// heldDialer blocks each dial until release is closed, ignoring ctx, then
// hands out a fresh transport.
type heldDialer struct {
	entered chan struct{}
	release chan struct{}
	dialed  chan *fakeTransport
}

func newHeldDialer() *heldDialer {
	return &heldDialer{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
		dialed:  make(chan *fakeTransport, 1),
	}
}

func (d *heldDialer) Dial(ctx context.Context, endpoint string) (Transport, error) {
	d.entered <- struct{}{}
	<-d.release
	t := newFakeTransport()
	d.dialed <- t
	return t, nil
}

// recordingHandler captures what the manager emits.
type recordingHandler struct {
	frames chan *frame.Frame
	status chan bool
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{frames: make(chan *frame.Frame, 16), status: make(chan bool, 16)}
}

func (h *recordingHandler) HandleFrame(f *frame.Frame) { h.frames <- f }
func (h *recordingHandler) HandleStatus(c bool)        { h.status <- c }
