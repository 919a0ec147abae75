// Package conn keeps the telemetry stream open.
//
// A Manager runs one event loop (Run) that owns the connection state, the
// live transport and the reconnect timer. Dial goroutines, read pumps and
// timers never touch that state; they post events tagged with the attempt
// generation or timer token they belong to, and the loop drops events whose
// tag is stale. This keeps at most one live transport and one pending
// reconnect timer at any moment.
package conn

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/rileyhilliard/pcmon/internal/errors"
	"github.com/rileyhilliard/pcmon/internal/frame"
	"github.com/rileyhilliard/pcmon/internal/logger"
)

// DefaultReconnectDelay is the fixed wait between a close and the next
// connection attempt. There is no backoff and no retry ceiling.
const DefaultReconnectDelay = 2000 * time.Millisecond

// Handler receives decoded frames and status changes. Both are called from
// the manager's loop goroutine, one at a time, in arrival order.
type Handler interface {
	HandleFrame(f *frame.Frame)
	HandleStatus(connected bool)
}

// Options configures a Manager.
type Options struct {
	// Origin is the dashboard origin the endpoint is derived from.
	Origin string
	// ReconnectDelay defaults to DefaultReconnectDelay.
	ReconnectDelay time.Duration
	// Dialer defaults to a WebsocketDialer.
	Dialer Dialer
	// Clock defaults to RealClock.
	Clock Clock
	// Logger defaults to a "[conn]" env logger.
	Logger logger.Logger
}

// Manager owns the stream connection and its reconnect policy.
type Manager struct {
	endpoint string
	delay    time.Duration
	dialer   Dialer
	clock    Clock
	handler  Handler
	log      logger.Logger
	session  string

	events   chan event
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	running  atomic.Bool
	postMu   sync.RWMutex
	exited   bool
	state    atomic.Int32

	// Owned by the loop goroutine.
	ctx        context.Context
	gen        uint64
	transport  Transport
	dialCancel context.CancelFunc
	timer      Timer
	timerToken uint64
	decodeLog  *rate.Limiter
	suppressed int
}

type event interface{}

type (
	startEvent  struct{}
	dialedEvent struct {
		gen       uint64
		transport Transport
		err       error
	}
	messageEvent struct {
		gen  uint64
		data []byte
	}
	errorEvent struct {
		gen uint64
		err error
	}
	closedEvent struct {
		gen uint64
		err error
	}
	timerEvent struct {
		token uint64
	}
)

// NewManager creates a manager for opts.Origin. It fails only when the
// origin cannot be turned into a stream endpoint.
func NewManager(opts Options, h Handler) (*Manager, error) {
	endpoint, err := Endpoint(opts.Origin)
	if err != nil {
		return nil, err
	}
	if opts.ReconnectDelay <= 0 {
		opts.ReconnectDelay = DefaultReconnectDelay
	}
	if opts.Dialer == nil {
		opts.Dialer = WebsocketDialer{}
	}
	if opts.Clock == nil {
		opts.Clock = RealClock()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewEnvLogger("[conn]")
	}

	return &Manager{
		endpoint:  endpoint,
		delay:     opts.ReconnectDelay,
		dialer:    opts.Dialer,
		clock:     opts.Clock,
		handler:   h,
		log:       opts.Logger,
		session:   uuid.NewString()[:8],
		events:    make(chan event, 64),
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
		decodeLog: rate.NewLimiter(rate.Every(5*time.Second), 3),
	}, nil
}

// Endpoint returns the stream URL.
func (m *Manager) Endpoint() string {
	return m.endpoint
}

// Session returns the short id that tags this manager's log lines.
func (m *Manager) Session() string {
	return m.session
}

// State returns the current connection state.
func (m *Manager) State() State {
	return State(m.state.Load())
}

// Done is closed once Run has returned.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Start requests a connection attempt. It is ignored while an attempt is in
// flight or a connection is open. Safe to call from any goroutine, including
// before Run.
func (m *Manager) Start() {
	m.post(startEvent{})
}

// Stop ends the loop: the pending reconnect timer is cancelled and the
// transport closed. A timer that fires afterwards does nothing.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// Run processes events until ctx is cancelled or Stop is called.
func (m *Manager) Run(ctx context.Context) error {
	if !m.running.CompareAndSwap(false, true) {
		return errors.New(errors.ErrTransport, "Connection manager is already running", "")
	}
	m.ctx = ctx
	defer m.exit()

	m.log.Debug("session %s: stream endpoint %s", m.session, m.endpoint)
	for {
		select {
		case <-ctx.Done():
			m.shutdown()
			return nil
		case <-m.stopCh:
			m.shutdown()
			return nil
		case ev := <-m.events:
			m.handle(ev)
		}
	}
}

// post hands an event to the loop and reports whether it was queued. It
// gives up once the loop has exited so late timers and read pumps never block.
func (m *Manager) post(ev event) bool {
	m.postMu.RLock()
	defer m.postMu.RUnlock()
	if m.exited {
		return false
	}
	select {
	case m.events <- ev:
		return true
	case <-m.done:
		return false
	}
}

// exit closes done, then closes any transport still queued in a dial result
// the loop never handled. Nothing can be queued once exited is set.
func (m *Manager) exit() {
	close(m.done)
	m.postMu.Lock()
	m.exited = true
	m.postMu.Unlock()

	for {
		select {
		case ev := <-m.events:
			if d, ok := ev.(dialedEvent); ok && d.transport != nil {
				_ = d.transport.Close()
			}
		default:
			return
		}
	}
}

func (m *Manager) handle(ev event) {
	switch ev := ev.(type) {
	case startEvent:
		m.start()
	case dialedEvent:
		m.dialed(ev)
	case messageEvent:
		if ev.gen == m.gen && m.State() == Connected {
			m.message(ev.data)
		}
	case errorEvent:
		if ev.gen == m.gen {
			m.log.Warn("session %s: transport error: %v", m.session, ev.err)
		}
	case closedEvent:
		m.closed(ev)
	case timerEvent:
		if ev.token != m.timerToken || m.timer == nil {
			m.log.Debug("session %s: ignoring stale reconnect timer", m.session)
			return
		}
		m.timer = nil
		m.start()
	}
}

func (m *Manager) setState(s State) {
	m.state.Store(int32(s))
}

func (m *Manager) start() {
	if s := m.State(); s == Connecting || s == Connected {
		m.log.Debug("session %s: start ignored while %s", m.session, s)
		return
	}

	m.cancelTimer()
	m.dropTransport()
	m.gen++
	m.setState(Connecting)

	ctx, cancel := context.WithCancel(m.ctx)
	m.dialCancel = cancel
	gen := m.gen
	m.log.Debug("session %s: connecting to %s (attempt %d)", m.session, m.endpoint, gen)

	go func() {
		t, err := m.dialer.Dial(ctx, m.endpoint)
		if !m.post(dialedEvent{gen: gen, transport: t, err: err}) && t != nil {
			_ = t.Close()
		}
	}()
}

func (m *Manager) dialed(ev dialedEvent) {
	if ev.gen != m.gen || m.State() != Connecting {
		if ev.transport != nil {
			_ = ev.transport.Close()
		}
		return
	}
	if m.dialCancel != nil {
		m.dialCancel()
		m.dialCancel = nil
	}

	if ev.err != nil {
		m.log.Warn("session %s: %s", m.session, errors.Summary(ev.err))
		m.disconnected()
		return
	}

	m.transport = ev.transport
	m.setState(Connected)
	m.log.Info("session %s: connected to %s", m.session, m.endpoint)
	m.handler.HandleStatus(true)

	go m.readPump(ev.gen, ev.transport)
}

func (m *Manager) readPump(gen uint64, t Transport) {
	for {
		data, err := t.ReadMessage()
		if err != nil {
			if classifyClose(err) != closeNormal {
				m.post(errorEvent{gen: gen, err: err})
			}
			m.post(closedEvent{gen: gen, err: err})
			return
		}
		m.post(messageEvent{gen: gen, data: data})
	}
}

func (m *Manager) message(data []byte) {
	f, err := frame.Decode(data)
	if err != nil {
		if m.decodeLog.Allow() {
			if m.suppressed > 0 {
				m.log.Warn("session %s: dropping frame: %s (%d similar suppressed)", m.session, errors.Summary(err), m.suppressed)
			} else {
				m.log.Warn("session %s: dropping frame: %s", m.session, errors.Summary(err))
			}
			m.suppressed = 0
		} else {
			m.suppressed++
		}
		return
	}
	m.handler.HandleFrame(f)
}

func (m *Manager) closed(ev closedEvent) {
	if ev.gen != m.gen || m.State() != Connected {
		return
	}
	if classifyClose(ev.err) == closeNormal {
		m.log.Info("session %s: stream closed by producer", m.session)
	} else {
		m.log.Info("session %s: stream lost", m.session)
	}
	m.dropTransport()
	m.disconnected()
}

// disconnected moves to Disconnected and schedules exactly one reconnect.
func (m *Manager) disconnected() {
	m.setState(Disconnected)
	m.handler.HandleStatus(false)
	m.scheduleReconnect()
}

func (m *Manager) scheduleReconnect() {
	m.cancelTimer()
	token := m.timerToken
	m.timer = m.clock.AfterFunc(m.delay, func() {
		m.post(timerEvent{token: token})
	})
	m.log.Debug("session %s: reconnecting in %s", m.session, m.delay)
}

// cancelTimer stops the pending timer and invalidates its token, so an event
// from a timer that already fired is dropped too.
func (m *Manager) cancelTimer() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.timerToken++
}

func (m *Manager) dropTransport() {
	if m.dialCancel != nil {
		m.dialCancel()
		m.dialCancel = nil
	}
	if m.transport != nil {
		_ = m.transport.Close()
		m.transport = nil
	}
}

func (m *Manager) shutdown() {
	m.cancelTimer()
	m.dropTransport()
	m.gen++
	m.setState(Disconnected)
	m.log.Debug("session %s: stopped", m.session)
}
