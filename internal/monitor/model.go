package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/pcmon/internal/dashboard"
	"github.com/rileyhilliard/pcmon/internal/frame"
	"github.com/rileyhilliard/pcmon/internal/logger"
	"github.com/rileyhilliard/pcmon/internal/render"
)

// LayoutMode is the responsive layout picked from the terminal width.
type LayoutMode int

const (
	// LayoutSingle stacks every panel in one column.
	LayoutSingle LayoutMode = iota
	// LayoutTwoColumn places panels two per row.
	LayoutTwoColumn
	// LayoutThreeColumn places panels three per row.
	LayoutThreeColumn
)

// Width breakpoints for layout modes
const (
	BreakpointTwoColumn   = 84
	BreakpointThreeColumn = 126
)

// spinnerInterval is the frame rate of the reconnect spinner.
const spinnerInterval = 150 * time.Millisecond

// FrameMsg carries one decoded telemetry frame into the program.
type FrameMsg struct {
	Frame *frame.Frame
}

// StatusMsg carries a connection status change into the program.
type StatusMsg struct {
	Connected bool
}

// Options configures a Model.
type Options struct {
	// Origin is shown in the header.
	Origin string
	// Dashboard tunes the reducer.
	Dashboard dashboard.Options
	// Logger defaults to a "[dashboard]" env logger.
	Logger logger.Logger
}

// Model is the Bubble Tea model for the dashboard. Frames and status changes
// are reduced and rendered inside Update, so they are handled one at a time
// in arrival order and View never observes a half-applied frame.
type Model struct {
	origin  string
	state   *dashboard.State
	canvas  *canvas
	adapter *render.Adapter

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	frames     int
	lastUpdate time.Time
	now        func() time.Time

	width    int
	height   int
	quitting bool
}

// NewModel creates a dashboard model with an empty, placeholder-filled view.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logger.NewEnvLogger("[dashboard]")
	}

	c := newCanvas()
	state := dashboard.NewState(opts.Dashboard, opts.Logger)
	adapter := render.NewAdapter(c)
	adapter.Render(state.View())

	s := spinner.New(spinner.WithSpinner(spinner.Spinner{
		Frames: ReconnectSpinnerFrames,
		FPS:    spinnerInterval,
	}))
	s.Style = StatusLostStyle

	h := help.New()
	h.Styles.ShortKey = LabelStyle
	h.Styles.ShortDesc = MutedStyle
	h.Styles.FullKey = ValueStyle.Bold(true)
	h.Styles.FullDesc = LabelStyle

	return Model{
		origin:  opts.Origin,
		state:   state,
		canvas:  c,
		adapter: adapter,
		keys:    DefaultKeyMap(),
		help:    h,
		spinner: s,
		now:     time.Now,
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case FrameMsg:
		vm := m.state.Apply(msg.Frame)
		m.adapter.Render(vm)
		m.frames = vm.Frames
		m.lastUpdate = vm.Updated

	case StatusMsg:
		m.adapter.Status(msg.Connected)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.help.ShowAll {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// Connected reports the last status drawn.
func (m Model) Connected() bool {
	return m.canvas.connected
}

// Frames returns how many frames have been applied this session.
func (m Model) Frames() int {
	return m.frames
}

// SecondsSinceUpdate returns how long ago the last frame was applied.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(m.now().Sub(m.lastUpdate).Seconds())
}

// LayoutMode returns the layout for the current terminal width.
func (m Model) LayoutMode() LayoutMode {
	switch {
	case m.width >= BreakpointThreeColumn:
		return LayoutThreeColumn
	case m.width >= BreakpointTwoColumn:
		return LayoutTwoColumn
	default:
		return LayoutSingle
	}
}
