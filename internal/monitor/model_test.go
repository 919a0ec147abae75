package monitor

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/pcmon/internal/frame"
	"github.com/rileyhilliard/pcmon/internal/logger"
	"github.com/rileyhilliard/pcmon/internal/render"
	"github.com/rileyhilliard/pcmon/internal/series"
)

func newTestModel() Model {
	return NewModel(Options{Origin: "http://127.0.0.1:8080", Logger: logger.Noop()})
}

func decode(t *testing.T, raw string) *frame.Frame {
	t.Helper()
	f, err := frame.Decode([]byte(raw))
	require.NoError(t, err)
	return f
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestNewModelStartsWithPlaceholders(t *testing.T) {
	m := newTestModel()

	assert.Zero(t, m.Frames())
	assert.False(t, m.Connected())
	assert.Equal(t, "--", m.canvas.text(render.TargetCPUUsage))
	assert.Len(t, m.canvas.charts[render.TargetCPUChart], series.DefaultCapacity, "initial render draws the null-filled window")

	view := m.View()
	assert.Contains(t, view, "pcmon")
	assert.Contains(t, view, "connecting")
	assert.Contains(t, view, "waiting for data")
	assert.Contains(t, view, "http://127.0.0.1:8080")
}

func TestModelAppliesFrames(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, FrameMsg{Frame: decode(t, `{"cpu": {"usage": 42, "per_core": [10, 90]}, "memory": {"percent": 61, "total": 16}}`)})
	assert.Nil(t, cmd)

	assert.Equal(t, 1, m.Frames())
	assert.Equal(t, "42.0%", m.canvas.text(render.TargetCPUUsage))
	assert.Equal(t, []float64{10, 90}, m.canvas.barRows[render.TargetCPUCoreBars])
	assert.Equal(t, "--", m.canvas.text(render.TargetGPUName), "absent category keeps its placeholder")

	view := m.View()
	assert.Contains(t, view, "42.0%")
	assert.Contains(t, view, "1 frames")
}

func TestModelAppliesFramesInArrivalOrder(t *testing.T) {
	m := newTestModel()

	for _, raw := range []string{`{"cpu": {"usage": 1}}`, `{"cpu": {"usage": null}}`, `{"cpu": {"usage": 3}}`} {
		m, _ = update(t, m, FrameMsg{Frame: decode(t, raw)})
	}

	chart := m.canvas.charts[render.TargetCPUChart]
	require.Len(t, chart, series.DefaultCapacity)
	tail := chart[len(chart)-3:]
	assert.Equal(t, []series.Point[float64]{series.Some(1.0), series.Null[float64](), series.Some(3.0)}, tail)
	assert.Equal(t, 3, m.Frames())
}

func TestModelStatus(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, StatusMsg{Connected: true})
	assert.True(t, m.Connected())
	assert.Contains(t, m.View(), "live")

	m, _ = update(t, m, StatusMsg{Connected: false})
	assert.False(t, m.Connected())
	assert.Contains(t, m.View(), "reconnecting")
}

func TestModelStatePersistsAcrossReconnects(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, StatusMsg{Connected: true})
	m, _ = update(t, m, FrameMsg{Frame: decode(t, `{"cpu": {"usage": 5}}`)})
	m, _ = update(t, m, StatusMsg{Connected: false})
	m, _ = update(t, m, StatusMsg{Connected: true})

	assert.Equal(t, "5.0%", m.canvas.text(render.TargetCPUUsage))
	assert.Equal(t, 1, m.Frames())
}

func TestModelQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := update(t, newTestModel(), tt.msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel()
	help := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}

	m, _ = update(t, m, help)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m, _ = update(t, m, help)
	assert.NotContains(t, m.View(), "Keyboard Shortcuts")

	m, _ = update(t, m, help)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "Keyboard Shortcuts")
}

func TestModelUnboundKeyIgnored(t *testing.T) {
	m, cmd := update(t, newTestModel(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.View())
}

func TestModelLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{0, LayoutSingle},
		{83, LayoutSingle},
		{84, LayoutTwoColumn},
		{125, LayoutTwoColumn},
		{126, LayoutThreeColumn},
		{200, LayoutThreeColumn},
	}

	for _, tt := range tests {
		m, _ := update(t, newTestModel(), tea.WindowSizeMsg{Width: tt.width, Height: 50})
		assert.Equal(t, tt.want, m.LayoutMode(), "width %d", tt.width)
	}
}

func TestModelCardWidth(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, defaultCardWidth, m.cardWidth())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 150, Height: 50})
	assert.Equal(t, 49, m.cardWidth())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 50})
	assert.Equal(t, minCardWidth, m.cardWidth())
}

func TestModelSecondsSinceUpdate(t *testing.T) {
	m := newTestModel()
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m.state.SetClock(func() time.Time { return start })

	assert.Zero(t, m.SecondsSinceUpdate())

	m, _ = update(t, m, FrameMsg{Frame: decode(t, `{}`)})
	m.now = func() time.Time { return start.Add(7 * time.Second) }

	assert.Equal(t, 7, m.SecondsSinceUpdate())
	assert.Contains(t, m.View(), "last update 7s ago")
}

func TestModelViewRendersEveryPanel(t *testing.T) {
	m, _ := update(t, newTestModel(), tea.WindowSizeMsg{Width: 130, Height: 60})
	m, _ = update(t, m, FrameMsg{Frame: decode(t, `{
		"gpu": {"available": true, "name": "RTX 3080", "usage": 20},
		"ping": {"ping": 12.4, "host": "8.8.8.8", "success": true},
		"fans": {"fans": [{"name": "CPU Fan", "rpm": 1200}], "count": 1},
		"processes": [{"pid": 4242, "name": "postgres", "cpu_percent": 3.5, "memory_percent": 1}],
		"system": {"available": true, "hostname": "box", "drives": [{"model": "WD Blue", "size": 500}]}
	}`)})

	view := m.View()
	for _, want := range []string{"CPU", "GPU", "Memory", "Network", "Disk", "Ping", "Fans", "Processes", "System",
		"RTX 3080", "12 ms", "8.8.8.8", "CPU Fan", "1200 RPM", "4242", "postgres", "box", "WD Blue", "500 GB"} {
		assert.Contains(t, view, want)
	}
	rows := strings.Split(m.layoutCards([]string{"a", "b", "c", "d"}), "\n")
	assert.Len(t, rows, 2, "four cards wrap into two rows of three")
}

func TestModelSpinnerKeepsTicking(t *testing.T) {
	m := newTestModel()
	tick := m.spinner.Tick()

	_, cmd := update(t, m, tick)
	assert.NotNil(t, cmd)
}
