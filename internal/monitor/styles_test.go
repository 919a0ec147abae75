package monitor

import (
	"math"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	// Plain output so tests can compare rendered text directly.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestMetricColor(t *testing.T) {
	tests := []struct {
		percent float64
		want    lipgloss.Color
	}{
		{0, ColorHealthy},
		{69.9, ColorHealthy},
		{70, ColorWarning},
		{89.9, ColorWarning},
		{90, ColorCritical},
		{150, ColorCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MetricColor(tt.percent), "percent %v", tt.percent)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		percent float64
		want    string
	}{
		{"half", 10, 50, "▰▰▰▰▰▱▱▱▱▱"},
		{"empty", 4, 0, "▱▱▱▱"},
		{"full", 4, 100, "▰▰▰▰"},
		{"over", 4, 250, "▰▰▰▰"},
		{"negative", 4, -10, "▱▱▱▱"},
		{"nan", 4, math.NaN(), "▱▱▱▱"},
		{"zero width", 0, 100, "▰"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressBar(tt.width, tt.percent))
		})
	}
}

func TestThinProgressBar(t *testing.T) {
	assert.Equal(t, "━━──", ThinProgressBar(4, 50))
	assert.Equal(t, "━━━━", ThinProgressBar(4, 150))
}

func TestSectionHeaderWidth(t *testing.T) {
	assert.Equal(t, 30, lipgloss.Width(SectionHeader("CPU", "42%", 30)))
	assert.Equal(t, 30, lipgloss.Width(SectionHeader("Network", "", 30)))
	assert.Equal(t, "╭─ CPU ─────────────── 42% ╮", SectionHeader("CPU", "42%", 28))
}

func TestSectionFooter(t *testing.T) {
	assert.Equal(t, "╰────╯", SectionFooter(6))
	assert.Equal(t, "╰╯", SectionFooter(0))
}

func TestSectionContentLine(t *testing.T) {
	assert.Equal(t, "│ hi   │", SectionContentLine("hi", 8))
	assert.Equal(t, 8, lipgloss.Width(SectionContentLine("much too long for the box", 8)))
}
