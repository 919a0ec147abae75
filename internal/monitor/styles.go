package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	ColorHealthy  = lipgloss.Color("#39FF14")
	ColorWarning  = lipgloss.Color("#FFAA00")
	ColorCritical = lipgloss.Color("#FF0055")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent    = lipgloss.Color("#FF2E97") // titles, outbound traffic
	ColorAccentDim = lipgloss.Color("#BF40FF")
	ColorGraph     = lipgloss.Color("#00FFFF") // single series, inbound traffic
)

// Severity thresholds for percentage metrics.
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StatusLiveStyle = lipgloss.NewStyle().
			Foreground(ColorHealthy).
			Bold(true)

	StatusWaitingStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	StatusLostStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)

// Status glyphs for the header.
const (
	GlyphLive    = "◉"
	GlyphWaiting = "◌"
)

// ReconnectSpinnerFrames animate the header while the stream is down.
var ReconnectSpinnerFrames = []string{"◐", "◓", "◑", "◒"}

// MetricColor returns green below 70%, amber below 90%, red above.
func MetricColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorCritical
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// MetricStyle returns a foreground style colored by MetricColor.
func MetricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(MetricColor(percent))
}

// fillCount converts a 0-100 percentage into filled cells out of width.
func fillCount(width int, percent float64) int {
	if percent < 0 || percent != percent {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	return filled
}

// ProgressBar renders a ▰▱ bar colored by threshold.
func ProgressBar(width int, percent float64) string {
	if width < 1 {
		width = 1
	}
	filled := fillCount(width, percent)
	bar := strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
	return MetricStyle(percent).Render(bar)
}

// ThinProgressBar renders a ━─ bar colored by threshold.
func ThinProgressBar(width int, percent float64) string {
	if width < 1 {
		width = 1
	}
	filled := fillCount(width, percent)
	bar := strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
	return MetricStyle(percent).Render(bar)
}

// SectionHeader renders the top border of a panel with the title on the left
// and a headline value on the right.
//
//	╭─ Title ─────────────── Value ╮
func SectionHeader(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	leftWidth := 3 + lipgloss.Width(title) + 1
	rightWidth := 1 + lipgloss.Width(value) + 2
	if value == "" {
		rightWidth = 2
	}
	fill := width - leftWidth - rightWidth
	if fill < 1 {
		fill = 1
	}

	border := lipgloss.NewStyle().Foreground(ColorBorder)
	valueStyle := lipgloss.NewStyle().Foreground(ColorGraph).Bold(true)

	out := border.Render("╭─ ") + TitleStyle.Render(title) + border.Render(" "+strings.Repeat("─", fill))
	if value != "" {
		out += border.Render(" ") + valueStyle.Render(value)
	}
	return out + border.Render(" ╮")
}

// SectionFooter renders the bottom border of a panel.
func SectionFooter(width int) string {
	if width < 2 {
		width = 2
	}
	return lipgloss.NewStyle().Foreground(ColorBorder).Render("╰" + strings.Repeat("─", width-2) + "╯")
}

// SectionContentLine pads content between the panel's side borders.
// Content wider than the panel is cut.
//
//	│ content      │
func SectionContentLine(content string, width int) string {
	if width < 4 {
		width = 4
	}
	inner := width - 4
	if lipgloss.Width(content) > inner {
		content = lipgloss.NewStyle().MaxWidth(inner).Render(content)
	}
	padding := inner - lipgloss.Width(content)
	if padding < 0 {
		padding = 0
	}

	border := lipgloss.NewStyle().Foreground(ColorBorder).Render("│")
	return border + " " + content + strings.Repeat(" ", padding) + " " + border
}
