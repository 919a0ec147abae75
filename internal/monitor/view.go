package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card sizing
const (
	defaultCardWidth = 40
	minCardWidth     = 30
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.layoutCards(m.renderCards()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader shows connection status and session counters.
func (m Model) renderHeader() string {
	var updateText string
	switch since := m.SecondsSinceUpdate(); {
	case m.frames == 0:
		updateText = "waiting for data"
	case since == 0:
		updateText = "last update just now"
	case since == 1:
		updateText = "last update 1s ago"
	default:
		updateText = fmt.Sprintf("last update %ds ago", since)
	}

	title := TitleStyle.Render("pcmon")
	stats := LabelStyle.Render(fmt.Sprintf(" | %s | %d frames | %s", m.origin, m.frames, updateText))

	return HeaderStyle.Render(title + " " + m.renderStatus() + stats)
}

func (m Model) renderStatus() string {
	switch {
	case !m.canvas.statusSeen:
		return StatusWaitingStyle.Render(GlyphWaiting + " connecting")
	case m.canvas.connected:
		return StatusLiveStyle.Render(GlyphLive + " live")
	default:
		return m.spinner.View() + StatusLostStyle.Render(" reconnecting")
	}
}

// cardWidth divides the terminal between the layout's columns.
func (m Model) cardWidth() int {
	if m.width == 0 {
		return defaultCardWidth
	}
	cols := m.columns()
	w := m.width/cols - 1
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

func (m Model) columns() int {
	switch m.LayoutMode() {
	case LayoutThreeColumn:
		return 3
	case LayoutTwoColumn:
		return 2
	default:
		return 1
	}
}

// layoutCards arranges cards in rows of the layout's column count.
func (m Model) layoutCards(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	perRow := m.columns()

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		row := cards[i:end]
		spaced := make([]string, 0, len(row)*2)
		for j, c := range row {
			if j > 0 {
				spaced = append(spaced, " ")
			}
			spaced = append(spaced, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, spaced...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	return FooterStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
