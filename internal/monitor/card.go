package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/pcmon/internal/render"
)

// Card layout constants
const (
	cardGraphHeight = 2 // braille chart rows
	labelWidth      = 7
	minBarWidth     = 6
)

// renderCards renders every panel in display order.
func (m Model) renderCards() []string {
	w := m.cardWidth()
	return []string{
		m.renderCPUCard(w),
		m.renderGPUCard(w),
		m.renderMemoryCard(w),
		m.renderNetworkCard(w),
		m.renderDiskCard(w),
		m.renderPingCard(w),
		m.renderFansCard(w),
		m.renderProcessCard(w),
		m.renderSystemCard(w),
	}
}

// panel frames body lines between a titled top border and a bottom border.
func panel(title, headline string, body []string, width int) string {
	lines := make([]string, 0, len(body)+2)
	lines = append(lines, SectionHeader(title, headline, width))
	for _, l := range body {
		for _, sub := range strings.Split(l, "\n") {
			lines = append(lines, SectionContentLine(sub, width))
		}
	}
	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

func label(s string) string {
	return LabelStyle.Render(padRight(s, labelWidth))
}

// field renders "label value".
func field(name, value string) string {
	return label(name) + ValueStyle.Render(value)
}

// meter renders "label ▰▰▰▱▱ value" filling the inner width.
func meter(name string, percent float64, value string, inner int, thin bool) string {
	barWidth := inner - labelWidth - 1 - lipgloss.Width(value)
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	bar := ProgressBar(barWidth, percent)
	if thin {
		bar = ThinProgressBar(barWidth, percent)
	}
	return label(name) + bar + " " + ValueStyle.Render(value)
}

func (m Model) gaugeMeter(name string, target render.Target, inner int) string {
	pct, text := m.canvas.gauge(target)
	return meter(name, pct, text, inner, false)
}

func (m Model) renderCPUCard(width int) string {
	c := m.canvas
	inner := width - 4

	body := []string{
		m.gaugeMeter("Load", render.TargetCPUGauge, inner),
		m.gaugeMeter("Temp", render.TargetCPUTempGauge, inner),
		field("Clock", c.text(render.TargetCPUFrequency)+" / "+c.text(render.TargetCPUFrequencyMax)),
		field("Cores", c.text(render.TargetCPUCores)+" cores, "+c.text(render.TargetCPUThreads)+" threads"),
		field("Cache", "L2 "+c.text(render.TargetCPUCacheL2)+"  L3 "+c.text(render.TargetCPUCacheL3)),
		RenderBrailleSeries(c.charts[render.TargetCPUChart], inner, cardGraphHeight, ColorGraph),
	}
	if bars := c.barRows[render.TargetCPUCoreBars]; len(bars) > 0 {
		body = append(body, label("Core")+RenderCoreBars(bars, inner-labelWidth))
	}
	return panel("CPU", c.text(render.TargetCPUUsage), body, width)
}

func (m Model) renderGPUCard(width int) string {
	c := m.canvas
	inner := width - 4

	body := []string{
		ValueStyle.Bold(true).Render(truncate(c.text(render.TargetGPUName), inner)),
		m.gaugeMeter("Load", render.TargetGPUGauge, inner),
		m.gaugeMeter("Temp", render.TargetGPUTempGauge, inner),
		meter("VRAM", c.bar(render.TargetGPUVRAMBar), c.text(render.TargetGPUVRAM), inner, true),
		field("Clock", c.text(render.TargetGPUClock)+" / "+c.text(render.TargetGPUMemoryClock)+" mem"),
		field("Fan", c.text(render.TargetGPUFan)),
		field("Power", c.text(render.TargetGPUPower)),
		RenderBrailleSeries(c.charts[render.TargetGPUChart], inner, cardGraphHeight, ColorGraph),
	}
	return panel("GPU", c.text(render.TargetGPUUsage), body, width)
}

func (m Model) renderMemoryCard(width int) string {
	c := m.canvas
	inner := width - 4

	body := []string{
		m.gaugeMeter("Used", render.TargetMemoryGauge, inner),
		field("Size", c.text(render.TargetMemoryUsed)+" / "+c.text(render.TargetMemoryTotal)),
		field("Free", c.text(render.TargetMemoryAvailable)),
		field("Cached", c.text(render.TargetMemoryCached)),
		meter("Swap", c.bar(render.TargetMemorySwapBar), c.text(render.TargetMemorySwap), inner, true),
		field("Type", c.text(render.TargetMemoryType)+" @ "+c.text(render.TargetMemorySpeed)),
		field("Slots", c.text(render.TargetMemorySlots)),
		RenderBrailleSeries(c.charts[render.TargetMemoryChart], inner, cardGraphHeight, ColorGraph),
	}
	return panel("Memory", c.text(render.TargetMemoryPercent), body, width)
}

func (m Model) renderNetworkCard(width int) string {
	c := m.canvas
	inner := width - 4
	chart := c.duals[render.TargetNetworkChart]

	body := []string{
		field("↓ In", c.text(render.TargetNetworkDown)),
		field("↑ Out", c.text(render.TargetNetworkUp)),
		field("Loss", c.text(render.TargetNetworkLoss)),
		RenderDualSparkline(chart.a, chart.b, inner),
	}
	return panel("Network", "", body, width)
}

func (m Model) renderDiskCard(width int) string {
	c := m.canvas
	inner := width - 4
	chart := c.duals[render.TargetDiskChart]

	body := []string{
		field("Read", c.text(render.TargetDiskRead)),
		field("Write", c.text(render.TargetDiskWrite)),
		RenderDualSparkline(chart.a, chart.b, inner),
	}
	return panel("Disk", "", body, width)
}

func (m Model) renderPingCard(width int) string {
	c := m.canvas
	body := []string{
		field("Host", c.text(render.TargetPingHost)),
	}
	return panel("Ping", c.text(render.TargetPingLatency), body, width)
}

func (m Model) renderFansCard(width int) string {
	c := m.canvas
	inner := width - 4

	var body []string
	if status := c.texts[render.TargetFansStatus]; status != "" {
		body = append(body, MutedStyle.Render(status))
	}
	for _, row := range c.lists[render.TargetFansList] {
		body = append(body, columns(inner, row, 0, 10))
	}
	if len(body) == 0 {
		body = append(body, MutedStyle.Render("waiting for data"))
	}
	return panel("Fans", "", body, width)
}

// Process table column widths; the name column takes what is left.
const (
	pidWidth = 7
	pctWidth = 7
	memWidth = 9
)

func (m Model) renderProcessCard(width int) string {
	c := m.canvas
	inner := width - 4
	widths := []int{pidWidth, 0, pctWidth, memWidth}

	body := []string{
		LabelStyle.Render(columns(inner, render.Row{"PID", "NAME", "CPU", "MEM"}, widths...)),
	}
	for _, row := range c.lists[render.TargetProcessList] {
		body = append(body, ValueStyle.Render(columns(inner, row, widths...)))
	}
	return panel("Processes", "", body, width)
}

func (m Model) renderSystemCard(width int) string {
	c := m.canvas
	inner := width - 4

	body := []string{
		field("Host", c.text(render.TargetSystemHostname)),
		field("OS", truncate(c.text(render.TargetSystemOS), inner-labelWidth)),
		field("Uptime", c.text(render.TargetSystemUptime)),
		field("Board", truncate(c.text(render.TargetSystemMotherboard), inner-labelWidth)),
	}
	for _, row := range c.lists[render.TargetSystemDrives] {
		body = append(body, label("Drive")+ValueStyle.Render(columns(inner-labelWidth, row, 0, 8)))
	}
	return panel("System", "", body, width)
}

// columns lays out a row in fixed-width cells. A zero width marks the
// flexible column, which gets whatever inner leaves after the others.
func columns(inner int, row render.Row, widths ...int) string {
	fixed := 0
	for _, w := range widths {
		fixed += w
	}
	flex := inner - fixed - (len(widths) - 1)
	if flex < 4 {
		flex = 4
	}

	cells := make([]string, 0, len(row))
	for i, cell := range row {
		w := flex
		if i < len(widths) && widths[i] > 0 {
			w = widths[i]
		}
		if i == len(row)-1 {
			cells = append(cells, truncate(cell, w))
			continue
		}
		cells = append(cells, padRight(truncate(cell, w), w))
	}
	return strings.Join(cells, " ")
}

// truncate cuts s to maxLen runes, ending in "..." when cut.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 3 || len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
