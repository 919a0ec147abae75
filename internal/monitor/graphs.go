package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/pcmon/internal/series"
)

// Braille patterns give each cell a 2x4 dot matrix:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// U+2800 is the empty cell; bit n set means dot n+1 is raised.
const brailleBase = '\u2800'

// brailleDots maps [row][col] inside a cell to its bit offset.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// sparkBlocks are the eight vertical levels of a one-row sparkline.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// peak returns the largest valid value across points, or 0.
func peak(points ...[]series.Point[float64]) float64 {
	var maxVal float64
	for _, ps := range points {
		for _, p := range ps {
			if p.Valid && p.V > maxVal {
				maxVal = p.V
			}
		}
	}
	return maxVal
}

// scaleFor returns the upper bound used to normalize a chart. Series that
// stay inside 0-100 are treated as percentages and get a fixed 0-100 scale;
// anything else scales to its largest valid value.
func scaleFor(points []series.Point[float64]) (maxVal float64, isPercentage bool) {
	for _, p := range points {
		if p.Valid && (p.V < 0 || p.V > 100) {
			return peak(points), false
		}
	}
	return 100, true
}

func normalize(v, maxVal float64) float64 {
	if maxVal <= 0 {
		return 0
	}
	n := v / maxVal
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// resamplePoints fits points into size slots. Downsampling keeps the peak of
// each bucket so spikes survive; a bucket with no valid point stays null.
// Shorter input is returned unchanged and is right-aligned by the caller.
func resamplePoints(points []series.Point[float64], size int) []series.Point[float64] {
	if size <= 0 {
		return nil
	}
	if len(points) <= size {
		return points
	}

	out := make([]series.Point[float64], size)
	bucket := float64(len(points)) / float64(size)
	for i := range out {
		start := int(float64(i) * bucket)
		end := int(float64(i+1) * bucket)
		if end > len(points) {
			end = len(points)
		}
		if start >= end {
			start = end - 1
		}

		peak := series.Null[float64]()
		for _, p := range points[start:end] {
			if p.Valid && (!peak.Valid || p.V > peak.V) {
				peak = p
			}
		}
		out[i] = peak
	}
	return out
}

// RenderBrailleSeries draws a series as a braille area chart of width cells
// by height rows, newest point on the right. Null points leave their column
// empty. Percentage series are colored by threshold per column, others use
// color.
func RenderBrailleSeries(points []series.Point[float64], width, height int, color lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	maxVal, isPercentage := scaleFor(points)
	totalDots := height * 4
	slots := width * 2
	data := resamplePoints(points, slots)
	offset := slots - len(data)

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = brailleBase
		}
	}
	colPeak := make([]float64, width)

	for i, p := range data {
		if !p.Valid {
			continue
		}
		col := (i + offset) / 2
		sub := (i + offset) % 2
		if p.V > colPeak[col] {
			colPeak[col] = p.V
		}

		dots := int(normalize(p.V, maxVal) * float64(totalDots))
		if dots == 0 && p.V > 0 {
			dots = 1
		}
		for d := 0; d < dots; d++ {
			row := height - 1 - d/4
			grid[row][col] |= rune(1) << brailleDots[3-d%4][sub]
		}
	}

	lines := make([]string, 0, height)
	for _, row := range grid {
		var b strings.Builder
		for c, ch := range row {
			fg := color
			if isPercentage {
				fg = MetricColor(colPeak[c])
			}
			b.WriteString(lipgloss.NewStyle().Foreground(fg).Render(string(ch)))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// sparkline renders one row of block characters scaled to maxVal. Null
// points render as a blank cell.
func sparkline(points []series.Point[float64], width int, maxVal float64) string {
	data := resamplePoints(points, width)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width-len(data)))
	for _, p := range data {
		if !p.Valid {
			b.WriteRune(' ')
			continue
		}
		idx := int(normalize(p.V, maxVal) * float64(len(sparkBlocks)-1))
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

// RenderDualSparkline draws two index-aligned series as stacked one-row
// sparklines scaled to their shared peak.
func RenderDualSparkline(a, b []series.Point[float64], width int) string {
	if width <= 0 {
		return ""
	}
	maxVal := peak(a, b)
	top := lipgloss.NewStyle().Foreground(ColorGraph).Render(sparkline(a, width, maxVal))
	bottom := lipgloss.NewStyle().Foreground(ColorAccent).Render(sparkline(b, width, maxVal))
	return top + "\n" + bottom
}

// RenderCoreBars draws one block per core, height 0-100, colored by load.
// Cores beyond width are dropped.
func RenderCoreBars(heights []float64, width int) string {
	if len(heights) == 0 || width <= 0 {
		return ""
	}
	if len(heights) > width {
		heights = heights[:width]
	}

	var b strings.Builder
	for _, h := range heights {
		idx := int(normalize(h, 100) * float64(len(sparkBlocks)-1))
		b.WriteString(MetricStyle(h).Render(string(sparkBlocks[idx])))
	}
	return b.String()
}
