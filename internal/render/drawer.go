// Package render turns a dashboard view-model into draw calls.
//
// The drawing layer itself lives elsewhere and is reached only through the
// Drawer interface. Which view-model field lands on which display target is
// declared once in the Bindings table.
package render

import "github.com/rileyhilliard/pcmon/internal/series"

// Target names a display slot in the drawing layer.
type Target string

// Row is one line of a list panel, one string per column.
type Row []string

// Drawer is implemented by the drawing layer. Calls are synchronous and are
// made from a single goroutine.
type Drawer interface {
	// Text sets a scalar display string.
	Text(target Target, value string)
	// Gauge draws a radial gauge with a centered label.
	Gauge(target Target, g Geometry, label string)
	// Bar draws a linear progress indicator for a fraction in [0,1].
	Bar(target Target, percent float64)
	// Bars draws a row of bars, one height (0-100) per element.
	Bars(target Target, heights []float64)
	// Series draws one time-series chart, oldest point first.
	Series(target Target, points []series.Point[float64])
	// DualSeries draws two index-aligned series on one chart.
	DualSeries(target Target, a, b []series.Point[float64])
	// List replaces a list panel's rows.
	List(target Target, rows []Row)
	// Status shows the connection state.
	Status(connected bool)
}
