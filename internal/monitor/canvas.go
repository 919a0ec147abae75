package monitor

import (
	"github.com/rileyhilliard/pcmon/internal/dashboard"
	"github.com/rileyhilliard/pcmon/internal/render"
	"github.com/rileyhilliard/pcmon/internal/series"
)

type gaugeCell struct {
	geometry render.Geometry
	label    string
}

type dualCell struct {
	a, b []series.Point[float64]
}

// canvas is the terminal implementation of render.Drawer. Each target holds
// whatever was drawn on it last; View reads from here.
type canvas struct {
	texts   map[render.Target]string
	gauges  map[render.Target]gaugeCell
	bars    map[render.Target]float64
	barRows map[render.Target][]float64
	charts  map[render.Target][]series.Point[float64]
	duals   map[render.Target]dualCell
	lists   map[render.Target][]render.Row

	connected  bool
	statusSeen bool
}

func newCanvas() *canvas {
	return &canvas{
		texts:   make(map[render.Target]string),
		gauges:  make(map[render.Target]gaugeCell),
		bars:    make(map[render.Target]float64),
		barRows: make(map[render.Target][]float64),
		charts:  make(map[render.Target][]series.Point[float64]),
		duals:   make(map[render.Target]dualCell),
		lists:   make(map[render.Target][]render.Row),
	}
}

var _ render.Drawer = (*canvas)(nil)

func (c *canvas) Text(target render.Target, value string) {
	c.texts[target] = value
}

func (c *canvas) Gauge(target render.Target, g render.Geometry, label string) {
	c.gauges[target] = gaugeCell{geometry: g, label: label}
}

func (c *canvas) Bar(target render.Target, percent float64) {
	c.bars[target] = percent
}

// Bars copies heights; the view-model keeps mutating its slice in place.
func (c *canvas) Bars(target render.Target, heights []float64) {
	c.barRows[target] = append(c.barRows[target][:0], heights...)
}

func (c *canvas) Series(target render.Target, points []series.Point[float64]) {
	c.charts[target] = points
}

func (c *canvas) DualSeries(target render.Target, a, b []series.Point[float64]) {
	c.duals[target] = dualCell{a: a, b: b}
}

func (c *canvas) List(target render.Target, rows []render.Row) {
	c.lists[target] = rows
}

func (c *canvas) Status(connected bool) {
	c.connected = connected
	c.statusSeen = true
}

// text returns the last string drawn on target, or the placeholder before
// the first render.
func (c *canvas) text(target render.Target) string {
	if v, ok := c.texts[target]; ok && v != "" {
		return v
	}
	return dashboard.Placeholder
}

// gauge returns the drawn geometry as a 0-100 fill and its label.
func (c *canvas) gauge(target render.Target) (float64, string) {
	cell, ok := c.gauges[target]
	if !ok {
		return 0, dashboard.Placeholder
	}
	return cell.geometry.Percent * 100, cell.label
}

// bar returns the drawn fraction as a 0-100 fill.
func (c *canvas) bar(target render.Target) float64 {
	return c.bars[target] * 100
}
