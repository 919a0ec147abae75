package render

import "github.com/rileyhilliard/pcmon/internal/dashboard"

// Adapter drives a Drawer from view-models and connection status. It keeps
// no state between calls.
type Adapter struct {
	drawer   Drawer
	bindings []Binding
}

// NewAdapter creates an adapter using the default Bindings table.
func NewAdapter(d Drawer) *Adapter {
	return &Adapter{drawer: d, bindings: Bindings}
}

// NewAdapterWithBindings creates an adapter with a custom table.
func NewAdapterWithBindings(d Drawer, bindings []Binding) *Adapter {
	return &Adapter{drawer: d, bindings: bindings}
}

// Render issues one draw call per binding.
func (a *Adapter) Render(vm dashboard.ViewModel) {
	for _, b := range a.bindings {
		a.draw(b, vm)
	}
}

// Status forwards a connection status change.
func (a *Adapter) Status(connected bool) {
	a.drawer.Status(connected)
}

func (a *Adapter) draw(b Binding, vm dashboard.ViewModel) {
	switch b.Kind {
	case KindText:
		a.drawer.Text(b.Target, b.Text(vm))
	case KindGauge:
		label := ""
		if b.Text != nil {
			label = b.Text(vm)
		}
		a.drawer.Gauge(b.Target, Gauge(b.Percent(vm)/100, b.Variant), label)
	case KindBar:
		a.drawer.Bar(b.Target, clampUnit(b.Percent(vm)/100))
	case KindBars:
		a.drawer.Bars(b.Target, b.Bars(vm))
	case KindSeries:
		if s := b.Series(vm); s != nil {
			a.drawer.Series(b.Target, s.Values())
		}
	case KindDualSeries:
		if p := b.Pair(vm); p != nil {
			x, y := p.Values()
			a.drawer.DualSeries(b.Target, x, y)
		}
	case KindList:
		a.drawer.List(b.Target, b.Rows(vm))
	}
}
