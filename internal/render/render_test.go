package render

import (
	"math"
	"testing"

	"github.com/rileyhilliard/pcmon/internal/dashboard"
	"github.com/rileyhilliard/pcmon/internal/frame"
	"github.com/rileyhilliard/pcmon/internal/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaugeGeometry(t *testing.T) {
	g := Gauge(0.25, Primary)

	assert.Equal(t, 42.0, g.Radius)
	assert.InDelta(t, 263.89, g.Circumference, 0.01)
	assert.InDelta(t, 197.92, g.Offset, 0.01)
}

func TestGaugeClamp(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		want    float64
	}{
		{"below zero", -0.5, 0},
		{"above one", 1.7, 1},
		{"nan", math.NaN(), 0},
		{"inside", 0.6, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Gauge(tt.percent, Compact)
			assert.Equal(t, tt.want, g.Percent)
			assert.Equal(t, CompactRadius, g.Radius)
			assert.InDelta(t, g.Circumference*(1-tt.want), g.Offset, 1e-9)
		})
	}
}

func TestGaugeEnds(t *testing.T) {
	empty := Gauge(0, Primary)
	full := Gauge(1, Primary)

	assert.InDelta(t, empty.Circumference, empty.Offset, 1e-9)
	assert.InDelta(t, 0, full.Offset, 1e-9)
}

func TestVariant(t *testing.T) {
	assert.Equal(t, "primary", Primary.String())
	assert.Equal(t, "compact", Compact.String())
	assert.Equal(t, PrimaryRadius, Primary.Radius())
	assert.Equal(t, CompactRadius, Compact.Radius())
}

// recorder captures draw calls by target.
type recorder struct {
	texts  map[Target]string
	gauges map[Target]Geometry
	labels map[Target]string
	bars   map[Target]float64
	multi  map[Target][]float64
	charts map[Target][]series.Point[float64]
	duals  map[Target][2][]series.Point[float64]
	lists  map[Target][]Row
	status []bool
	calls  int
}

func newRecorder() *recorder {
	return &recorder{
		texts:  map[Target]string{},
		gauges: map[Target]Geometry{},
		labels: map[Target]string{},
		bars:   map[Target]float64{},
		multi:  map[Target][]float64{},
		charts: map[Target][]series.Point[float64]{},
		duals:  map[Target][2][]series.Point[float64]{},
		lists:  map[Target][]Row{},
	}
}

func (r *recorder) Text(t Target, v string) { r.calls++; r.texts[t] = v }
func (r *recorder) Gauge(t Target, g Geometry, label string) {
	r.calls++
	r.gauges[t] = g
	r.labels[t] = label
}
func (r *recorder) Bar(t Target, p float64)    { r.calls++; r.bars[t] = p }
func (r *recorder) Bars(t Target, h []float64) { r.calls++; r.multi[t] = h }
func (r *recorder) Series(t Target, p []series.Point[float64]) {
	r.calls++
	r.charts[t] = p
}
func (r *recorder) DualSeries(t Target, a, b []series.Point[float64]) {
	r.calls++
	r.duals[t] = [2][]series.Point[float64]{a, b}
}
func (r *recorder) List(t Target, rows []Row) { r.calls++; r.lists[t] = rows }
func (r *recorder) Status(c bool)             { r.status = append(r.status, c) }

func sampleViewModel(t *testing.T) dashboard.ViewModel {
	t.Helper()
	f, err := frame.Decode([]byte(`{
		"cpu": {"usage": 25, "per_core": [10, 40], "temperature": 70},
		"gpu": {"available": true, "usage": 80, "memory_used": 4, "memory_total": 8},
		"memory": {"percent": 50, "total": 16},
		"network": {"download_rate": 3, "upload_rate": 1},
		"fans": {"fans": []},
		"processes": [{"pid": 7, "name": "go", "cpu_percent": 12.5, "memory_percent": 50}],
		"system": {"available": true, "drives": [{"model": "NVMe", "size": 1500}]}
	}`))
	require.NoError(t, err)
	return dashboard.Reduce(dashboard.NewViewModel(series.DefaultCapacity), f, dashboard.Options{})
}

func TestAdapterRender(t *testing.T) {
	rec := newRecorder()
	a := NewAdapter(rec)

	a.Render(sampleViewModel(t))

	assert.Equal(t, len(Bindings), rec.calls, "one draw call per binding")

	assert.Equal(t, "25.0%", rec.texts[TargetCPUUsage])
	assert.InDelta(t, 197.92, rec.gauges[TargetCPUGauge].Offset, 0.01)
	assert.Equal(t, "25.0%", rec.labels[TargetCPUGauge])
	assert.Equal(t, CompactRadius, rec.gauges[TargetCPUTempGauge].Radius)
	assert.InDelta(t, 0.7, rec.gauges[TargetCPUTempGauge].Percent, 1e-9)
	assert.Equal(t, []float64{10, 40}, rec.multi[TargetCPUCoreBars])

	assert.InDelta(t, 0.5, rec.bars[TargetGPUVRAMBar], 1e-9)

	cpu := rec.charts[TargetCPUChart]
	require.Len(t, cpu, series.DefaultCapacity)
	assert.Equal(t, series.Some(25.0), cpu[len(cpu)-1])

	net := rec.duals[TargetNetworkChart]
	require.Len(t, net[0], series.DefaultCapacity)
	require.Len(t, net[1], series.DefaultCapacity)
	assert.Equal(t, 3.0, net[0][series.DefaultCapacity-1].V)
	assert.Equal(t, 1.0, net[1][series.DefaultCapacity-1].V)

	assert.Equal(t, FansEmptyText, rec.texts[TargetFansStatus])
	assert.Empty(t, rec.lists[TargetFansList])

	assert.Equal(t, []Row{{"7", "go", "12.5%", "8.0 GB"}}, rec.lists[TargetProcessList])
	assert.Equal(t, []Row{{"NVMe", "1.5 TB"}}, rec.lists[TargetSystemDrives])

	assert.Equal(t, dashboard.Placeholder, rec.texts[TargetPingLatency])
}

func TestAdapterStatus(t *testing.T) {
	rec := newRecorder()
	a := NewAdapter(rec)

	a.Status(true)
	a.Status(false)

	assert.Equal(t, []bool{true, false}, rec.status)
	assert.Zero(t, rec.calls)
}

func TestAdapterIsStateless(t *testing.T) {
	vm := sampleViewModel(t)

	first := newRecorder()
	NewAdapter(first).Render(vm)

	a := NewAdapter(newRecorder())
	a.Render(dashboard.NewViewModel(series.DefaultCapacity))
	second := newRecorder()
	a.drawer = second
	a.Render(vm)

	assert.Equal(t, first.texts, second.texts)
	assert.Equal(t, first.lists, second.lists)
}

func TestBindingsTable(t *testing.T) {
	seen := map[Target]bool{}
	for _, b := range Bindings {
		assert.False(t, seen[b.Target], "duplicate target %q", b.Target)
		seen[b.Target] = true

		switch b.Kind {
		case KindText:
			assert.NotNil(t, b.Text, "%s needs Text", b.Target)
		case KindGauge, KindBar:
			assert.NotNil(t, b.Percent, "%s needs Percent", b.Target)
		case KindBars:
			assert.NotNil(t, b.Bars, "%s needs Bars", b.Target)
		case KindSeries:
			assert.NotNil(t, b.Series, "%s needs Series", b.Target)
		case KindDualSeries:
			assert.NotNil(t, b.Pair, "%s needs Pair", b.Target)
		case KindList:
			assert.NotNil(t, b.Rows, "%s needs Rows", b.Target)
		default:
			t.Errorf("%s has unknown kind %v", b.Target, b.Kind)
		}
	}
}

func TestAdapterCustomBindings(t *testing.T) {
	rec := newRecorder()
	a := NewAdapterWithBindings(rec, []Binding{
		text("custom", func(vm dashboard.ViewModel) string { return vm.CPU.Usage }),
	})

	a.Render(dashboard.NewViewModel(5))

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, dashboard.Placeholder, rec.texts["custom"])
}
