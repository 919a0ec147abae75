package render

import (
	"github.com/rileyhilliard/pcmon/internal/dashboard"
	"github.com/rileyhilliard/pcmon/internal/series"
)

// Kind is the draw call a binding maps to.
type Kind int

const (
	KindText Kind = iota
	KindGauge
	KindBar
	KindBars
	KindSeries
	KindDualSeries
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindGauge:
		return "gauge"
	case KindBar:
		return "bar"
	case KindBars:
		return "bars"
	case KindSeries:
		return "series"
	case KindDualSeries:
		return "dual-series"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Display targets.
const (
	TargetCPUUsage        Target = "cpu.usage"
	TargetCPUGauge        Target = "cpu.gauge"
	TargetCPUFrequency    Target = "cpu.frequency"
	TargetCPUFrequencyMax Target = "cpu.frequency-max"
	TargetCPUTemperature  Target = "cpu.temperature"
	TargetCPUTempGauge    Target = "cpu.temperature-gauge"
	TargetCPUCores        Target = "cpu.cores"
	TargetCPUThreads      Target = "cpu.threads"
	TargetCPUCacheL2      Target = "cpu.cache-l2"
	TargetCPUCacheL3      Target = "cpu.cache-l3"
	TargetCPUCoreBars     Target = "cpu.core-bars"
	TargetCPUChart        Target = "cpu.chart"

	TargetGPUName        Target = "gpu.name"
	TargetGPUUsage       Target = "gpu.usage"
	TargetGPUGauge       Target = "gpu.gauge"
	TargetGPUTemperature Target = "gpu.temperature"
	TargetGPUTempGauge   Target = "gpu.temperature-gauge"
	TargetGPUVRAM        Target = "gpu.vram"
	TargetGPUVRAMBar     Target = "gpu.vram-bar"
	TargetGPUClock       Target = "gpu.clock"
	TargetGPUMemoryClock Target = "gpu.memory-clock"
	TargetGPUFan         Target = "gpu.fan"
	TargetGPUPower       Target = "gpu.power"
	TargetGPUChart       Target = "gpu.chart"

	TargetMemoryPercent   Target = "memory.percent"
	TargetMemoryGauge     Target = "memory.gauge"
	TargetMemoryUsed      Target = "memory.used"
	TargetMemoryTotal     Target = "memory.total"
	TargetMemoryAvailable Target = "memory.available"
	TargetMemoryCached    Target = "memory.cached"
	TargetMemorySwap      Target = "memory.swap"
	TargetMemorySwapBar   Target = "memory.swap-bar"
	TargetMemorySpeed     Target = "memory.speed"
	TargetMemoryType      Target = "memory.type"
	TargetMemorySlots     Target = "memory.slots"
	TargetMemoryChart     Target = "memory.chart"

	TargetNetworkDown  Target = "network.download"
	TargetNetworkUp    Target = "network.upload"
	TargetNetworkLoss  Target = "network.packet-loss"
	TargetNetworkChart Target = "network.chart"

	TargetDiskRead  Target = "disk.read"
	TargetDiskWrite Target = "disk.write"
	TargetDiskChart Target = "disk.chart"

	TargetPingLatency Target = "ping.latency"
	TargetPingHost    Target = "ping.host"

	TargetFansStatus Target = "fans.status"
	TargetFansList   Target = "fans.list"

	TargetProcessList Target = "processes.list"

	TargetSystemUptime      Target = "system.uptime"
	TargetSystemMotherboard Target = "system.motherboard"
	TargetSystemHostname    Target = "system.hostname"
	TargetSystemOS          Target = "system.os"
	TargetSystemDrives      Target = "system.drives"
)

// FansEmptyText is shown when the producer reported no fans.
const FansEmptyText = "No fan data"

// Binding maps one view-model field to one display target. Exactly one of
// the accessor funcs matching Kind is set.
type Binding struct {
	Target  Target
	Kind    Kind
	Variant Variant // gauges only

	Text    func(vm dashboard.ViewModel) string  // text, gauge label
	Percent func(vm dashboard.ViewModel) float64 // gauge, bar; 0-100
	Bars    func(vm dashboard.ViewModel) []float64
	Series  func(vm dashboard.ViewModel) *series.Series[float64]
	Pair    func(vm dashboard.ViewModel) *series.Pair[float64]
	Rows    func(vm dashboard.ViewModel) []Row
}

func text(t Target, f func(dashboard.ViewModel) string) Binding {
	return Binding{Target: t, Kind: KindText, Text: f}
}

func gauge(t Target, v Variant, pct func(dashboard.ViewModel) float64, label func(dashboard.ViewModel) string) Binding {
	return Binding{Target: t, Kind: KindGauge, Variant: v, Percent: pct, Text: label}
}

func bar(t Target, pct func(dashboard.ViewModel) float64) Binding {
	return Binding{Target: t, Kind: KindBar, Percent: pct}
}

func chart(t Target, s func(dashboard.ViewModel) *series.Series[float64]) Binding {
	return Binding{Target: t, Kind: KindSeries, Series: s}
}

func dualChart(t Target, p func(dashboard.ViewModel) *series.Pair[float64]) Binding {
	return Binding{Target: t, Kind: KindDualSeries, Pair: p}
}

func list(t Target, rows func(dashboard.ViewModel) []Row) Binding {
	return Binding{Target: t, Kind: KindList, Rows: rows}
}

// Bindings is the complete view-model to display-target table.
var Bindings = []Binding{
	text(TargetCPUUsage, func(vm dashboard.ViewModel) string { return vm.CPU.Usage }),
	gauge(TargetCPUGauge, Primary,
		func(vm dashboard.ViewModel) float64 { return vm.CPU.UsagePercent },
		func(vm dashboard.ViewModel) string { return vm.CPU.Usage }),
	text(TargetCPUFrequency, func(vm dashboard.ViewModel) string { return vm.CPU.Frequency }),
	text(TargetCPUFrequencyMax, func(vm dashboard.ViewModel) string { return vm.CPU.FrequencyMax }),
	text(TargetCPUTemperature, func(vm dashboard.ViewModel) string { return vm.CPU.Temperature }),
	gauge(TargetCPUTempGauge, Compact,
		func(vm dashboard.ViewModel) float64 { return vm.CPU.TemperaturePercent },
		func(vm dashboard.ViewModel) string { return vm.CPU.Temperature }),
	text(TargetCPUCores, func(vm dashboard.ViewModel) string { return vm.CPU.Cores }),
	text(TargetCPUThreads, func(vm dashboard.ViewModel) string { return vm.CPU.Threads }),
	text(TargetCPUCacheL2, func(vm dashboard.ViewModel) string { return vm.CPU.CacheL2 }),
	text(TargetCPUCacheL3, func(vm dashboard.ViewModel) string { return vm.CPU.CacheL3 }),
	{Target: TargetCPUCoreBars, Kind: KindBars, Bars: func(vm dashboard.ViewModel) []float64 { return vm.CPU.CoreBars }},
	chart(TargetCPUChart, func(vm dashboard.ViewModel) *series.Series[float64] { return vm.CPUSeries }),

	text(TargetGPUName, func(vm dashboard.ViewModel) string { return vm.GPU.Name }),
	text(TargetGPUUsage, func(vm dashboard.ViewModel) string { return vm.GPU.Usage }),
	gauge(TargetGPUGauge, Primary,
		func(vm dashboard.ViewModel) float64 { return vm.GPU.UsagePercent },
		func(vm dashboard.ViewModel) string { return vm.GPU.Usage }),
	text(TargetGPUTemperature, func(vm dashboard.ViewModel) string { return vm.GPU.Temperature }),
	gauge(TargetGPUTempGauge, Compact,
		func(vm dashboard.ViewModel) float64 { return vm.GPU.TemperaturePercent },
		func(vm dashboard.ViewModel) string { return vm.GPU.Temperature }),
	text(TargetGPUVRAM, func(vm dashboard.ViewModel) string { return vm.GPU.VRAM }),
	bar(TargetGPUVRAMBar, func(vm dashboard.ViewModel) float64 { return vm.GPU.VRAMPercent }),
	text(TargetGPUClock, func(vm dashboard.ViewModel) string { return vm.GPU.GraphicsClock }),
	text(TargetGPUMemoryClock, func(vm dashboard.ViewModel) string { return vm.GPU.MemoryClock }),
	text(TargetGPUFan, func(vm dashboard.ViewModel) string { return vm.GPU.FanSpeed }),
	text(TargetGPUPower, func(vm dashboard.ViewModel) string { return vm.GPU.Power }),
	chart(TargetGPUChart, func(vm dashboard.ViewModel) *series.Series[float64] { return vm.GPUSeries }),

	text(TargetMemoryPercent, func(vm dashboard.ViewModel) string { return vm.Memory.Percent }),
	gauge(TargetMemoryGauge, Primary,
		func(vm dashboard.ViewModel) float64 { return vm.Memory.UsedPercent },
		func(vm dashboard.ViewModel) string { return vm.Memory.Percent }),
	text(TargetMemoryUsed, func(vm dashboard.ViewModel) string { return vm.Memory.Used }),
	text(TargetMemoryTotal, func(vm dashboard.ViewModel) string { return vm.Memory.Total }),
	text(TargetMemoryAvailable, func(vm dashboard.ViewModel) string { return vm.Memory.Available }),
	text(TargetMemoryCached, func(vm dashboard.ViewModel) string { return vm.Memory.Cached }),
	text(TargetMemorySwap, func(vm dashboard.ViewModel) string { return vm.Memory.Swap }),
	bar(TargetMemorySwapBar, func(vm dashboard.ViewModel) float64 { return vm.Memory.SwapPercent }),
	text(TargetMemorySpeed, func(vm dashboard.ViewModel) string { return vm.Memory.Speed }),
	text(TargetMemoryType, func(vm dashboard.ViewModel) string { return vm.Memory.Type }),
	text(TargetMemorySlots, func(vm dashboard.ViewModel) string { return vm.Memory.Slots }),
	chart(TargetMemoryChart, func(vm dashboard.ViewModel) *series.Series[float64] { return vm.MemorySeries }),

	text(TargetNetworkDown, func(vm dashboard.ViewModel) string { return vm.Network.In }),
	text(TargetNetworkUp, func(vm dashboard.ViewModel) string { return vm.Network.Out }),
	text(TargetNetworkLoss, func(vm dashboard.ViewModel) string { return vm.Network.PacketLoss }),
	dualChart(TargetNetworkChart, func(vm dashboard.ViewModel) *series.Pair[float64] { return vm.NetworkSeries }),

	text(TargetDiskRead, func(vm dashboard.ViewModel) string { return vm.Disk.In }),
	text(TargetDiskWrite, func(vm dashboard.ViewModel) string { return vm.Disk.Out }),
	dualChart(TargetDiskChart, func(vm dashboard.ViewModel) *series.Pair[float64] { return vm.DiskSeries }),

	text(TargetPingLatency, func(vm dashboard.ViewModel) string { return vm.Ping.Latency }),
	text(TargetPingHost, func(vm dashboard.ViewModel) string { return vm.Ping.Host }),

	text(TargetFansStatus, func(vm dashboard.ViewModel) string {
		if vm.Fans.Empty {
			return FansEmptyText
		}
		return ""
	}),
	list(TargetFansList, fanRows),

	list(TargetProcessList, processRows),

	text(TargetSystemUptime, func(vm dashboard.ViewModel) string { return vm.System.Uptime }),
	text(TargetSystemMotherboard, func(vm dashboard.ViewModel) string { return vm.System.Motherboard }),
	text(TargetSystemHostname, func(vm dashboard.ViewModel) string { return vm.System.Hostname }),
	text(TargetSystemOS, func(vm dashboard.ViewModel) string { return vm.System.OS }),
	list(TargetSystemDrives, driveRows),
}

func fanRows(vm dashboard.ViewModel) []Row {
	rows := make([]Row, 0, len(vm.Fans.Rows))
	for _, f := range vm.Fans.Rows {
		rows = append(rows, Row{f.Name, f.Speed})
	}
	return rows
}

func processRows(vm dashboard.ViewModel) []Row {
	rows := make([]Row, 0, len(vm.Processes))
	for _, p := range vm.Processes {
		rows = append(rows, Row{p.PID, p.Name, p.CPU, p.Memory})
	}
	return rows
}

func driveRows(vm dashboard.ViewModel) []Row {
	rows := make([]Row, 0, len(vm.System.Drives))
	for _, d := range vm.System.Drives {
		rows = append(rows, Row{d.Model, d.Size})
	}
	return rows
}
