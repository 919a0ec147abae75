package dashboard

import (
	"fmt"
	"strconv"

	"github.com/rileyhilliard/pcmon/internal/frame"
)

// Options tunes the reducer.
type Options struct {
	// ProcessLimit caps the process panel. Defaults to DefaultProcessLimit.
	ProcessLimit int
	// IdleNames are process names dropped from the process panel. A nil
	// slice means DefaultIdleNames.
	IdleNames []string
}

func (o Options) withDefaults() Options {
	if o.ProcessLimit <= 0 {
		o.ProcessLimit = DefaultProcessLimit
	}
	if o.IdleNames == nil {
		o.IdleNames = DefaultIdleNames
	}
	return o
}

// Reduce merges one frame into prev and returns the result. Every category
// present in f is applied; absent ones are left as they were. The series in
// prev are advanced in place, so prev and the result share them. Reduce never
// fails and a nil frame is a no-op.
func Reduce(prev ViewModel, f *frame.Frame, opts Options) ViewModel {
	vm := prev
	if f == nil {
		return vm
	}
	opts = opts.withDefaults()

	if f.CPU != nil {
		reduceCPU(&vm, f.CPU)
	}
	if f.GPU != nil && f.GPU.Available.Or(false) {
		reduceGPU(&vm, f.GPU)
	}
	// Memory goes before processes so they convert with this frame's total.
	if f.Memory != nil {
		reduceMemory(&vm, f.Memory)
	}
	if f.Network != nil {
		in, out := f.Network.DownloadRate.Or(0), f.Network.UploadRate.Or(0)
		vm.Network.In, vm.Network.Out = mbPerSec(in), mbPerSec(out)
		setText(&vm.Network.PacketLoss, f.Network.PacketLoss, percent)
		vm.NetworkSeries.PushPair(in, out)
	}
	if f.Disk != nil {
		in, out := f.Disk.ReadRate.Or(0), f.Disk.WriteRate.Or(0)
		vm.Disk.In, vm.Disk.Out = mbPerSec(in), mbPerSec(out)
		vm.DiskSeries.PushPair(in, out)
	}
	if f.Ping != nil {
		reducePing(&vm, f.Ping)
	}
	if f.Fans != nil {
		reduceFans(&vm, f.Fans)
	}
	if f.Processes != nil {
		vm.Processes = reduceProcesses(f.Processes, vm.TotalMemoryGB, opts)
	}
	if f.System != nil && f.System.Available.Or(false) {
		reduceSystem(&vm, f.System)
	}
	return vm
}

// setText updates dst only when the key was present.
func setText[T any](dst *string, o frame.Opt[T], format func(T) string) {
	if o.Set {
		*dst = orPlaceholder(o, format)
	}
}

// setPercent updates a gauge value only when the key was present. Null
// readings drop the gauge to 0.
func setPercent(dst *float64, o frame.Opt[float64]) {
	if o.Set {
		*dst = clampPercent(o.Or(0))
	}
}

func reduceCPU(vm *ViewModel, c *frame.CPU) {
	p := &vm.CPU
	setText(&p.Usage, c.Usage, percent)
	setPercent(&p.UsagePercent, c.Usage)
	setText(&p.Frequency, c.Frequency, ghz)
	setText(&p.FrequencyMax, c.FrequencyMax, ghz)
	setText(&p.Temperature, c.Temperature, celsius)
	setPercent(&p.TemperaturePercent, c.Temperature)
	setText(&p.Cores, c.Cores, count)
	setText(&p.Threads, c.Threads, count)
	setText(&p.CacheL2, c.CacheL2, cacheMB)
	setText(&p.CacheL3, c.CacheL3, cacheMB)

	if c.PerCore.Set {
		cores := c.PerCore.Or(nil)
		if len(cores) != len(p.CoreBars) {
			p.CoreBars = make([]float64, len(cores))
			p.CoreRebuilds++
		}
		for i, v := range cores {
			p.CoreBars[i] = clampPercent(v)
		}
	}

	if c.Usage.Set {
		pushOpt(vm.CPUSeries.Push, vm.CPUSeries.PushNull, c.Usage)
	}
}

// pushOpt pushes a valid reading, or the null sentinel for a null one.
func pushOpt(push func(float64), pushNull func(), o frame.Opt[float64]) {
	if v, ok := o.Get(); ok {
		push(v)
		return
	}
	pushNull()
}

func reduceGPU(vm *ViewModel, g *frame.GPU) {
	p := &vm.GPU
	setText(&p.Name, g.Name, text)
	setText(&p.Usage, g.Usage, wholePercent)
	setPercent(&p.UsagePercent, g.Usage)
	setText(&p.Temperature, g.Temperature, celsius)
	setPercent(&p.TemperaturePercent, g.Temperature)
	setText(&p.GraphicsClock, g.GraphicsClock, mhz)
	setText(&p.MemoryClock, g.MemoryClock, mhz)
	setText(&p.FanSpeed, g.FanSpeed, wholePercent)

	if g.MemoryUsed.Set || g.MemoryTotal.Set {
		used, uok := g.MemoryUsed.Get()
		total, tok := g.MemoryTotal.Get()
		if uok && tok {
			p.VRAM = fmt.Sprintf("%.1f / %.1f GB", used, total)
		} else {
			p.VRAM = Placeholder
		}
		switch {
		case g.MemoryPercent.Valid:
			p.VRAMPercent = clampPercent(g.MemoryPercent.V)
		case uok && tok && total > 0:
			p.VRAMPercent = clampPercent(used / total * 100)
		default:
			p.VRAMPercent = 0
		}
	} else if g.MemoryPercent.Set {
		setPercent(&p.VRAMPercent, g.MemoryPercent)
	}

	if g.Power.Set {
		p.Power = orPlaceholder(g.Power, func(w float64) string {
			if limit, ok := g.PowerLimit.Get(); ok {
				return fmt.Sprintf("%.0f / %.0f W", w, limit)
			}
			return watts(w)
		})
	}

	if g.Usage.Set {
		pushOpt(vm.GPUSeries.Push, vm.GPUSeries.PushNull, g.Usage)
	}
}

func reduceMemory(vm *ViewModel, m *frame.Memory) {
	p := &vm.Memory
	setText(&p.Percent, m.Percent, percent)
	setPercent(&p.UsedPercent, m.Percent)
	setText(&p.Used, m.Used, gb)
	setText(&p.Total, m.Total, gb)
	setText(&p.Available, m.Available, gb)
	setText(&p.Cached, m.Cached, gb)
	setText(&p.Speed, m.Speed, func(v float64) string { return fmt.Sprintf("%.0f MT/s", v) })
	setText(&p.Type, m.Type, text)
	setPercent(&p.SwapPercent, m.SwapPercent)

	if m.SwapUsed.Set || m.SwapTotal.Set {
		used, uok := m.SwapUsed.Get()
		total, tok := m.SwapTotal.Get()
		if uok && tok {
			p.Swap = fmt.Sprintf("%.1f / %.1f GB", used, total)
		} else {
			p.Swap = Placeholder
		}
	}

	if m.SlotsUsed.Set || m.SlotsTotal.Set {
		used, uok := m.SlotsUsed.Get()
		total, tok := m.SlotsTotal.Get()
		if uok && tok {
			p.Slots = fmt.Sprintf("%d / %d", used, total)
		} else {
			p.Slots = Placeholder
		}
	}

	if total, ok := m.Total.Get(); ok {
		vm.TotalMemoryGB = total
	}

	if m.Percent.Set {
		pushOpt(vm.MemorySeries.Push, vm.MemorySeries.PushNull, m.Percent)
	}
}

func reducePing(vm *ViewModel, p *frame.Ping) {
	if v, ok := p.Ping.Get(); ok && p.Success.Or(false) {
		vm.Ping.Latency = ms(v)
	} else {
		vm.Ping.Latency = Placeholder
	}
	setText(&vm.Ping.Host, p.Host, text)
}

func reduceFans(vm *ViewModel, f *frame.Fans) {
	if len(f.List) == 0 {
		vm.Fans = FansPanel{Empty: true}
		return
	}
	rows := make([]FanRow, 0, len(f.List))
	for _, fan := range f.List {
		rows = append(rows, FanRow{
			Name:  text(fan.Name.Or("")),
			Speed: fanSpeed(fan),
		})
	}
	vm.Fans = FansPanel{Rows: rows}
}

func reduceProcesses(procs []frame.Process, totalGB float64, opts Options) []ProcessRow {
	rows := make([]ProcessRow, 0, opts.ProcessLimit)
	for _, proc := range procs {
		if len(rows) == opts.ProcessLimit {
			break
		}
		name := proc.Name.Or("")
		if isIdle(name, opts.IdleNames) {
			continue
		}
		rows = append(rows, ProcessRow{
			PID:  orPlaceholder(proc.PID, strconv.Itoa),
			Name: text(name),
			CPU:  orPlaceholder(proc.CPUPercent, percent),
			Memory: orPlaceholder(proc.MemoryPercent, func(pct float64) string {
				return FormatProcessMemory(pct, totalGB)
			}),
		})
	}
	return rows
}

func isIdle(name string, idle []string) bool {
	for _, n := range idle {
		if name == n {
			return true
		}
	}
	return false
}

func reduceSystem(vm *ViewModel, s *frame.System) {
	p := &vm.System
	setText(&p.Uptime, s.Uptime, text)
	setText(&p.Motherboard, s.Motherboard, text)
	setText(&p.Hostname, s.Hostname, text)
	setText(&p.OS, s.OS, text)

	if s.Drives.Set {
		drives := s.Drives.Or(nil)
		rows := make([]DriveRow, 0, len(drives))
		for _, d := range drives {
			rows = append(rows, DriveRow{
				Model: truncateModel(text(d.Model.Or(""))),
				Size:  orPlaceholder(d.Size, FormatDriveSize),
			})
		}
		p.Drives = rows
	}
}
