// Package dashboard reduces telemetry frames into the view-model the
// renderer draws from.
//
// The reducer never fails. Absent categories leave their panel untouched,
// null leaves show Placeholder, and the series owned by the view-model are
// advanced in place.
package dashboard

import (
	"time"

	"github.com/rileyhilliard/pcmon/internal/series"
)

// Placeholder is shown for any reading that is missing or unavailable.
const Placeholder = "--"

// DefaultProcessLimit is how many processes the process panel shows.
const DefaultProcessLimit = 8

// DefaultIdleNames are process names hidden from the process panel.
var DefaultIdleNames = []string{"System Idle Process", "Idle"}

// ViewModel is the renderer-facing dashboard state for one session.
// Panel structs are values and are copied by Reduce. Series, pairs and
// CPU.CoreBars are shared between copies and mutated in place.
type ViewModel struct {
	CPU       CPUPanel
	GPU       GPUPanel
	Memory    MemoryPanel
	Network   RatePanel
	Disk      RatePanel
	Ping      PingPanel
	Fans      FansPanel
	Processes []ProcessRow
	System    SystemPanel

	CPUSeries     *series.Series[float64]
	GPUSeries     *series.Series[float64]
	MemorySeries  *series.Series[float64]
	NetworkSeries *series.Pair[float64] // download, upload
	DiskSeries    *series.Pair[float64] // read, write

	// TotalMemoryGB is the last valid memory total. Zero until a memory frame
	// with a total arrives, in which case process memory shows as 0.
	TotalMemoryGB float64

	Frames  int
	Updated time.Time
}

// CPUPanel holds processor display values. Percent fields drive gauges and
// are 0-100.
type CPUPanel struct {
	Usage              string
	UsagePercent       float64
	Frequency          string
	FrequencyMax       string
	Temperature        string
	TemperaturePercent float64
	Cores              string
	Threads            string
	CacheL2            string
	CacheL3            string

	// CoreBars holds one height (0-100) per core. CoreRebuilds counts how many
	// times the slice was reallocated because the core count changed.
	CoreBars     []float64
	CoreRebuilds int
}

// GPUPanel holds graphics display values.
type GPUPanel struct {
	Name               string
	Usage              string
	UsagePercent       float64
	Temperature        string
	TemperaturePercent float64
	VRAM               string
	VRAMPercent        float64
	GraphicsClock      string
	MemoryClock        string
	FanSpeed           string
	Power              string
}

// MemoryPanel holds RAM display values.
type MemoryPanel struct {
	Percent     string
	UsedPercent float64
	Used        string
	Total       string
	Available   string
	Cached      string
	Swap        string
	SwapPercent float64
	Speed       string
	Type        string
	Slots       string
}

// RatePanel is a pair of throughput readings: download/upload for network,
// read/write for disk.
type RatePanel struct {
	In         string
	Out        string
	PacketLoss string
}

// PingPanel holds the latest latency reading.
type PingPanel struct {
	Latency string
	Host    string
}

// FansPanel is the fan list. Empty is set when the producer reported no fans.
type FansPanel struct {
	Rows  []FanRow
	Empty bool
}

// FanRow is one displayed fan.
type FanRow struct {
	Name  string
	Speed string
}

// ProcessRow is one displayed process.
type ProcessRow struct {
	PID    string
	Name   string
	CPU    string
	Memory string
}

// SystemPanel holds static host information.
type SystemPanel struct {
	Uptime      string
	Motherboard string
	Hostname    string
	OS          string
	Drives      []DriveRow
}

// DriveRow is one displayed drive.
type DriveRow struct {
	Model string
	Size  string
}

// NewViewModel returns a view-model with every reading at Placeholder and
// null-filled series of the given capacity.
func NewViewModel(capacity int) ViewModel {
	return ViewModel{
		CPU: CPUPanel{
			Usage:        Placeholder,
			Frequency:    Placeholder,
			FrequencyMax: Placeholder,
			Temperature:  Placeholder,
			Cores:        Placeholder,
			Threads:      Placeholder,
			CacheL2:      Placeholder,
			CacheL3:      Placeholder,
		},
		GPU: GPUPanel{
			Name:          Placeholder,
			Usage:         Placeholder,
			Temperature:   Placeholder,
			VRAM:          Placeholder,
			GraphicsClock: Placeholder,
			MemoryClock:   Placeholder,
			FanSpeed:      Placeholder,
			Power:         Placeholder,
		},
		Memory: MemoryPanel{
			Percent:   Placeholder,
			Used:      Placeholder,
			Total:     Placeholder,
			Available: Placeholder,
			Cached:    Placeholder,
			Swap:      Placeholder,
			Speed:     Placeholder,
			Type:      Placeholder,
			Slots:     Placeholder,
		},
		Network: RatePanel{In: Placeholder, Out: Placeholder, PacketLoss: Placeholder},
		Disk:    RatePanel{In: Placeholder, Out: Placeholder, PacketLoss: Placeholder},
		Ping:    PingPanel{Latency: Placeholder, Host: Placeholder},
		System: SystemPanel{
			Uptime:      Placeholder,
			Motherboard: Placeholder,
			Hostname:    Placeholder,
			OS:          Placeholder,
		},

		CPUSeries:     series.New[float64](capacity),
		GPUSeries:     series.New[float64](capacity),
		MemorySeries:  series.New[float64](capacity),
		NetworkSeries: series.NewPair[float64](capacity),
		DiskSeries:    series.NewPair[float64](capacity),
	}
}
