// Package frame defines the telemetry frame streamed by the metrics producer
// and decodes it from the wire.
//
// Every category is optional. A nil category pointer means the producer sent
// no update for it this tick. Inside a category every leaf is an Opt, so a
// key that is present with a null value (sensor unavailable) can be told apart
// from a key that is missing.
package frame

// Frame is one snapshot message. It is transient: the reducer consumes it and
// nothing retains it afterwards.
type Frame struct {
	CPU       *CPU      `json:"cpu"`
	GPU       *GPU      `json:"gpu"`
	Memory    *Memory   `json:"memory"`
	Network   *Network  `json:"network"`
	Disk      *Disk     `json:"disk"`
	Ping      *Ping     `json:"ping"`
	Fans      *Fans     `json:"fans"`
	Processes []Process `json:"processes"`
	System    *System   `json:"system"`
}

// Empty reports whether the frame carries no category at all.
func (f *Frame) Empty() bool {
	return f.CPU == nil && f.GPU == nil && f.Memory == nil && f.Network == nil &&
		f.Disk == nil && f.Ping == nil && f.Fans == nil && f.Processes == nil &&
		f.System == nil
}

// CPU holds processor readings. Frequencies are MHz, temperature is Celsius,
// cache sizes are MB.
type CPU struct {
	Usage        Opt[float64]   `json:"usage"`
	PerCore      Opt[[]float64] `json:"per_core"`
	Frequency    Opt[float64]   `json:"frequency"`
	FrequencyMax Opt[float64]   `json:"frequency_max"`
	Temperature  Opt[float64]   `json:"temperature"`
	Cores        Opt[int]       `json:"cores"`
	Threads      Opt[int]       `json:"threads"`
	CacheL2      Opt[float64]   `json:"cache_l2"`
	CacheL3      Opt[float64]   `json:"cache_l3"`
}

// GPU holds graphics readings. The whole category only counts when Available
// is true. Memory is GB, clocks MHz, power W.
type GPU struct {
	Available     Opt[bool]    `json:"available"`
	Name          Opt[string]  `json:"name"`
	Usage         Opt[float64] `json:"usage"`
	MemoryUsed    Opt[float64] `json:"memory_used"`
	MemoryTotal   Opt[float64] `json:"memory_total"`
	MemoryPercent Opt[float64] `json:"memory_percent"`
	Temperature   Opt[float64] `json:"temperature"`
	GraphicsClock Opt[float64] `json:"graphics_clock"`
	MemoryClock   Opt[float64] `json:"memory_clock"`
	FanSpeed      Opt[float64] `json:"fan_speed"`
	Power         Opt[float64] `json:"power"`
	PowerLimit    Opt[float64] `json:"power_limit"`
}

// Memory holds RAM and swap readings in GB, plus module details.
type Memory struct {
	Used        Opt[float64] `json:"used"`
	Total       Opt[float64] `json:"total"`
	Available   Opt[float64] `json:"available"`
	Percent     Opt[float64] `json:"percent"`
	Cached      Opt[float64] `json:"cached"`
	Buffers     Opt[float64] `json:"buffers"`
	SwapUsed    Opt[float64] `json:"swap_used"`
	SwapTotal   Opt[float64] `json:"swap_total"`
	SwapPercent Opt[float64] `json:"swap_percent"`
	Speed       Opt[float64] `json:"speed"`
	Type        Opt[string]  `json:"type"`
	SlotsUsed   Opt[int]     `json:"slots_used"`
	SlotsTotal  Opt[int]     `json:"slots_total"`
}

// Network holds throughput in MB/s and cumulative counters.
type Network struct {
	DownloadRate Opt[float64] `json:"download_rate"`
	UploadRate   Opt[float64] `json:"upload_rate"`
	BytesSent    Opt[float64] `json:"bytes_sent"`
	BytesRecv    Opt[float64] `json:"bytes_recv"`
	PacketLoss   Opt[float64] `json:"packet_loss"`
}

// Disk holds throughput in MB/s and cumulative counters.
type Disk struct {
	ReadRate   Opt[float64] `json:"read_rate"`
	WriteRate  Opt[float64] `json:"write_rate"`
	ReadBytes  Opt[float64] `json:"read_bytes"`
	WriteBytes Opt[float64] `json:"write_bytes"`
}

// Ping is the latest round trip to the producer's probe host.
type Ping struct {
	Ping    Opt[float64] `json:"ping"`
	Host    Opt[string]  `json:"host"`
	Success Opt[bool]    `json:"success"`
}

// Fans is the fan list. An empty or missing list means no fans were reported.
type Fans struct {
	List  []Fan    `json:"fans"`
	Count Opt[int] `json:"count"`
}

// Fan is one fan reading. Percent is preferred over RPM for display.
type Fan struct {
	Name    Opt[string]  `json:"name"`
	Percent Opt[float64] `json:"percent"`
	RPM     Opt[float64] `json:"rpm"`
	Type    Opt[string]  `json:"type"`
}

// Process is one entry of the producer's top-processes list.
type Process struct {
	PID           Opt[int]     `json:"pid"`
	Name          Opt[string]  `json:"name"`
	CPUPercent    Opt[float64] `json:"cpu_percent"`
	MemoryPercent Opt[float64] `json:"memory_percent"`
}

// System is static host information. The category only counts when
// Available is true. A null drives list clears the drive panel.
type System struct {
	Available   Opt[bool]    `json:"available"`
	Uptime      Opt[string]  `json:"uptime"`
	Motherboard Opt[string]  `json:"motherboard"`
	Hostname    Opt[string]  `json:"hostname"`
	OS          Opt[string]  `json:"os"`
	Drives      Opt[[]Drive] `json:"drives"`
}

// Drive is one storage device. Size is GB.
type Drive struct {
	Model Opt[string]  `json:"model"`
	Size  Opt[float64] `json:"size"`
}
