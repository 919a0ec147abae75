package dashboard

import (
	"fmt"
	"strconv"

	"github.com/rileyhilliard/pcmon/internal/frame"
)

// orPlaceholder formats a valid value with format, or returns Placeholder.
func orPlaceholder[T any](o frame.Opt[T], format func(T) string) string {
	if v, ok := o.Get(); ok {
		return format(v)
	}
	return Placeholder
}

// text passes a string through, substituting Placeholder for empty values.
func text(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func wholePercent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

func celsius(v float64) string {
	return fmt.Sprintf("%.0f°C", v)
}

// ghz formats a MHz reading as GHz.
func ghz(mhz float64) string {
	return fmt.Sprintf("%.2f GHz", mhz/1000)
}

func mhz(v float64) string {
	return fmt.Sprintf("%.0f MHz", v)
}

func gb(v float64) string {
	return fmt.Sprintf("%.1f GB", v)
}

func mbPerSec(v float64) string {
	return fmt.Sprintf("%.2f MB/s", v)
}

func watts(v float64) string {
	return fmt.Sprintf("%.0f W", v)
}

func ms(v float64) string {
	return fmt.Sprintf("%.0f ms", v)
}

func count(v int) string {
	return strconv.Itoa(v)
}

// cacheMB formats a cache size in MB without trailing zeros.
func cacheMB(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " MB"
}

// FormatProcessMemory converts a process memory share to an absolute size:
// memoryMB = percent/100 * totalGB * 1024, shown in GB with one decimal from
// 1024 MB upwards and in whole MB below that.
func FormatProcessMemory(memoryPercent, totalGB float64) string {
	memMB := memoryPercent / 100 * totalGB * 1024
	if memMB >= 1024 {
		return fmt.Sprintf("%.1f GB", memMB/1024)
	}
	return fmt.Sprintf("%.0f MB", memMB)
}

// FormatDriveSize shows sizes below 1000 GB in whole GB and larger ones in
// TB with one decimal.
func FormatDriveSize(sizeGB float64) string {
	if sizeGB < 1000 {
		return fmt.Sprintf("%.0f GB", sizeGB)
	}
	return fmt.Sprintf("%.1f TB", sizeGB/1000)
}

// maxModelLen is the longest drive model shown before truncation.
const maxModelLen = 20

// truncateModel shortens names longer than maxModelLen to 17 characters plus
// "...".
func truncateModel(s string) string {
	r := []rune(s)
	if len(r) > maxModelLen {
		return string(r[:maxModelLen-3]) + "..."
	}
	return s
}

// fanSpeed prefers percent, then RPM, then Placeholder.
func fanSpeed(f frame.Fan) string {
	if p, ok := f.Percent.Get(); ok {
		return wholePercent(p)
	}
	if rpm, ok := f.RPM.Get(); ok {
		return fmt.Sprintf("%.0f RPM", rpm)
	}
	return Placeholder
}

// clampPercent keeps gauge inputs within 0-100.
func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
