package render

import "math"

// Variant selects one of the two gauge sizes.
type Variant int

const (
	Primary Variant = iota
	Compact
)

// Gauge radii by variant.
const (
	PrimaryRadius = 42.0
	CompactRadius = 28.0
)

// Radius returns the radius for the variant.
func (v Variant) Radius() float64 {
	if v == Compact {
		return CompactRadius
	}
	return PrimaryRadius
}

func (v Variant) String() string {
	if v == Compact {
		return "compact"
	}
	return "primary"
}

// Geometry describes a radial gauge stroke: the full circumference and how
// much of it stays undrawn.
type Geometry struct {
	Percent       float64 // clamped to [0,1]
	Radius        float64
	Circumference float64
	Offset        float64
}

// Gauge computes stroke geometry for a fraction in [0,1]. Out-of-range and
// NaN inputs are clamped.
func Gauge(percent float64, v Variant) Geometry {
	p := clampUnit(percent)
	r := v.Radius()
	c := 2 * math.Pi * r
	return Geometry{
		Percent:       p,
		Radius:        r,
		Circumference: c,
		Offset:        c * (1 - p),
	}
}

func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
