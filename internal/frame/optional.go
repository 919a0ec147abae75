package frame

import (
	"bytes"
	"encoding/json"
	"math"
)

// Opt is a leaf field that distinguishes three cases: the key was absent
// (Set false), the key was present but null (Set true, Valid false), and the
// key carried a value (Set true, Valid true).
type Opt[T any] struct {
	V     T
	Set   bool
	Valid bool
}

// Of returns a present, non-null Opt holding v.
func Of[T any](v T) Opt[T] {
	return Opt[T]{V: v, Set: true, Valid: true}
}

// NullOpt returns a present-but-null Opt.
func NullOpt[T any]() Opt[T] {
	return Opt[T]{Set: true}
}

// UnmarshalJSON records presence and decodes the value when it is not null.
// encoding/json calls this for an explicit null as well, which is what lets
// the Set bit survive. A value of the wrong JSON type reads as null, so one
// odd leaf never costs the rest of the frame. Integer leaves accept any
// integral number, including 8.0.
func (o *Opt[T]) UnmarshalJSON(b []byte) error {
	var zero T
	o.Set = true
	o.V = zero
	o.Valid = false

	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if p, ok := any(&o.V).(*int); ok {
		var f float64
		if err := json.Unmarshal(b, &f); err == nil && f == math.Trunc(f) &&
			f >= math.MinInt32 && f <= math.MaxInt32 {
			*p = int(f)
			o.Valid = true
		}
		return nil
	}
	if err := json.Unmarshal(b, &o.V); err != nil {
		o.V = zero
		return nil
	}
	o.Valid = true
	return nil
}

// Get returns the value and whether it is usable.
func (o Opt[T]) Get() (T, bool) {
	return o.V, o.Valid
}

// Or returns the value, or def when the field is absent or null.
func (o Opt[T]) Or(def T) T {
	if o.Valid {
		return o.V
	}
	return def
}

// IsNull reports whether the key was present with a null value.
func (o Opt[T]) IsNull() bool {
	return o.Set && !o.Valid
}
