// Package series provides fixed-capacity sliding windows of samples for
// time-series charts.
//
// A Series always reports exactly its capacity in points. Slots that have not
// been written yet hold the null sentinel (a Point with Valid false), so a
// chart drawn from a fresh series spans its full width with gaps instead of
// stretching the first few samples.
package series

import "sync"

// DefaultCapacity is the number of samples retained per series.
const DefaultCapacity = 60

// Point is one slot in a series. Valid is false for the null sentinel and for
// samples the producer reported as unavailable.
type Point[T any] struct {
	V     T
	Valid bool
}

// Some returns a valid point holding v.
func Some[T any](v T) Point[T] {
	return Point[T]{V: v, Valid: true}
}

// Null returns the null sentinel.
func Null[T any]() Point[T] {
	return Point[T]{}
}

// Series is a fixed-size ring buffer of points. It is safe for one writer and
// any number of concurrent readers.
type Series[T any] struct {
	mu   sync.RWMutex
	data []Point[T]
	head int // next write position, which is also the oldest point
}

// New creates a series with the given capacity, pre-filled with the null
// sentinel. A non-positive capacity falls back to DefaultCapacity.
func New[T any](capacity int) *Series[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Series[T]{data: make([]Point[T], capacity)}
}

// Len returns the capacity. It never changes after construction.
func (s *Series[T]) Len() int {
	return len(s.data)
}

// Push appends v at the tail and evicts the oldest point.
func (s *Series[T]) Push(v T) {
	s.PushPoint(Some(v))
}

// PushNull appends the null sentinel, e.g. for a sensor that went away.
func (s *Series[T]) PushNull() {
	s.PushPoint(Null[T]())
}

// PushPoint appends p at the tail and evicts the oldest point.
func (s *Series[T]) PushPoint(p Point[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.push(p)
}

// push writes without locking. Callers must hold s.mu.
func (s *Series[T]) push(p Point[T]) {
	s.data[s.head] = p
	s.head = (s.head + 1) % len(s.data)
}

// Values returns a copy of the series in chronological order (oldest first).
// The result always has Len() elements.
func (s *Series[T]) Values() []Point[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values()
}

func (s *Series[T]) values() []Point[T] {
	out := make([]Point[T], len(s.data))
	n := copy(out, s.data[s.head:])
	copy(out[n:], s.data[:s.head])
	return out
}

// Latest returns the newest point.
func (s *Series[T]) Latest() Point[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[(s.head-1+len(s.data))%len(s.data)]
}

// Pair is two index-aligned series that always advance together, such as
// download/upload or read/write rates.
type Pair[T any] struct {
	mu   sync.RWMutex
	a, b *Series[T]
}

// NewPair creates two series of the same capacity.
func NewPair[T any](capacity int) *Pair[T] {
	return &Pair[T]{a: New[T](capacity), b: New[T](capacity)}
}

// Len returns the capacity shared by both series.
func (p *Pair[T]) Len() int {
	return p.a.Len()
}

// PushPair appends a to the first series and b to the second as one update.
// Readers going through the pair never see one advanced without the other.
func (p *Pair[T]) PushPair(a, b T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.a.PushPoint(Some(a))
	p.b.PushPoint(Some(b))
}

// Values returns copies of both series, oldest first, taken under one lock.
func (p *Pair[T]) Values() (a, b []Point[T]) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.a.Values(), p.b.Values()
}

// Latest returns the newest point of each series.
func (p *Pair[T]) Latest() (a, b Point[T]) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.a.Latest(), p.b.Latest()
}
