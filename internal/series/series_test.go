package series

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		expected int
	}{
		{"default capacity", 0, DefaultCapacity},
		{"negative capacity", -1, DefaultCapacity},
		{"custom capacity", 100, 100},
		{"small capacity", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New[float64](tt.capacity)
			assert.Equal(t, tt.expected, s.Len())
			assert.Len(t, s.Values(), tt.expected)
		})
	}
}

func TestNewIsNullFilled(t *testing.T) {
	s := New[float64](DefaultCapacity)

	for i, p := range s.Values() {
		assert.False(t, p.Valid, "slot %d should hold the null sentinel", i)
	}
	assert.False(t, s.Latest().Valid)
}

func TestLengthIsAlwaysCapacity(t *testing.T) {
	s := New[float64](DefaultCapacity)
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		switch r.Intn(3) {
		case 0:
			s.PushNull()
		default:
			s.Push(r.Float64() * 100)
		}
		require.Equal(t, DefaultCapacity, s.Len())
		require.Len(t, s.Values(), DefaultCapacity)
	}
}

func TestPushOrdering(t *testing.T) {
	s := New[float64](5)

	for i := 0; i < 3; i++ {
		s.Push(float64(i))
	}

	vals := s.Values()
	require.Len(t, vals, 5)
	assert.False(t, vals[0].Valid)
	assert.False(t, vals[1].Valid)
	assert.Equal(t, Some(0.0), vals[2])
	assert.Equal(t, Some(1.0), vals[3])
	assert.Equal(t, Some(2.0), vals[4])
}

func TestPushEvictsOldest(t *testing.T) {
	s := New[float64](5)

	for i := 0; i < 8; i++ {
		s.Push(float64(i))
	}

	assert.Equal(t, []float64{3, 4, 5, 6, 7}, floats(s, -1))
	assert.Equal(t, Some(7.0), s.Latest())
}

func TestPushNullKeepsPosition(t *testing.T) {
	s := New[float64](3)

	s.Push(1)
	s.PushNull()
	s.Push(3)

	assert.Equal(t, []float64{1, -1, 3}, floats(s, -1))
}

func TestValuesDoesNotMutate(t *testing.T) {
	s := New[float64](4)
	s.Push(1)
	s.Push(2)

	first := s.Values()
	first[3] = Some(99.0)
	second := s.Values()

	assert.Equal(t, Some(2.0), second[3])
	assert.Equal(t, Some(2.0), s.Latest())
}

func TestIntSeries(t *testing.T) {
	s := New[int](3)
	s.Push(10)

	assert.Equal(t, []Point[int]{Null[int](), Null[int](), Some(10)}, s.Values())
}

func TestPairAlignment(t *testing.T) {
	p := NewPair[float64](DefaultCapacity)
	r := rand.New(rand.NewSource(11))

	type call struct{ a, b float64 }
	var calls []call
	for i := 0; i < 137; i++ {
		c := call{a: r.Float64(), b: r.Float64()}
		calls = append(calls, c)
		p.PushPair(c.a, c.b)
	}

	a, b := p.Values()
	require.Len(t, a, DefaultCapacity)
	require.Len(t, b, DefaultCapacity)

	tail := calls[len(calls)-DefaultCapacity:]
	for i := range tail {
		assert.Equal(t, tail[i].a, a[i].V, "index %d of first series", i)
		assert.Equal(t, tail[i].b, b[i].V, "index %d of second series", i)
	}
}

func TestPairShortHistory(t *testing.T) {
	p := NewPair[float64](4)
	p.PushPair(1, 10)
	p.PushPair(2, 20)

	a, b := p.Values()
	assert.Equal(t, []Point[float64]{{}, {}, Some(1.0), Some(2.0)}, a)
	assert.Equal(t, []Point[float64]{{}, {}, Some(10.0), Some(20.0)}, b)

	la, lb := p.Latest()
	assert.Equal(t, 2.0, la.V)
	assert.Equal(t, 20.0, lb.V)
}

func TestPairConcurrentReaders(t *testing.T) {
	p := NewPair[float64](DefaultCapacity)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				a, b := p.Values()
				for i := range a {
					// Each push writes n to the first series and -n to the second.
					if a[i].Valid != b[i].Valid || (a[i].Valid && a[i].V != -b[i].V) {
						t.Errorf("misaligned at %d: %v vs %v", i, a[i], b[i])
						return
					}
				}
			}
		}()
	}

	for n := 1; n <= 2000; n++ {
		p.PushPair(float64(n), -float64(n))
	}
	close(stop)
	wg.Wait()
}

// floats flattens a series for comparison, substituting fill for nulls.
func floats[T ~float64 | ~int](s *Series[T], fill float64) []float64 {
	pts := s.Values()
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = fill
		if p.Valid {
			out[i] = float64(p.V)
		}
	}
	return out
}
