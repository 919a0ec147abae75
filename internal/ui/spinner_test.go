package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// syncBuffer guards a buffer shared with the animation goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestSpinner(label string) (*Spinner, *syncBuffer) {
	out := &syncBuffer{}
	s := NewSpinner(label)
	s.SetOutput(out)
	return s, out
}

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("Testing")
	assert.Equal(t, "Testing", s.Label())
	assert.Equal(t, SpinnerPending, s.State())
}

func TestSpinnerStartStop(t *testing.T) {
	s, out := newTestSpinner("Dialing")

	s.Start()
	s.Start()
	assert.Equal(t, SpinnerInProgress, s.State())
	time.Sleep(2 * spinnerTick)
	s.Stop()
	s.Stop()

	assert.Equal(t, SpinnerInProgress, s.State(), "Stop keeps the state")
	assert.Contains(t, out.String(), "Dialing...")
}

func TestSpinnerFinish(t *testing.T) {
	tests := []struct {
		name   string
		finish func(*Spinner)
		state  SpinnerState
		symbol string
	}{
		{"success", (*Spinner).Success, SpinnerSuccess, SymbolSuccess},
		{"fail", func(s *Spinner) { s.Fail("connection refused") }, SpinnerFailed, SymbolFail},
		{"skip", (*Spinner).Skip, SpinnerSkipped, SymbolSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestSpinner("Reading frame")
			s.Start()
			tt.finish(s)

			assert.Equal(t, tt.state, s.State())
			output := out.String()
			assert.Contains(t, output, tt.symbol)
			assert.True(t, strings.HasSuffix(output, "\n"))
		})
	}
}

func TestSpinnerFailDetail(t *testing.T) {
	s, out := newTestSpinner("Connecting")
	s.Start()
	s.Fail("connection refused")

	assert.Contains(t, out.String(), "connection refused")
}

func TestSpinnerFinishWithoutStart(t *testing.T) {
	s, out := newTestSpinner("Skipped step")
	s.Skip()

	assert.Equal(t, SpinnerSkipped, s.State())
	assert.Contains(t, out.String(), "Skipped step")
}

func TestSpinnerSetLabel(t *testing.T) {
	s := NewSpinner("before")
	s.SetLabel("after")
	assert.Equal(t, "after", s.Label())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0.00s"},
		{40 * time.Millisecond, "0.04s"},
		{1200 * time.Millisecond, "1.2s"},
		{65 * time.Second, "65.0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in))
	}
}
