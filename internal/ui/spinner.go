package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SpinnerState represents the current state of a spinner.
type SpinnerState int

const (
	SpinnerPending SpinnerState = iota
	SpinnerInProgress
	SpinnerSuccess
	SpinnerFailed
	SpinnerSkipped
)

var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

const spinnerTick = 80 * time.Millisecond

// Spinner draws "<glyph> <label>..." on one line until it is finished.
type Spinner struct {
	mu        sync.Mutex
	out       io.Writer
	label     string
	state     SpinnerState
	frame     int
	startTime time.Time
	lastWidth int
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewSpinner creates a spinner writing to stdout.
func NewSpinner(label string) *Spinner {
	return &Spinner{out: os.Stdout, label: label}
}

// SetOutput redirects the spinner. Call before Start.
func (s *Spinner) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = w
}

// Start begins the animation. Starting twice is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.stopCh != nil {
		s.mu.Unlock()
		return
	}
	s.state = SpinnerInProgress
	s.startTime = time.Now()
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	stop, done := s.stopCh, s.doneCh
	s.drawLocked()
	s.mu.Unlock()

	go s.animate(stop, done)
}

// Stop halts the animation and leaves the state unchanged.
func (s *Spinner) Stop() {
	s.mu.Lock()
	stop, done := s.stopCh, s.doneCh
	s.stopCh = nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Success stops the spinner and prints a check mark.
func (s *Spinner) Success() { s.finish(SpinnerSuccess, "") }

// Fail stops the spinner and prints a cross followed by detail.
func (s *Spinner) Fail(detail string) { s.finish(SpinnerFailed, detail) }

// Skip stops the spinner and prints a skipped marker.
func (s *Spinner) Skip() { s.finish(SpinnerSkipped, "") }

// State returns the current spinner state.
func (s *Spinner) State() SpinnerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Label returns the spinner's label.
func (s *Spinner) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

// SetLabel updates the label shown on the next frame.
func (s *Spinner) SetLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.label = label
}

func (s *Spinner) animate(stop <-chan struct{}, done chan<- struct{}) {
	ticker := time.NewTicker(spinnerTick)
	defer ticker.Stop()
	defer close(done)

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(spinnerFrames)
			s.drawLocked()
			s.mu.Unlock()
		}
	}
}

func (s *Spinner) drawLocked() {
	glyph := lipgloss.NewStyle().
		Foreground(GradientColors[(s.frame/2)%len(GradientColors)]).
		Render(spinnerFrames[s.frame])
	line := fmt.Sprintf("%s %s...", glyph, s.label)
	s.clearLocked()
	fmt.Fprint(s.out, line)
	s.lastWidth = lipgloss.Width(line)
}

func (s *Spinner) clearLocked() {
	if s.lastWidth > 0 {
		fmt.Fprint(s.out, "\r"+strings.Repeat(" ", s.lastWidth)+"\r")
		s.lastWidth = 0
	}
}

func (s *Spinner) finish(state SpinnerState, detail string) {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state

	var symbol string
	switch state {
	case SpinnerSuccess:
		symbol = SuccessStyle.Render(SymbolSuccess)
	case SpinnerFailed:
		symbol = ErrorStyle.Render(SymbolFail)
	case SpinnerSkipped:
		symbol = WarningStyle.Render(SymbolSkipped)
	default:
		symbol = MutedStyle.Render(SymbolPending)
	}

	var elapsed time.Duration
	if !s.startTime.IsZero() {
		elapsed = time.Since(s.startTime)
	}

	s.clearLocked()
	line := fmt.Sprintf("%s %s %s", symbol, s.label, MutedStyle.Render(FormatDuration(elapsed)))
	if detail != "" {
		line += "\n  " + MutedStyle.Render(detail)
	}
	fmt.Fprintln(s.out, line)
}

// FormatDuration formats a step duration, e.g. "0.04s" or "1.2s".
func FormatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
