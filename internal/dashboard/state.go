package dashboard

import (
	"sync"
	"time"

	"github.com/rileyhilliard/pcmon/internal/frame"
	"github.com/rileyhilliard/pcmon/internal/logger"
	"github.com/rileyhilliard/pcmon/internal/series"
)

// State owns the view-model for one connection session. Apply is the only
// writer; View returns the view-model as of the last completed Apply.
type State struct {
	mu   sync.Mutex
	vm   ViewModel
	opts Options
	now  func() time.Time
	log  logger.Logger
}

// NewState creates a session state with null-filled series of
// series.DefaultCapacity.
func NewState(opts Options, log logger.Logger) *State {
	if log == nil {
		log = logger.Noop()
	}
	return &State{
		vm:   NewViewModel(series.DefaultCapacity),
		opts: opts,
		now:  time.Now,
		log:  log,
	}
}

// SetClock replaces the time source used for ViewModel.Updated.
func (s *State) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Apply reduces f into the session view-model and returns the result.
func (s *State) Apply(f *frame.Frame) ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	rebuilds := s.vm.CPU.CoreRebuilds
	s.vm = Reduce(s.vm, f, s.opts)
	s.vm.Frames++
	s.vm.Updated = s.now()

	if s.vm.CPU.CoreRebuilds != rebuilds {
		s.log.Debug("core count changed to %d", len(s.vm.CPU.CoreBars))
	}
	if f != nil && f.GPU != nil && !f.GPU.Available.Or(false) {
		s.log.Debug("gpu reported unavailable, keeping previous readings")
	}
	return s.vm
}

// View returns the current view-model.
func (s *State) View() ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vm
}
