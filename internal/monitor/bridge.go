package monitor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/pcmon/internal/conn"
	"github.com/rileyhilliard/pcmon/internal/frame"
)

// Sender is the part of *tea.Program the bridge needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge forwards connection events into a running program. Send blocks
// until the program's loop takes the message, so frames reach Update in the
// order the manager emitted them.
type Bridge struct {
	sender Sender
}

// NewBridge returns a conn.Handler that feeds s.
func NewBridge(s Sender) *Bridge {
	return &Bridge{sender: s}
}

var _ conn.Handler = (*Bridge)(nil)

// HandleFrame implements conn.Handler.
func (b *Bridge) HandleFrame(f *frame.Frame) {
	b.sender.Send(FrameMsg{Frame: f})
}

// HandleStatus implements conn.Handler.
func (b *Bridge) HandleStatus(connected bool) {
	b.sender.Send(StatusMsg{Connected: connected})
}
