// Package monitor is the terminal dashboard for a pcmon telemetry stream.
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: owns the session's dashboard.State, the render.Adapter and a
//     canvas that implements render.Drawer
//   - Update: reduces FrameMsg values and applies StatusMsg values
//   - View: lays the canvas out as lipgloss panels
//
// # Message Flow
//
//  1. conn.Manager decodes a frame and calls Bridge.HandleFrame
//  2. Bridge sends FrameMsg to the program, blocking until Update takes it
//  3. Update runs dashboard.State.Apply, then render.Adapter.Render, which
//     draws every binding onto the canvas
//  4. View reads the canvas
//
// Status changes follow the same path as StatusMsg and go straight to the
// adapter.
//
// # Layout Modes
//
//	LayoutSingle      (<84 cols)   one panel per row
//	LayoutTwoColumn   (84-126)     two panels per row
//	LayoutThreeColumn (126+)       three panels per row
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	?           - Toggle help overlay
//	Esc         - Close help overlay
package monitor
