// Package ui provides the plain terminal output used by pcmon's one-shot
// commands (init, check, config). The live dashboard lives in the monitor
// package; this package covers everything printed before or instead of it.
//
// # Components
//
//	Spinner - animated status line for a blocking step, finished with
//	          Success, Fail or Skip and the elapsed time
//	Table   - non-interactive table rendered with the bubbles table model
//
// # Colors
//
// Colors are ANSI codes so they follow the terminal theme. DisableColors
// switches lipgloss to an ASCII profile for --no-color and for output that
// is not a terminal.
package ui
