// Package cli implements the pcmon command-line interface.
//
// # Command Structure
//
// The root command opens the dashboard; subcommands cover setup and
// troubleshooting:
//
//	pcmon               - Live dashboard (needs a terminal)
//	pcmon init          - Create .pcmon.yaml or the global config
//	pcmon check         - Connect once and summarize the first frame
//	pcmon config        - Print the effective configuration
//	pcmon version       - Print build information
//	pcmon completion    - Shell completion scripts
//
// # Configuration
//
// Every command resolves its config the same way (resolveConfig): the
// --config file, else ./.pcmon.yaml, else ~/.config/pcmon/config.yaml, else
// defaults. PCMON_* environment variables override the file and flags
// override both. The result is validated before anything connects.
//
// # Dashboard Wiring
//
// The root command is the composition root. It builds a monitor.Model, hands
// it to a Bubble Tea program, and connects a conn.Manager to that program
// through a monitor.Bridge. The manager's loop is the only producer of frame
// and status messages; the program's loop is the only consumer. On exit the
// manager is stopped, which cancels any pending reconnect.
//
// Log lines go to log.file (tea.LogToFile) while the dashboard owns the
// terminal. --verbose or PCMON_DEBUG adds debug lines.
package cli
