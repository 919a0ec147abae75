package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/pcmon/internal/logger"
	"github.com/rileyhilliard/pcmon/internal/ui"
)

// Global flags
var (
	configFlag  string
	originFlag  string
	verboseFlag bool
	noColorFlag bool
)

// Root command flags
var dashboardFlags DashboardFlags

// rootCmd opens the live dashboard.
var rootCmd = &cobra.Command{
	Use:   "pcmon",
	Short: "Live terminal dashboard for a PC telemetry stream",
	Long: `pcmon connects to a telemetry producer's websocket stream and draws a
live dashboard of CPU, GPU, memory, network, disk, ping, fans, processes and
system information.

The stream endpoint is derived from the producer's origin: http://host:port
streams from ws://host:port/ws, https from wss. When the stream drops, pcmon
keeps the last readings on screen and reconnects every reconnect_delay.

Examples:
  pcmon
  pcmon --origin http://192.168.1.20:8080
  pcmon --reconnect-delay 5s --log-file /tmp/pcmon.log`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			ui.DisableColors()
		}
		if verboseFlag {
			logger.SetVerbose(true)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd.Context(), dashboardFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: ./.pcmon.yaml, then ~/.config/pcmon/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&originFlag, "origin", "", "producer origin, e.g. http://127.0.0.1:8080")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "write debug lines to the log")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	AddDashboardFlags(rootCmd, &dashboardFlags)
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command's
// context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
