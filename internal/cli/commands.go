package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/pcmon/internal/config"
	"github.com/rileyhilliard/pcmon/internal/errors"
)

// Command-specific flags
var (
	initGlobal         bool
	initForce          bool
	initNonInteractive bool
	checkWaitFlag      string
)

// initCmd writes a config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a pcmon config file",
	Long: `Create a .pcmon.yaml in the current directory (or the global config with
--global) pointing at your telemetry producer.

Prompts for the origin unless --origin is given or stdin is not a terminal.
If the file exists, only its origin is updated and comments are kept.

Examples:
  pcmon init
  pcmon init --origin http://192.168.1.20:8080
  pcmon init --global --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := Init(InitOptions{
			Origin:         originFlag,
			Global:         initGlobal,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive || !term.IsTerminal(int(os.Stdin.Fd())),
			Out:            cmd.OutOrStdout(),
		})
		return err
	},
}

// checkCmd probes the stream without opening the dashboard
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Connect once and summarize the first frame",
	Long: `Connect to the producer's stream, wait for one frame, and print which
panels it fills. Useful when the dashboard stays empty.

Examples:
  pcmon check
  pcmon check --origin https://box.lan:8443 --wait 30s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wait, err := ParseDuration("wait", checkWaitFlag)
		if err != nil {
			return err
		}
		return checkCommand(cmd.Context(), cmd.OutOrStdout(), nil, wait)
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration pcmon would run with: the config file (if any),
then PCMON_* environment variables, then flags.

Examples:
  pcmon config
  PCMON_RECONNECT_DELAY=5s pcmon config`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := resolveConfig(configFlag, globalOverrides())
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig, "Can't render config", "")
		}
		source := path
		if source == "" {
			source = "defaults (no config file found)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, data)
		return nil
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for pcmon.

Examples:
  # Bash
  pcmon completion bash > /etc/bash_completion.d/pcmon

  # Zsh
  pcmon completion zsh > "${fpath[1]}/_pcmon"

  # Fish
  pcmon completion fish > ~/.config/fish/completions/pcmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// init command flags
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write the global config instead of ./"+config.ConfigFileName)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "replace an existing config file")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "never prompt")

	// check command flags
	checkCmd.Flags().StringVar(&checkWaitFlag, "wait", DefaultCheckWait.String(), "how long to wait for a frame")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}
