package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/pcmon/internal/config"
	"github.com/rileyhilliard/pcmon/internal/errors"
)

// DashboardFlags holds the root command's overrides for the config file.
type DashboardFlags struct {
	ReconnectDelay string
	LogFile        string
}

// AddDashboardFlags registers --reconnect-delay and --log-file on a command.
func AddDashboardFlags(cmd *cobra.Command, flags *DashboardFlags) {
	cmd.Flags().StringVar(&flags.ReconnectDelay, "reconnect-delay", "", "wait between reconnect attempts (e.g., 2s, 500ms)")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "where log lines go while the dashboard owns the terminal")
}

// ParseDuration parses a duration flag. It returns zero for an empty flag.
func ParseDuration(name, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid --%s", value, name),
			"Try something like 2s, 500ms, or 1m.")
	}
	return d, nil
}

// Overrides are flag values layered over the loaded config. Empty fields
// leave the config alone.
type Overrides struct {
	Origin         string
	ReconnectDelay string
	LogFile        string
	Verbose        bool
}

// resolveConfig loads the config named by explicit (or found on the search
// path), applies overrides and validates the result. The returned path is
// empty when no file was found.
func resolveConfig(explicit string, o Overrides) (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(explicit)
	if err != nil {
		return nil, "", err
	}

	if origin := strings.TrimSpace(o.Origin); origin != "" {
		cfg.Origin = origin
	}
	delay, err := ParseDuration("reconnect-delay", o.ReconnectDelay)
	if err != nil {
		return nil, "", err
	}
	if delay != 0 {
		cfg.ReconnectDelay = delay
	}
	if o.LogFile != "" {
		cfg.Log.File = config.ExpandTilde(o.LogFile)
	}
	if o.Verbose {
		cfg.Log.Verbose = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// globalOverrides collects the persistent flags every command honors.
func globalOverrides() Overrides {
	return Overrides{Origin: originFlag, Verbose: verboseFlag}
}
