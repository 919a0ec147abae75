package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/rileyhilliard/pcmon/internal/config"
	"github.com/rileyhilliard/pcmon/internal/conn"
	"github.com/rileyhilliard/pcmon/internal/errors"
	"github.com/rileyhilliard/pcmon/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Origin         string    // Pre-specified producer origin
	Global         bool      // Write ~/.config/pcmon/config.yaml instead of ./.pcmon.yaml
	Overwrite      bool      // Replace an existing file with fresh defaults
	NonInteractive bool      // Skip prompts
	Out            io.Writer // Defaults to stdout
}

// Init writes a config file and returns its path. An existing file only has
// its origin updated unless Overwrite is set.
func Init(opts InitOptions) (string, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	path := filepath.Join(".", config.ConfigFileName)
	if opts.Global {
		path = config.GlobalPath()
	}

	origin := strings.TrimSpace(opts.Origin)
	if origin == "" && !opts.NonInteractive {
		prompted, err := promptOrigin()
		if err != nil {
			return "", err
		}
		origin = prompted
	}
	if origin == "" {
		origin = config.DefaultOrigin
	}
	endpoint, err := conn.Endpoint(origin)
	if err != nil {
		return "", err
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil

	switch {
	case exists && !opts.Overwrite:
		if opts.NonInteractive {
			return "", errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to replace it, or edit the origin by hand.")
		}
		update, err := confirm(fmt.Sprintf("'%s' already exists. Update its origin?", path))
		if err != nil {
			return "", err
		}
		if !update {
			fmt.Fprintln(opts.Out, "Cancelled.")
			return "", nil
		}
		if err := config.UpdateOrigin(path, origin); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Can't update "+path,
				"Fix the YAML by hand, or use --force to start over.")
		}
	default:
		cfg := config.DefaultConfig()
		cfg.Origin = origin
		if err := config.Write(path, cfg); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Can't write "+path,
				"Check that the directory is writable.")
		}
	}

	fmt.Fprintf(opts.Out, "%s Wrote %s\n", ui.SuccessStyle.Render(ui.SymbolSuccess), path)
	fmt.Fprintf(opts.Out, "  %s\n", ui.MutedStyle.Render("streaming from "+endpoint))
	fmt.Fprintf(opts.Out, "\nNext: run %s to probe the stream, or %s to open the dashboard.\n",
		ui.BoldStyle.Render("pcmon check"), ui.BoldStyle.Render("pcmon"))
	return path, nil
}

func promptOrigin() (string, error) {
	var origin string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Producer origin").
				Description("The http(s) address the telemetry producer serves on").
				Placeholder(config.DefaultOrigin).
				Value(&origin).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if _, err := conn.Endpoint(s); err != nil {
						return fmt.Errorf("use an http or https URL with a host")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Pass --origin, or use --non-interactive to take the default.")
	}
	return strings.TrimSpace(origin), nil
}

func confirm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title(title).Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try running with --force to replace the file.")
	}
	return ok, nil
}
