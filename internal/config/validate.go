package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/pcmon/internal/conn"
	"github.com/rileyhilliard/pcmon/internal/errors"
)

// Bounds for tunables.
const (
	MinReconnectDelay = 100 * time.Millisecond
	MaxProcessLimit   = 100
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but pcmon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade pcmon, or regenerate the file with 'pcmon init --force'.")
	}

	if _, err := conn.Endpoint(cfg.Origin); err != nil {
		return err
	}

	if cfg.ReconnectDelay < MinReconnectDelay {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("reconnect_delay %s is too short", cfg.ReconnectDelay),
			fmt.Sprintf("Use at least %s, e.g. reconnect_delay: 2s", MinReconnectDelay))
	}

	if cfg.HandshakeTimeout < 0 {
		return errors.New(errors.ErrConfig,
			"handshake_timeout can't be negative",
			"Remove it to use the default, or set something like handshake_timeout: 5s")
	}

	if cfg.Processes.Limit < 1 || cfg.Processes.Limit > MaxProcessLimit {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("processes.limit must be between 1 and %d, got %d", MaxProcessLimit, cfg.Processes.Limit),
			"Check the 'processes' section in your config.")
	}

	for i, name := range cfg.Processes.IdleNames {
		if name == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("processes.idle_names[%d] is empty", i),
				"Remove the empty entry.")
		}
	}

	return nil
}
