package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rileyhilliard/pcmon/internal/conn"
	"github.com/rileyhilliard/pcmon/internal/dashboard"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// DefaultOrigin is where the metrics producer serves its dashboard unless
// told otherwise.
const DefaultOrigin = "http://127.0.0.1:8080"

// Config represents the complete pcmon configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Origin is the producer's dashboard URL. The stream endpoint is derived
	// from it: same host and port, path /ws, wss when the origin is https.
	Origin string `yaml:"origin" mapstructure:"origin"`

	// ReconnectDelay is the fixed wait after a close before reconnecting.
	ReconnectDelay time.Duration `yaml:"reconnect_delay" mapstructure:"reconnect_delay"`

	// HandshakeTimeout bounds each websocket dial.
	HandshakeTimeout time.Duration `yaml:"handshake_timeout" mapstructure:"handshake_timeout"`

	Processes ProcessConfig `yaml:"processes" mapstructure:"processes"`
	Log       LogConfig     `yaml:"log" mapstructure:"log"`
}

// ProcessConfig controls the processes panel.
type ProcessConfig struct {
	// Limit caps how many rows are shown.
	Limit int `yaml:"limit" mapstructure:"limit"`

	// IdleNames are process names dropped from the list.
	IdleNames []string `yaml:"idle_names" mapstructure:"idle_names"`
}

// LogConfig controls where diagnostics go while the dashboard owns the
// terminal.
type LogConfig struct {
	// File receives log output. Supports ~ expansion.
	File string `yaml:"file" mapstructure:"file"`

	// Verbose enables debug lines.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:          CurrentConfigVersion,
		Origin:           DefaultOrigin,
		ReconnectDelay:   conn.DefaultReconnectDelay,
		HandshakeTimeout: conn.DefaultHandshakeTimeout,
		Processes: ProcessConfig{
			Limit:     dashboard.DefaultProcessLimit,
			IdleNames: append([]string(nil), dashboard.DefaultIdleNames...),
		},
		Log: LogConfig{
			File: filepath.Join(os.TempDir(), "pcmon.log"),
		},
	}
}

// DashboardOptions converts the processes section into reducer options.
func (c *Config) DashboardOptions() dashboard.Options {
	return dashboard.Options{
		ProcessLimit: c.Processes.Limit,
		IdleNames:    c.Processes.IdleNames,
	}
}
