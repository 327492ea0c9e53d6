// Package config loads lapwatch settings from the config file, the
// environment and command-line flags
package config

import (
	"io"
	"os"
	"strings"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Display       DisplayConfig      `mapstructure:"display"`
		Export        ExportConfig       `mapstructure:"export"`
		Log           LogConfig          `mapstructure:"log"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		System        SystemConfig       `mapstructure:"-"`
		Haptic        HapticConfig       `mapstructure:"haptic"`
		Sound         SoundConfig        `mapstructure:"sound"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// SoundConfig describes the beep played on each action.
	SoundConfig struct {
		Frequency float64       `mapstructure:"frequency"`
		Volume    float64       `mapstructure:"volume"`
		Duration  time.Duration `mapstructure:"duration"`
	}

	// HapticConfig describes the pulse that stands in for vibration.
	HapticConfig struct {
		Frequency float64 `mapstructure:"frequency"`
	}

	// ExportConfig controls where lap CSVs go.
	ExportConfig struct {
		Dir      string `mapstructure:"dir"`
		Filename string `mapstructure:"filename"`
		Cmd      string `mapstructure:"cmd"`
	}

	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	DisplayConfig struct {
		AccentColor string `mapstructure:"accent_color"`
	}

	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// SystemConfig holds resolved file locations.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// CLIConfig holds per-run overrides that are never written to disk.
	CLIConfig struct {
		Mute     bool
		NoHaptic bool
		NoColor  bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	envDebug = "LAPWATCH_DEBUG"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a Config and applies opts in order. The result is validated.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithPaths records where the database and log file live.
func WithPaths(dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System.DBPath = dbPath
		c.System.LogPath = logPath

		return nil
	}
}

// WithEnv applies overrides from environment variables.
func WithEnv() Option {
	return func(c *Config) error {
		if v, ok := os.LookupEnv(envDebug); ok && strings.TrimSpace(v) != "" {
			c.Log.Level = "debug"
		}

		return nil
	}
}
