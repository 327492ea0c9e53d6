package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	ExportDir string
	Mute      bool
	NoHaptic  bool
	NoColor   bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			ExportDir: ctx.String("export-dir"),
			Mute:      ctx.Bool("mute"),
			NoHaptic:  ctx.Bool("no-haptic"),
			NoColor:   ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.ExportDir != "" {
		c.Export.Dir = opts.ExportDir
	}

	c.CLI.Mute = opts.Mute
	c.CLI.NoHaptic = opts.NoHaptic
	c.CLI.NoColor = opts.NoColor
}
