package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lapwatch/internal/config"
	"github.com/ayoisaiah/lapwatch/internal/feedback"
)

func TestFirstNonEmptyString(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected string
	}{
		{name: "first set", input: []string{"vim", "nano"}, expected: "vim"},
		{name: "skips empty", input: []string{"", "", "nano"}, expected: "nano"},
		{name: "all empty", input: []string{"", ""}, expected: ""},
		{name: "no input", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, firstNonEmptyString(tc.input...))
		})
	}
}

func TestNewFeedback(t *testing.T) {
	testCases := []struct {
		name       string
		cli        config.CLIConfig
		wantSound  bool
		wantHaptic bool
	}{
		{name: "defaults", wantSound: true, wantHaptic: true},
		{name: "muted", cli: config.CLIConfig{Mute: true}, wantHaptic: true},
		{name: "no haptic", cli: config.CLIConfig{NoHaptic: true}, wantSound: true},
		{name: "both off", cli: config.CLIConfig{Mute: true, NoHaptic: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{CLI: tc.cli}
			cfg.Sound.Frequency = 880
			cfg.Haptic.Frequency = 220

			fb, ok := newFeedback(cfg).(feedback.Multi)
			assert.True(t, ok)
			assert.Equal(t, tc.wantSound, fb.Sound != nil)
			assert.Equal(t, tc.wantHaptic, fb.Haptic != nil)
		})
	}
}

func TestCommands(t *testing.T) {
	a := Get()

	for _, name := range []string{"edit-config", "export", "laps", "reset", "status"} {
		assert.NotNil(t, a.Command(name), name)
	}

	assert.Equal(t, config.Version, a.Version)
}

func TestHelpText(t *testing.T) {
	text := helpText()

	assert.Contains(t, text, "KEYBOARD SHORTCUTS")
	assert.Contains(t, text, "LAPWATCH_NO_COLOR")
	assert.Contains(t, text, "ctrl+r")
}

func TestExportDirFlags(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		wantDir  string
		wantName string
	}{
		{
			name:     "global flag before the command",
			args:     []string{"lapwatch", "--export-dir", "global", "export"},
			wantDir:  "global",
			wantName: "lap_times.csv",
		},
		{
			name:     "command flag wins",
			args:     []string{"lapwatch", "--export-dir", "global", "export", "--dir", "local"},
			wantDir:  "local",
			wantName: "lap_times.csv",
		},
		{
			name:     "custom name",
			args:     []string{"lapwatch", "export", "-n", "run.csv"},
			wantDir:  "fromconfig",
			wantName: "run.csv",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Export.Dir = "fromconfig"
			cfg.Export.Filename = "lap_times.csv"

			a := &cli.App{
				Name:  "lapwatch",
				Flags: []cli.Flag{exportDirFlag},
				Commands: []*cli.Command{
					{
						Name:  "export",
						Flags: []cli.Flag{dirFlag, exportNameFlag},
						Action: func(ctx *cli.Context) error {
							if err := config.WithCLIConfig(ctx)(cfg); err != nil {
								return err
							}

							applyExportFlags(ctx, cfg)

							return nil
						},
					},
				},
			}

			require.NoError(t, a.Run(tc.args))
			assert.Equal(t, tc.wantDir, cfg.Export.Dir)
			assert.Equal(t, tc.wantName, cfg.Export.Filename)
		})
	}
}
