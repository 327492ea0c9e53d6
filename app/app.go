// Package app defines the lapwatch command-line interface
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lapwatch/internal/config"
)

// Get retrieves the lapwatch app instance.
func Get() *cli.App {
	lapwatchApp := &cli.App{
		Name: "lapwatch",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Lapwatch is a stopwatch for the command-line. It records lap splits,
		remembers where you left off, and exports your laps to CSV.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "export",
				Usage:  "Export the recorded laps to a CSV file",
				Action: exportAction,
				Flags: []cli.Flag{
					dirFlag,
					exportNameFlag,
				},
			},
			{
				Name:   "laps",
				Usage:  "Print the recorded laps",
				Action: lapsAction,
				Flags: []cli.Flag{
					jsonFlag,
				},
			},
			{
				Name:   "reset",
				Usage:  "Clear the elapsed time and all laps",
				Action: resetAction,
				Flags: []cli.Flag{
					yesFlag,
				},
			},
			{
				Name:   "status",
				Usage:  "Print the status of the stopwatch",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			exportDirFlag,
			muteFlag,
			noHapticFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return lapwatchApp
}
