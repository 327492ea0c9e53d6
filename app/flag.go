package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lapwatch/internal/export"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	muteFlag = &cli.BoolFlag{
		Name:    "mute",
		Aliases: []string{"m"},
		Usage:   "Silence all beeps for this run without changing the saved sound preference",
	}

	noHapticFlag = &cli.BoolFlag{
		Name:  "no-haptic",
		Usage: "Disable haptic pulses for this run without changing the saved preference",
	}

	exportDirFlag = &cli.StringFlag{
		Name:  "export-dir",
		Usage: "Directory to save exported lap times in (default: current directory)",
	}

	dirFlag = &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Usage:   "Directory to export to, overriding --export-dir and the config file",
	}

	exportNameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "File name for the exported lap times (default: " + export.DefaultFileName + ")",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print output in JSON format",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}
)
