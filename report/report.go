// Package report prints user-facing CLI messages
package report

import (
	"os"

	"github.com/pterm/pterm"
)

// Exported confirms that laps were written to path.
func Exported(path string, laps int) {
	pterm.Success.Printfln("exported %d laps to %s", laps, path)
}

// NoLaps warns that there is nothing to export.
func NoLaps() {
	pterm.Warning.Println("no laps recorded yet, nothing to export")
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
