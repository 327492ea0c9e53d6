// Package export writes lap logs out as CSV files
package export

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/lapwatch/internal/apperr"
	"github.com/ayoisaiah/lapwatch/internal/osutil"
	"github.com/ayoisaiah/lapwatch/internal/timeutil"
)

// DefaultFileName is the name the CSV is saved under unless overridden.
const DefaultFileName = "lap_times.csv"

var header = []string{"Lap", "Interval", "Total Time"}

var (
	errNoLaps = &apperr.Error{
		Message: "there are no laps to export",
	}

	errWriteCSV = &apperr.Error{
		Message: "unable to write lap times",
	}

	errExportCmd = &apperr.Error{
		Message: "unable to parse export command",
	}
)

// ErrNoLaps is returned when exporting an empty lap log.
var ErrNoLaps error = errNoLaps

// ToCSV renders laps with one row per lap: its 1-based number, the interval
// since the previous lap and the total elapsed time.
func ToCSV(laps []int64) (string, error) {
	if len(laps) == 0 {
		return "", errNoLaps
	}

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	records := make([][]string, 0, len(laps)+1)
	records = append(records, header)

	for i, lap := range laps {
		records = append(records, []string{
			strconv.Itoa(i + 1),
			"+" + timeutil.Format(timeutil.IntervalOf(laps, i)),
			timeutil.Format(lap),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return "", errWriteCSV.Wrap(err)
	}

	return buf.String(), nil
}

// WriteFile saves laps as CSV to dir/name and returns the path written. An
// empty dir means the current directory and an empty name means
// DefaultFileName.
func WriteFile(dir, name string, laps []int64) (string, error) {
	csvText, err := ToCSV(laps)
	if err != nil {
		return "", err
	}

	if name == "" {
		name = DefaultFileName
	}

	if dir != "" {
		if err = os.MkdirAll(dir, osutil.DirPermission); err != nil {
			return "", errWriteCSV.Wrap(err)
		}
	}

	path := filepath.Join(dir, name)

	if err = os.WriteFile(path, []byte(csvText), osutil.FilePermission); err != nil {
		return "", errWriteCSV.Wrap(err)
	}

	slog.Info("laps exported", slog.String("path", path), slog.Int("laps", len(laps)))

	return path, nil
}

// Run executes cmdStr with path appended as its final argument. An empty
// command does nothing.
func Run(cmdStr, path string) error {
	if cmdStr == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(cmdStr)
	if err != nil {
		return errExportCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := append(cmdSlice[1:], path)

	cmd := exec.Command(name, args...)

	return cmd.Run()
}
