package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/lapwatch/internal/timeutil"
)

// PrintTable renders data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output lap table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// LapRows builds the rows of a lap table, header first.
func LapRows(laps []int64) [][]string {
	rows := make([][]string, 0, len(laps)+1)
	rows = append(rows, []string{"LAP", "INTERVAL", "TOTAL TIME"})

	for i, lap := range laps {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			"+" + timeutil.Format(timeutil.IntervalOf(laps, i)),
			timeutil.Format(lap),
		})
	}

	return rows
}

// LapRecord is one lap in machine-readable form.
type LapRecord struct {
	Interval   string `json:"interval"`
	Total      string `json:"total"`
	Lap        int    `json:"lap"`
	IntervalMs int64  `json:"interval_ms"`
	TotalMs    int64  `json:"total_ms"`
}

// LapRecords mirrors LapRows without the header. It never returns nil so an
// empty log encodes as [].
func LapRecords(laps []int64) []LapRecord {
	records := make([]LapRecord, 0, len(laps))

	for i, lap := range laps {
		interval := timeutil.IntervalOf(laps, i)

		records = append(records, LapRecord{
			Lap:        i + 1,
			Interval:   "+" + timeutil.Format(interval),
			IntervalMs: interval,
			Total:      timeutil.Format(lap),
			TotalMs:    lap,
		})
	}

	return records
}
