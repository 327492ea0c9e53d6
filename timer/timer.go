// Package timer runs the interactive stopwatch in the terminal
package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/lapwatch/internal/config"
	"github.com/ayoisaiah/lapwatch/internal/export"
	"github.com/ayoisaiah/lapwatch/internal/stopwatch"
)

const (
	padding  = 2
	maxWidth = 80
	// maxVisibleLaps is how many of the most recent laps are listed
	maxVisibleLaps = 10
)

// tickMsg advances the stopwatch by one interval. It carries the token of the
// run that scheduled it so ticks from an earlier run are ignored.
type tickMsg struct {
	token stopwatch.Token
}

// exportedMsg reports the outcome of an export.
type exportedMsg struct {
	err  error
	path string
	laps int
}

// notifyFunc sends a desktop notification.
type notifyFunc func(title, message string) error

func desktopNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Timer is the bubbletea model for the stopwatch screen.
type Timer struct {
	sw       *stopwatch.Stopwatch
	opts     *config.Config
	notify   notifyFunc
	styles   styles
	status   string
	help     help.Model
	input    textinput.Model
	width    int
	showHelp bool
	// prompting is set while the export file name field has focus
	prompting bool
}

// New returns the stopwatch screen for sw.
func New(sw *stopwatch.Stopwatch, cfg *config.Config) *Timer {
	input := textinput.New()
	input.Prompt = "Save laps as: "
	input.Placeholder = export.DefaultFileName
	input.CharLimit = 255

	t := &Timer{
		sw:     sw,
		opts:   cfg,
		help:   help.New(),
		input:  input,
		notify: desktopNotify,
		width:  maxWidth,
	}

	t.restyle()

	return t
}

func (t *Timer) restyle() {
	t.styles = newStyles(t.sw.Prefs().DarkMode, t.opts.Display.AccentColor)
}

// tick schedules the next tick for the current run. It returns nil when the
// stopwatch is stopped.
func (t *Timer) tick() tea.Cmd {
	tok := t.sw.Token()
	if tok == 0 {
		return nil
	}

	return tea.Tick(stopwatch.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{token: tok}
	})
}

// Init resumes ticking for a stopwatch that was saved while running.
func (t *Timer) Init() tea.Cmd {
	return t.tick()
}
