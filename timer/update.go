package timer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/lapwatch/internal/export"
	"github.com/ayoisaiah/lapwatch/internal/shortcut"
	"github.com/ayoisaiah/lapwatch/internal/stopwatch"
)

// handleTick applies a tick and schedules the next one. Stale ticks end their
// chain here.
func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if !t.sw.Tick(msg.token, stopwatch.TickMs) {
		return t, nil
	}

	return t, t.tick()
}

// dispatch performs a routed shortcut.
func (t *Timer) dispatch(action shortcut.Action) tea.Cmd {
	switch action {
	case shortcut.TogglePlay:
		t.status = ""
		t.sw.Toggle()

		return t.tick()

	case shortcut.Lap:
		t.sw.Lap()

	case shortcut.Reset:
		t.status = ""
		t.sw.Reset()

	case shortcut.ToggleDarkMode:
		t.sw.ToggleDarkMode()
		t.restyle()

	case shortcut.ToggleSound:
		t.sw.ToggleSound()

	case shortcut.ToggleHaptic:
		t.sw.ToggleHaptic()

	case shortcut.ToggleHelp:
		t.showHelp = !t.showHelp

	case shortcut.Export:
		if !t.sw.CanExport() {
			t.status = "No laps to export"
			return nil
		}

		t.prompting = true
		t.status = ""
		t.input.SetValue(t.opts.Export.Filename)
		t.input.CursorEnd()

		return t.input.Focus()

	case shortcut.Quit:
		return tea.Quit

	case shortcut.None:
	}

	return nil
}

// handlePrompt processes keys while the export file name field has focus.
func (t *Timer) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return t, tea.Quit

	case tea.KeyEsc:
		t.prompting = false
		t.input.Blur()

		return t, nil

	case tea.KeyEnter:
		t.prompting = false
		t.input.Blur()

		name := strings.TrimSpace(t.input.Value())
		if name == "" {
			name = t.opts.Export.Filename
		}

		return t, t.exportLaps(name)
	}

	var cmd tea.Cmd

	t.input, cmd = t.input.Update(msg)

	return t, cmd
}

// exportLaps writes the lap log in the background and reports back with an
// exportedMsg.
func (t *Timer) exportLaps(name string) tea.Cmd {
	laps := t.sw.Laps()
	dir := t.opts.Export.Dir
	cmdStr := t.opts.Export.Cmd

	return func() tea.Msg {
		path, err := export.WriteFile(dir, name, laps)
		if err != nil {
			return exportedMsg{err: err}
		}

		if err := export.Run(cmdStr, path); err != nil {
			slog.Warn("export command failed", slog.String("cmd", cmdStr), slog.Any("error", err))
		}

		return exportedMsg{path: path, laps: len(laps)}
	}
}

func (t *Timer) handleExported(msg exportedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("export failed", slog.Any("error", msg.err))

		t.status = "Export failed: " + msg.err.Error()

		return t, nil
	}

	t.status = fmt.Sprintf("Exported %d laps to %s", msg.laps, msg.path)

	if t.opts.Notifications.Enabled {
		go func() {
			err := t.notify("Lap times exported", msg.path)
			if err != nil {
				slog.Warn("unable to display notification", slog.Any("error", err))
			}
		}()
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok &&
		slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case exportedMsg:
		return t.handleExported(msg)

	case tea.KeyMsg:
		if t.prompting {
			return t.handlePrompt(msg)
		}

		res := shortcut.Route(toEvent(msg, false), t.sw.Running())

		return t, t.dispatch(res.Action)

	case tea.WindowSizeMsg:
		t.width = msg.Width - padding*2
		if t.width > maxWidth {
			t.width = maxWidth
		}

		t.help.Width = t.width

		return t, nil
	}

	return t, nil
}
