package timer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/lapwatch/internal/config"
	"github.com/ayoisaiah/lapwatch/internal/feedback"
	"github.com/ayoisaiah/lapwatch/internal/stopwatch"
	"github.com/ayoisaiah/lapwatch/store"
)

func newTestTimer(t *testing.T, seed map[string]string) (*Timer, *store.Memory) {
	t.Helper()

	kv := store.NewMemory(seed)
	sw := stopwatch.New(kv, &feedback.Recorder{})

	cfg := &config.Config{
		Export: config.ExportConfig{
			Dir:      t.TempDir(),
			Filename: "lap_times.csv",
		},
		Display: config.DisplayConfig{AccentColor: "#B0DB43"},
	}

	tm := New(sw, cfg)
	tm.notify = func(string, string) error { return nil }

	return tm, kv
}

func press(tm *Timer, msg tea.KeyMsg) tea.Cmd {
	_, cmd := tm.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

// ticks delivers n ticks for the current run.
func ticks(tm *Timer, n int) {
	for range n {
		tm.Update(tickMsg{token: tm.sw.Token()})
	}
}

func TestSpaceStartsAndSchedulesTick(t *testing.T) {
	tm, _ := newTestTimer(t, nil)

	assert.Nil(t, tm.Init(), "a stopped stopwatch does not tick")

	cmd := press(tm, space)
	assert.True(t, tm.sw.Running())
	assert.NotNil(t, cmd, "starting must schedule a tick")

	cmd = press(tm, space)
	assert.False(t, tm.sw.Running())
	assert.Nil(t, cmd)
}

func TestInitResumesSavedRun(t *testing.T) {
	tm, _ := newTestTimer(t, map[string]string{
		store.KeyElapsed: "500",
		store.KeyRunning: "true",
	})

	assert.NotNil(t, tm.Init())
}

func TestStaleTickIsDropped(t *testing.T) {
	tm, _ := newTestTimer(t, nil)

	press(tm, space)
	old := tm.sw.Token()
	ticks(tm, 5)

	press(tm, space)

	_, cmd := tm.Update(tickMsg{token: old})
	assert.Nil(t, cmd, "a stale tick must not reschedule")
	assert.Equal(t, int64(50), tm.sw.Elapsed())

	press(tm, space)

	_, cmd = tm.Update(tickMsg{token: old})
	assert.Nil(t, cmd)
	assert.Equal(t, int64(50), tm.sw.Elapsed())
}

func TestLapScenario(t *testing.T) {
	tm, kv := newTestTimer(t, nil)

	press(tm, runes("l"))
	assert.Empty(t, tm.sw.Laps(), "lap while stopped is ignored")

	press(tm, space)
	ticks(tm, 100)
	press(tm, runes("l"))
	ticks(tm, 50)
	press(tm, space)

	assert.Equal(t, int64(1500), tm.sw.Elapsed())
	assert.Equal(t, []int64{1000}, tm.sw.Laps())

	v, _ := kv.Get(store.KeyLaps)
	assert.Equal(t, "[1000]", v)

	view := tm.View()
	assert.Contains(t, view, "00:01.50")
	assert.Contains(t, view, "Resume")
	assert.Contains(t, view, "Lap 1")
}

func TestCtrlShortcuts(t *testing.T) {
	tm, kv := newTestTimer(t, nil)

	press(tm, space)
	ticks(tm, 3)

	press(tm, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, int64(0), tm.sw.Elapsed())
	assert.False(t, tm.sw.Running())

	press(tm, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.True(t, tm.sw.Prefs().DarkMode)

	v, _ := kv.Get(store.KeyDarkMode)
	assert.Equal(t, "true", v)
}

func TestHelpToggle(t *testing.T) {
	tm, _ := newTestTimer(t, nil)

	assert.NotContains(t, tm.View(), "Keyboard Shortcuts")

	press(tm, runes("?"))
	assert.Contains(t, tm.View(), "Keyboard Shortcuts")

	press(tm, runes("?"))
	assert.NotContains(t, tm.View(), "Keyboard Shortcuts")
}

func TestExportGatedOnLaps(t *testing.T) {
	tm, _ := newTestTimer(t, nil)

	press(tm, runes("e"))

	assert.False(t, tm.prompting)
	assert.Equal(t, "No laps to export", tm.status)
}

func TestExportPrompt(t *testing.T) {
	tm, _ := newTestTimer(t, nil)

	press(tm, space)
	ticks(tm, 100)
	press(tm, runes("l"))
	ticks(tm, 150)
	press(tm, runes("l"))

	press(tm, runes("e"))
	require.True(t, tm.prompting)
	assert.Equal(t, "lap_times.csv", tm.input.Value())

	// shortcuts are suppressed while typing
	running := tm.sw.Running()
	press(tm, space)
	press(tm, runes("l"))
	assert.Equal(t, running, tm.sw.Running())
	assert.Len(t, tm.sw.Laps(), 2)

	tm.input.SetValue("splits.csv")

	cmd := press(tm, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, tm.prompting)

	msg := cmd()
	tm.Update(msg)

	path := filepath.Join(tm.opts.Export.Dir, "splits.csv")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(
		t,
		"Lap,Interval,Total Time\n1,+00:01.00,00:01.00\n2,+00:01.50,00:02.50\n",
		string(b),
	)
	assert.True(t, strings.HasPrefix(tm.status, "Exported 2 laps"), tm.status)
}

func TestExportPromptCancel(t *testing.T) {
	tm, _ := newTestTimer(t, map[string]string{store.KeyLaps: "[1000]"})

	press(tm, runes("e"))
	require.True(t, tm.prompting)

	cmd := press(tm, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, tm.prompting)

	_, err := os.Stat(filepath.Join(tm.opts.Export.Dir, "lap_times.csv"))
	assert.True(t, os.IsNotExist(err))
}
