package timer

import (
	"fmt"
	"strings"

	"github.com/ayoisaiah/lapwatch/internal/timeutil"
)

func (t *Timer) control(label string, enabled bool) string {
	if enabled {
		return t.styles.Control.Render(label)
	}

	return t.styles.Disabled.Render(label)
}

func (t *Timer) controlsView() string {
	return t.control("[space] "+t.sw.PrimaryAction(), true) +
		t.control("[l] Lap", t.sw.CanLap()) +
		t.control("[ctrl+r] Reset", true) +
		t.control("[e] Export CSV", t.sw.CanExport())
}

func (t *Timer) lapListView() string {
	var s strings.Builder

	s.WriteString(t.styles.Title.Render("Lap Times"))
	s.WriteString("\n")

	laps := t.sw.Laps()
	if len(laps) == 0 {
		s.WriteString(t.styles.Hint.Render("No laps recorded"))
		return s.String()
	}

	first := 0
	if len(laps) > maxVisibleLaps {
		first = len(laps) - maxVisibleLaps
		s.WriteString(t.styles.Hint.Render(fmt.Sprintf("… %d earlier laps", first)))
		s.WriteString("\n")
	}

	for i := first; i < len(laps); i++ {
		s.WriteString(t.styles.LapNum.Render(fmt.Sprintf("Lap %d", i+1)))
		s.WriteString(t.styles.Interval.Render("+" + timeutil.Format(timeutil.IntervalOf(laps, i))))
		s.WriteString(t.styles.Total.Render(timeutil.Format(laps[i])))

		if i < len(laps)-1 {
			s.WriteString("\n")
		}
	}

	return s.String()
}

func (t *Timer) toggle(label string, on bool) string {
	if on {
		return t.styles.On.Render("● " + label)
	}

	return t.styles.Off.Render("○ " + label)
}

func (t *Timer) settingsView() string {
	p := t.sw.Prefs()

	return strings.Join([]string{
		t.toggle("dark", p.DarkMode),
		t.toggle("sound", p.SoundEnabled),
		t.toggle("haptics", p.HapticEnabled),
	}, "  ")
}

func (t *Timer) helpView() string {
	if t.showHelp {
		return t.styles.Title.Render("Keyboard Shortcuts") + "\n" +
			t.help.FullHelpView(defaultKeymap.FullHelp())
	}

	return t.help.ShortHelpView(defaultKeymap.ShortHelp())
}

func (t *Timer) View() string {
	var s strings.Builder

	s.WriteString(t.styles.Title.Render("Stopwatch"))
	s.WriteString("   ")
	s.WriteString(t.settingsView())
	s.WriteString("\n\n")
	s.WriteString(t.styles.Time.Render(timeutil.Format(t.sw.Elapsed())))
	s.WriteString("\n\n")
	s.WriteString(t.controlsView())
	s.WriteString("\n\n")
	s.WriteString(t.lapListView())

	if t.prompting {
		s.WriteString("\n\n" + t.input.View())
	} else if t.status != "" {
		s.WriteString("\n\n" + t.styles.Status.Render(t.status))
	}

	s.WriteString("\n\n" + t.helpView())

	return t.styles.Base.Width(t.width).Render(s.String())
}
