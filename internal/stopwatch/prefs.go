package stopwatch

import (
	"log/slog"
	"strconv"

	"github.com/ayoisaiah/lapwatch/store"
)

// ToggleDarkMode flips dark mode and saves it.
func (s *Stopwatch) ToggleDarkMode() bool {
	s.state.Prefs.DarkMode = !s.state.Prefs.DarkMode
	s.kv.Set(store.KeyDarkMode, strconv.FormatBool(s.state.Prefs.DarkMode))

	slog.Info("dark mode toggled", slog.Bool("enabled", s.state.Prefs.DarkMode))

	return s.state.Prefs.DarkMode
}

// ToggleSound flips the sound preference and saves it. Turning sound on plays
// a single confirmation beep.
func (s *Stopwatch) ToggleSound() bool {
	s.state.Prefs.SoundEnabled = !s.state.Prefs.SoundEnabled
	s.kv.Set(store.KeySoundEnabled, strconv.FormatBool(s.state.Prefs.SoundEnabled))

	slog.Info("sound toggled", slog.Bool("enabled", s.state.Prefs.SoundEnabled))

	if s.state.Prefs.SoundEnabled {
		s.fb.Beep()
	}

	return s.state.Prefs.SoundEnabled
}

// ToggleHaptic flips the haptic preference and saves it. Turning haptics on
// sends a single confirmation pulse.
func (s *Stopwatch) ToggleHaptic() bool {
	s.state.Prefs.HapticEnabled = !s.state.Prefs.HapticEnabled
	s.kv.Set(store.KeyHapticEnabled, strconv.FormatBool(s.state.Prefs.HapticEnabled))

	slog.Info("haptics toggled", slog.Bool("enabled", s.state.Prefs.HapticEnabled))

	if s.state.Prefs.HapticEnabled {
		s.fb.Vibrate(patterns[CueToggle]...)
	}

	return s.state.Prefs.HapticEnabled
}
