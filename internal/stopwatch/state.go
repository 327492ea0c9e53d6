package stopwatch

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/ayoisaiah/lapwatch/store"
)

// Preferences are the user toggles that survive restarts.
type Preferences struct {
	DarkMode      bool `json:"dark_mode"`
	SoundEnabled  bool `json:"sound_enabled"`
	HapticEnabled bool `json:"haptic_enabled"`
}

// DefaultPreferences apply when nothing has been saved yet.
var DefaultPreferences = Preferences{
	DarkMode:      false,
	SoundEnabled:  true,
	HapticEnabled: true,
}

// AppState is everything the stopwatch knows about the current session.
type AppState struct {
	// Laps holds the elapsed time at each lap, cumulative since start
	Laps      []int64     `json:"laps"`
	Prefs     Preferences `json:"preferences"`
	ElapsedMs int64       `json:"elapsed_ms"`
	Running   bool        `json:"running"`
}

func (s AppState) clone() AppState {
	c := s
	c.Laps = append([]int64(nil), s.Laps...)

	return c
}

// Load restores the state saved in kv. Missing or malformed values fall back
// to their defaults.
func Load(kv store.KV) AppState {
	state := AppState{
		Laps:  []int64{},
		Prefs: DefaultPreferences,
	}

	if v, ok := kv.Get(store.KeyElapsed); ok {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil || ms < 0 {
			warnMalformed(store.KeyElapsed, v)
		} else {
			state.ElapsedMs = ms
		}
	}

	state.Running = loadBool(kv, store.KeyRunning, false)

	if v, ok := kv.Get(store.KeyLaps); ok {
		var laps []int64

		switch err := json.Unmarshal([]byte(v), &laps); {
		case err != nil || !nonDecreasing(laps):
			warnMalformed(store.KeyLaps, v)
		case len(laps) > 0 && laps[len(laps)-1] > state.ElapsedMs:
			// a lap can never be later than the clock it was taken from
			slog.Warn(
				"dropping saved laps recorded after the saved elapsed time",
				slog.String("laps", v),
				slog.Int64("elapsed_ms", state.ElapsedMs),
			)
		case laps != nil:
			state.Laps = laps
		}
	}

	state.Prefs.DarkMode = loadBool(kv, store.KeyDarkMode, DefaultPreferences.DarkMode)
	state.Prefs.SoundEnabled = loadBool(kv, store.KeySoundEnabled, DefaultPreferences.SoundEnabled)
	state.Prefs.HapticEnabled = loadBool(kv, store.KeyHapticEnabled, DefaultPreferences.HapticEnabled)

	return state
}

func loadBool(kv store.KV, key string, fallback bool) bool {
	v, ok := kv.Get(key)
	if !ok {
		return fallback
	}

	switch v {
	case "true":
		return true
	case "false":
		return false
	}

	warnMalformed(key, v)

	return fallback
}

func warnMalformed(key, value string) {
	slog.Warn(
		"ignoring malformed saved value",
		slog.String("key", key),
		slog.String("value", value),
	)
}

func nonDecreasing(laps []int64) bool {
	for i := range laps {
		if laps[i] < 0 || (i > 0 && laps[i] < laps[i-1]) {
			return false
		}
	}

	return true
}

func encodeLaps(laps []int64) string {
	if len(laps) == 0 {
		return "[]"
	}

	b, _ := json.Marshal(laps)

	return string(b)
}
