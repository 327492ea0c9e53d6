// Package stopwatch holds the stopwatch state machine. It is driven from a
// single goroutine: user actions and ticks are applied in the order they
// arrive, and every change is written through to the store straight away.
package stopwatch

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/ayoisaiah/lapwatch/internal/feedback"
	"github.com/ayoisaiah/lapwatch/store"
)

// TickInterval is how often a running stopwatch advances.
const TickInterval = 10 * time.Millisecond

// TickMs is TickInterval in milliseconds.
const TickMs int64 = 10

// Cue names the action a feedback signal accompanies.
type Cue string

const (
	CueStart  Cue = "start"
	CuePause  Cue = "pause"
	CueReset  Cue = "reset"
	CueLap    Cue = "lap"
	CueToggle Cue = "toggle"
)

var patterns = map[Cue][]time.Duration{
	CueStart:  {50 * time.Millisecond},
	CuePause:  {100 * time.Millisecond, 50 * time.Millisecond, 100 * time.Millisecond},
	CueReset:  {120 * time.Millisecond, 40 * time.Millisecond, 120 * time.Millisecond},
	CueLap:    {80 * time.Millisecond},
	CueToggle: {50 * time.Millisecond},
}

// Token identifies one run of the tick source, from a start to the following
// pause or reset. The zero Token never matches a running stopwatch.
type Token uint64

// Stopwatch tracks elapsed time and laps.
type Stopwatch struct {
	kv    store.KV
	fb    feedback.Feedback
	state AppState
	token Token
	// next is the last token handed out
	next Token
}

// New restores a stopwatch from kv. A stopwatch saved while running resumes
// running with a fresh tick token.
func New(kv store.KV, fb feedback.Feedback) *Stopwatch {
	if fb == nil {
		fb = feedback.Nop{}
	}

	s := &Stopwatch{
		kv:    kv,
		fb:    fb,
		state: Load(kv),
	}

	if s.state.Running {
		s.acquire()
	}

	slog.Debug(
		"stopwatch restored",
		slog.Int64("elapsed_ms", s.state.ElapsedMs),
		slog.Bool("running", s.state.Running),
		slog.Int("laps", len(s.state.Laps)),
	)

	return s
}

// State returns a copy of the current state.
func (s *Stopwatch) State() AppState {
	return s.state.clone()
}

// Elapsed returns the accumulated time in milliseconds.
func (s *Stopwatch) Elapsed() int64 {
	return s.state.ElapsedMs
}

// Running reports whether the stopwatch is advancing.
func (s *Stopwatch) Running() bool {
	return s.state.Running
}

// Laps returns a copy of the lap log.
func (s *Stopwatch) Laps() []int64 {
	return append([]int64(nil), s.state.Laps...)
}

// Prefs returns the current preferences.
func (s *Stopwatch) Prefs() Preferences {
	return s.state.Prefs
}

// Token returns the tick token for the current run, or zero when stopped.
func (s *Stopwatch) Token() Token {
	return s.token
}

func (s *Stopwatch) acquire() {
	s.next++
	s.token = s.next
}

// CancelTick invalidates the current tick token. Ticks carrying it are
// rejected from now on. Calling it more than once is safe.
func (s *Stopwatch) CancelTick() {
	s.token = 0
}

// Start sets the stopwatch running. It does nothing if already running.
func (s *Stopwatch) Start() {
	if s.state.Running {
		return
	}

	s.state.Running = true
	s.acquire()
	s.persistRunning()

	slog.Info("stopwatch started", slog.Int64("elapsed_ms", s.state.ElapsedMs))

	s.cue(CueStart)
}

// Pause stops the stopwatch, keeping the elapsed time. It does nothing if
// already paused.
func (s *Stopwatch) Pause() {
	if !s.state.Running {
		return
	}

	s.state.Running = false
	s.CancelTick()
	s.persistRunning()

	slog.Info("stopwatch paused", slog.Int64("elapsed_ms", s.state.ElapsedMs))

	s.cue(CuePause)
}

// Toggle pauses a running stopwatch and starts a stopped one.
func (s *Stopwatch) Toggle() {
	if s.state.Running {
		s.Pause()
		return
	}

	s.Start()
}

// Reset stops the stopwatch, zeroes the elapsed time and clears all laps.
func (s *Stopwatch) Reset() {
	s.CancelTick()

	s.state.Running = false
	s.state.ElapsedMs = 0
	s.state.Laps = []int64{}

	s.persistRunning()
	s.persistElapsed()
	s.persistLaps()

	slog.Info("stopwatch reset")

	s.cue(CueReset)
}

// Lap records the current elapsed time. It reports false and records nothing
// when the stopwatch is not running.
func (s *Stopwatch) Lap() bool {
	if !s.state.Running {
		return false
	}

	s.state.Laps = append(s.state.Laps, s.state.ElapsedMs)
	s.persistLaps()

	slog.Info(
		"lap recorded",
		slog.Int("lap", len(s.state.Laps)),
		slog.Int64("elapsed_ms", s.state.ElapsedMs),
	)

	s.cue(CueLap)

	return true
}

// Tick advances the stopwatch by deltaMs if tok belongs to the current run.
// Ticks from a run that has since been paused or reset, and ticks while
// stopped, are rejected.
func (s *Stopwatch) Tick(tok Token, deltaMs int64) bool {
	if !s.state.Running || tok == 0 || tok != s.token || deltaMs < 0 {
		return false
	}

	s.state.ElapsedMs += deltaMs
	s.persistElapsed()

	return true
}

// PrimaryAction names what the main control does in the current state.
func (s *Stopwatch) PrimaryAction() string {
	switch {
	case s.state.ElapsedMs == 0 && !s.state.Running:
		return "Start"
	case s.state.Running:
		return "Pause"
	default:
		return "Resume"
	}
}

// CanLap reports whether a lap can be recorded.
func (s *Stopwatch) CanLap() bool {
	return s.state.Running
}

// CanExport reports whether there are laps to export.
func (s *Stopwatch) CanExport() bool {
	return len(s.state.Laps) > 0
}

// cue sends the feedback for c, respecting the sound and haptic preferences.
func (s *Stopwatch) cue(c Cue) {
	if s.state.Prefs.SoundEnabled {
		s.fb.Beep()
	}

	if s.state.Prefs.HapticEnabled {
		s.fb.Vibrate(patterns[c]...)
	}
}

func (s *Stopwatch) persistElapsed() {
	s.kv.Set(store.KeyElapsed, strconv.FormatInt(s.state.ElapsedMs, 10))
}

func (s *Stopwatch) persistRunning() {
	s.kv.Set(store.KeyRunning, strconv.FormatBool(s.state.Running))
}

func (s *Stopwatch) persistLaps() {
	s.kv.Set(store.KeyLaps, encodeLaps(s.state.Laps))
}
