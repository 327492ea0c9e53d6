// Package feedback plays the audible and haptic cues that accompany stopwatch
// actions. Every implementation is best effort: failures are logged and never
// reach the caller.
package feedback

import (
	"log/slog"
	"sync"
	"time"
)

// Feedback is the port through which the stopwatch signals the user.
type Feedback interface {
	// Beep plays a short tone
	Beep()
	// Vibrate pulses for each even-indexed duration in pattern, pausing for each
	// odd-indexed one
	Vibrate(pattern ...time.Duration)
}

// Nop discards all cues.
type Nop struct{}

func (Nop) Beep() {}

func (Nop) Vibrate(...time.Duration) {}

// Multi sends beeps to Sound and vibrations to Haptic.
type Multi struct {
	Sound  Feedback
	Haptic Feedback
}

func (m Multi) Beep() {
	if m.Sound != nil {
		m.Sound.Beep()
	}
}

func (m Multi) Vibrate(pattern ...time.Duration) {
	if m.Haptic != nil {
		m.Haptic.Vibrate(pattern...)
	}
}

// Recorder remembers every cue it receives.
type Recorder struct {
	Patterns [][]time.Duration
	Beeps    int
	mu       sync.Mutex
}

func (r *Recorder) Beep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Beeps++
}

func (r *Recorder) Vibrate(pattern ...time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Patterns = append(r.Patterns, pattern)
}

// Vibrations returns the number of Vibrate calls received.
func (r *Recorder) Vibrations() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.Patterns)
}

// safely runs fn in its own goroutine and swallows any panic.
func safely(name string, fn func() error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Warn(name+" not supported", slog.Any("panic", r))
			}
		}()

		if err := fn(); err != nil {
			slog.Warn(name+" not supported", slog.Any("error", err))
		}
	}()
}
