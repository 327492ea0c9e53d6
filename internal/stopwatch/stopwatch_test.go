package stopwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/lapwatch/internal/feedback"
	"github.com/ayoisaiah/lapwatch/store"
)

func newTestStopwatch(
	t *testing.T,
	seed map[string]string,
) (*Stopwatch, *store.Memory, *feedback.Recorder) {
	t.Helper()

	kv := store.NewMemory(seed)
	fb := &feedback.Recorder{}

	return New(kv, fb), kv, fb
}

func tickN(t *testing.T, s *Stopwatch, n int) {
	t.Helper()

	for range n {
		require.True(t, s.Tick(s.Token(), TickMs), "tick rejected while running")
	}
}

func TestStartPauseKeepsElapsed(t *testing.T) {
	s, _, _ := newTestStopwatch(t, map[string]string{store.KeyElapsed: "4200"})

	s.Start()
	s.Pause()

	assert.Equal(t, int64(4200), s.Elapsed())
	assert.False(t, s.Running())
}

func TestTickAddsExactly(t *testing.T) {
	s, kv, _ := newTestStopwatch(t, nil)

	s.Start()

	for range 37 {
		s.Tick(s.Token(), 25)
	}

	assert.Equal(t, int64(37*25), s.Elapsed())

	v, _ := kv.Get(store.KeyElapsed)
	assert.Equal(t, "925", v)
}

func TestTickRejectedWhenStopped(t *testing.T) {
	s, _, _ := newTestStopwatch(t, nil)

	assert.False(t, s.Tick(s.Token(), TickMs))
	assert.Equal(t, int64(0), s.Elapsed())

	s.Start()
	tok := s.Token()
	tickN(t, s, 3)
	s.Pause()

	assert.False(t, s.Tick(tok, TickMs), "tick from a paused run must be rejected")
	assert.Equal(t, int64(30), s.Elapsed())
}

func TestStaleTokenAfterRestart(t *testing.T) {
	s, _, _ := newTestStopwatch(t, nil)

	s.Start()
	old := s.Token()
	s.Pause()
	s.Start()

	assert.NotEqual(t, old, s.Token())
	assert.False(t, s.Tick(old, TickMs), "tick from an earlier run must be rejected")
	assert.True(t, s.Tick(s.Token(), TickMs))
	assert.Equal(t, int64(10), s.Elapsed())
}

func TestCancelTickIsIdempotent(t *testing.T) {
	s, _, _ := newTestStopwatch(t, nil)

	s.Start()
	tok := s.Token()

	s.CancelTick()
	s.CancelTick()

	assert.Equal(t, Token(0), s.Token())
	assert.False(t, s.Tick(tok, TickMs))
}

func TestLap(t *testing.T) {
	s, kv, fb := newTestStopwatch(t, nil)

	assert.False(t, s.Lap(), "lap while paused must be ignored")
	assert.Empty(t, s.Laps())
	assert.Equal(t, 0, fb.Beeps)

	s.Start()
	tickN(t, s, 12)

	assert.True(t, s.Lap())
	assert.Equal(t, []int64{120}, s.Laps())

	v, _ := kv.Get(store.KeyLaps)
	assert.Equal(t, "[120]", v)
}

func TestReset(t *testing.T) {
	testCases := []struct {
		Seed map[string]string
		Name string
	}{
		{
			Name: "fresh",
			Seed: nil,
		},
		{
			Name: "running with laps",
			Seed: map[string]string{
				store.KeyElapsed: "5000",
				store.KeyRunning: "true",
				store.KeyLaps:    "[1000,3000]",
			},
		},
		{
			Name: "paused with laps",
			Seed: map[string]string{
				store.KeyElapsed: "5000",
				store.KeyRunning: "false",
				store.KeyLaps:    "[1000]",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			s, kv, _ := newTestStopwatch(t, tc.Seed)

			s.Reset()

			assert.Equal(t, int64(0), s.Elapsed())
			assert.False(t, s.Running())
			assert.Empty(t, s.Laps())
			assert.Equal(t, Token(0), s.Token())

			snap := kv.Snapshot()
			assert.Equal(t, "0", snap[store.KeyElapsed])
			assert.Equal(t, "false", snap[store.KeyRunning])
			assert.Equal(t, "[]", snap[store.KeyLaps])
		})
	}
}

func TestLapScenario(t *testing.T) {
	s, kv, _ := newTestStopwatch(t, nil)

	s.Start()
	tickN(t, s, 100)
	s.Lap()
	tickN(t, s, 50)
	s.Pause()

	assert.Equal(t, int64(1500), s.Elapsed())
	assert.Equal(t, []int64{1000}, s.Laps())
	assert.False(t, s.Running())

	assert.Equal(t, map[string]string{
		store.KeyElapsed: "1500",
		store.KeyRunning: "false",
		store.KeyLaps:    "[1000]",
	}, kv.Snapshot())
}

func TestNoOpTransitionsAreSilent(t *testing.T) {
	s, _, fb := newTestStopwatch(t, nil)

	s.Pause()
	assert.Equal(t, 0, fb.Beeps)

	s.Start()
	s.Start()
	assert.Equal(t, 1, fb.Beeps)
	assert.Equal(t, 1, fb.Vibrations())
}

func TestCuesFollowPreferences(t *testing.T) {
	s, _, fb := newTestStopwatch(t, map[string]string{
		store.KeySoundEnabled:  "false",
		store.KeyHapticEnabled: "true",
	})

	s.Start()
	s.Lap()
	s.Pause()
	s.Reset()

	assert.Equal(t, 0, fb.Beeps)
	require.Equal(t, 4, fb.Vibrations())
	assert.Equal(t, patterns[CueStart], fb.Patterns[0])
	assert.Equal(t, patterns[CueLap], fb.Patterns[1])
	assert.Equal(t, patterns[CuePause], fb.Patterns[2])
	assert.Equal(t, patterns[CueReset], fb.Patterns[3])
}

func TestRestoreRunning(t *testing.T) {
	s, _, fb := newTestStopwatch(t, map[string]string{
		store.KeyElapsed: "2000",
		store.KeyRunning: "true",
	})

	assert.True(t, s.Running())
	assert.NotEqual(t, Token(0), s.Token())
	assert.True(t, s.Tick(s.Token(), TickMs))
	assert.Equal(t, int64(2010), s.Elapsed())
	assert.Equal(t, 0, fb.Beeps, "restoring must not cue")
}

func TestLapAfterRestoringInconsistentState(t *testing.T) {
	s, _, _ := newTestStopwatch(t, map[string]string{
		store.KeyElapsed: "garbage",
		store.KeyRunning: "true",
		store.KeyLaps:    "[5000]",
	})

	require.True(t, s.Tick(s.Token(), TickMs))
	require.True(t, s.Lap())

	assert.Equal(t, []int64{10}, s.Laps())
	assert.Equal(t, int64(10), s.Elapsed())
}

func TestPrimaryAction(t *testing.T) {
	s, _, _ := newTestStopwatch(t, nil)

	assert.Equal(t, "Start", s.PrimaryAction())
	assert.False(t, s.CanLap())
	assert.False(t, s.CanExport())

	s.Start()
	assert.Equal(t, "Pause", s.PrimaryAction())
	assert.True(t, s.CanLap())

	tickN(t, s, 1)
	s.Lap()
	s.Pause()

	assert.Equal(t, "Resume", s.PrimaryAction())
	assert.True(t, s.CanExport())
}

func TestStateIsACopy(t *testing.T) {
	s, _, _ := newTestStopwatch(t, map[string]string{store.KeyLaps: "[10,20]"})

	st := s.State()
	st.Laps[0] = 999

	laps := s.Laps()
	laps[1] = 999

	assert.Equal(t, []int64{10, 20}, s.Laps())
}
