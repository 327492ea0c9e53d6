// Package store persists stopwatch state and preferences as string key/value
// pairs
package store

import "sync"

// Keys under which the stopwatch state is saved.
const (
	KeyElapsed       = "stopwatch_time"
	KeyRunning       = "stopwatch_is_running"
	KeyLaps          = "stopwatch_laps"
	KeyDarkMode      = "stopwatch_dark_mode"
	KeySoundEnabled  = "stopwatch_sound_enabled"
	KeyHapticEnabled = "stopwatch_haptic_enabled"
)

// KV is a synchronous string key/value store. Writes are fire-and-forget:
// implementations log failures instead of returning them.
type KV interface {
	// Get returns the value stored under key and whether it was present
	Get(key string) (string, bool)
	// Set stores value under key, overwriting any previous value
	Set(key, value string)
}

// Memory is an in-memory KV. The zero value is an empty store ready to use.
type Memory struct {
	m  map[string]string
	mu sync.RWMutex
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.m[key]

	return v, ok
}

func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.m == nil {
		m.m = make(map[string]string)
	}

	m.m[key] = value
}

// Snapshot returns a copy of everything in the store.
func (m *Memory) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.m))
	for k, v := range m.m {
		out[k] = v
	}

	return out
}

// NewMemory returns a Memory seeded with the given pairs.
func NewMemory(seed map[string]string) *Memory {
	m := &Memory{m: make(map[string]string, len(seed))}

	for k, v := range seed {
		m.m[k] = v
	}

	return m
}
