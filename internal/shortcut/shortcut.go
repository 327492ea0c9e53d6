// Package shortcut maps key presses to stopwatch actions.
package shortcut

import "strings"

// Action is the command a key press resolves to.
type Action int

const (
	None Action = iota
	TogglePlay
	Lap
	Reset
	ToggleDarkMode
	ToggleHelp
	ToggleSound
	ToggleHaptic
	Export
	Quit
)

var actionNames = map[Action]string{
	None:           "none",
	TogglePlay:     "toggle-play",
	Lap:            "lap",
	Reset:          "reset",
	ToggleDarkMode: "toggle-dark-mode",
	ToggleHelp:     "toggle-help",
	ToggleSound:    "toggle-sound",
	ToggleHaptic:   "toggle-haptic",
	Export:         "export",
	Quit:           "quit",
}

func (a Action) String() string {
	return actionNames[a]
}

// Event is a single key press.
type Event struct {
	// Key is the key pressed without modifiers, e.g. " ", "l", "?"
	Key string
	// Ctrl or Meta (Cmd) was held
	Ctrl bool
	Meta bool
	// InInput is set when a text field has focus
	InInput bool
}

// Result is the outcome of routing an Event.
type Result struct {
	Action Action
	// PreventDefault means the key must not reach anything else, such as the
	// terminal's own handling or a focused widget
	PreventDefault bool
}

// Route resolves ev against the shortcut table. Key presses inside a text
// field are never treated as shortcuts.
func Route(ev Event, running bool) Result {
	if ev.InInput {
		return Result{}
	}

	modified := ev.Ctrl || ev.Meta

	switch strings.ToLower(ev.Key) {
	case " ", "space":
		return Result{Action: TogglePlay, PreventDefault: true}
	case "r":
		if modified {
			return Result{Action: Reset, PreventDefault: true}
		}
	case "d":
		if modified {
			return Result{Action: ToggleDarkMode, PreventDefault: true}
		}
	case "c":
		if ev.Ctrl {
			return Result{Action: Quit, PreventDefault: true}
		}
	case "l":
		if running && !modified {
			return Result{Action: Lap}
		}
	case "?":
		return Result{Action: ToggleHelp}
	case "s":
		if !modified {
			return Result{Action: ToggleSound}
		}
	case "v":
		if !modified {
			return Result{Action: ToggleHaptic}
		}
	case "e":
		if !modified {
			return Result{Action: Export}
		}
	case "q":
		if !modified {
			return Result{Action: Quit}
		}
	}

	return Result{}
}
