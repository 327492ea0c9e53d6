package timer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/lapwatch/internal/shortcut"
)

// keymap lists the bindings shown in the help view. Routing itself is done
// by the shortcut package.
type keymap struct {
	togglePlay key.Binding
	lap        key.Binding
	reset      key.Binding
	darkMode   key.Binding
	sound      key.Binding
	haptic     key.Binding
	export     key.Binding
	help       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/pause"),
	),
	lap: key.NewBinding(
		key.WithKeys("l", "L"),
		key.WithHelp("l", "lap"),
	),
	reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset"),
	),
	darkMode: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "dark mode"),
	),
	sound: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sound"),
	),
	haptic: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "haptics"),
	),
	export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export csv"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "shortcuts"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.togglePlay, k.lap, k.reset, k.help, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.togglePlay, k.lap, k.reset},
		{k.darkMode, k.sound, k.haptic},
		{k.export, k.help, k.quit},
	}
}

// toEvent translates a terminal key press for the shortcut router. Terminals
// do not forward Cmd, so Alt stands in for Meta.
func toEvent(msg tea.KeyMsg, inInput bool) shortcut.Event {
	ev := shortcut.Event{InInput: inInput, Meta: msg.Alt}

	switch msg.Type {
	case tea.KeySpace:
		ev.Key = " "
	case tea.KeyCtrlR:
		ev.Key, ev.Ctrl = "r", true
	case tea.KeyCtrlD:
		ev.Key, ev.Ctrl = "d", true
	case tea.KeyCtrlC:
		ev.Key, ev.Ctrl = "c", true
	case tea.KeyRunes:
		ev.Key = string(msg.Runes)
	default:
		ev.Key = msg.String()
	}

	return ev
}
