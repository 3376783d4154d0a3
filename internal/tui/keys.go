package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/firefly-engineering/steamdirs/internal/browser"
)

// keyMap holds the non-character keys the browser reacts to. Letters are
// passed through as runes because their meaning depends on the mode.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Backspace key.Binding
	Search    key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "open"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("Backspace", "delete"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// listHelp is the key help shown in the list title.
func listHelp() string {
	nav := keys.Up.Help().Key + "/" + keys.Down.Help().Key + " to navigate"
	parts := []string{nav}
	for _, b := range []key.Binding{keys.Enter, keys.Quit} {
		parts = append(parts, b.Help().Key+" to "+b.Help().Desc)
	}
	return strings.Join(parts, ", ")
}

// translate converts a bubbletea key message into browser key presses.
// A paste or fast typing can deliver several runes in one message.
func translate(msg tea.KeyMsg) []browser.Key {
	switch {
	case key.Matches(msg, keys.Up):
		return []browser.Key{{Code: browser.KeyUp}}
	case key.Matches(msg, keys.Down):
		return []browser.Key{{Code: browser.KeyDown}}
	case key.Matches(msg, keys.Enter):
		return []browser.Key{{Code: browser.KeyEnter}}
	case key.Matches(msg, keys.Backspace):
		return []browser.Key{{Code: browser.KeyBackspace}}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []browser.Key{browser.RuneKey(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return []browser.Key{{Code: browser.KeyOther}}
		}
		out := make([]browser.Key, len(msg.Runes))
		for i, r := range msg.Runes {
			out[i] = browser.RuneKey(r)
		}
		return out
	}

	return []browser.Key{{Code: browser.KeyOther}}
}
