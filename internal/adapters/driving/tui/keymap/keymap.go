// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Send submits the typed message.
	Send key.Binding

	// Insights switches between the chat and the saved entries.
	Insights key.Binding

	// Back returns to the chat.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Toggle marks a todo as done or not done.
	Toggle key.Binding

	// Delete removes the selected entry.
	Delete key.Binding

	// ScrollUp pages the transcript up.
	ScrollUp key.Binding

	// ScrollDown pages the transcript down.
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Insights: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "insights"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("x", "done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
	}
}

// ChatHelp returns keybindings for the chat view.
func (k *KeyMap) ChatHelp() []key.Binding {
	return []key.Binding{k.Send, k.ScrollUp, k.Insights, k.Quit}
}

// InsightsHelp returns keybindings for the insights view.
func (k *KeyMap) InsightsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Delete, k.Back}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
