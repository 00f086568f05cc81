// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady    State = "ready"
	StateThinking State = "thinking"
	StateError    State = "error"
	StateOffline  State = "offline"
	StateSaved    State = "saved"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	bindings []key.Binding
	state    State
	message  string
	caseName string
	width    int
}

// NewBar creates a new status bar showing the chat keybindings.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:   s,
		bindings: km.ChatHelp(),
		state:    StateReady,
		width:    80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	prefix := ""
	if s.caseName != "" {
		prefix = s.styles.Subtitle.Render(s.caseName) + "  "
	}

	switch s.state {
	case StateThinking:
		return prefix + s.styles.Muted.Render("Thinking...")
	case StateError:
		if s.message != "" {
			return prefix + s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return prefix + s.styles.Error.Render("Error")
	case StateOffline:
		return prefix + s.styles.Warning.Render("Offline answer")
	case StateSaved:
		return prefix + s.styles.Success.Render("Insight saved")
	case StateReady:
		if s.message != "" {
			return prefix + s.styles.Normal.Render(s.message)
		}
	}
	return prefix + s.styles.Muted.Render("Ready")
}

func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.bindings))
	for _, b := range s.bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetCaseName sets the case title shown on the left.
func (s *Bar) SetCaseName(name string) {
	s.caseName = name
}

// SetBindings replaces the keybinding hints.
func (s *Bar) SetBindings(bindings []key.Binding) {
	s.bindings = bindings
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its ready state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
