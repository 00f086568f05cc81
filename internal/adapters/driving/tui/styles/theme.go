// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette of the TUI.
type Theme struct {
	// Accent marks titles and the user's turns.
	Accent lipgloss.Color

	// Counsel marks the assistant's turns and headings.
	Counsel lipgloss.Color

	// Text is the default text colour.
	Text lipgloss.Color

	// Muted is for secondary text.
	Muted lipgloss.Color

	// Success, Warning and Error colour status messages.
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Border outlines the input field.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the navy and gold palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:  lipgloss.Color("#D4A017"),
		Counsel: lipgloss.Color("#5B8DEF"),
		Text:    lipgloss.Color("#E6E9EF"),
		Muted:   lipgloss.Color("#7A8194"),
		Success: lipgloss.Color("#7BC47F"),
		Warning: lipgloss.Color("#F2C14E"),
		Error:   lipgloss.Color("#E5616B"),
		Border:  lipgloss.Color("#3B4252"),
		Bar:     lipgloss.Color("#1B2233"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style

	// User and Assistant label the speakers of the transcript.
	User      lipgloss.Style
	Assistant lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Counsel),
		Normal:   lipgloss.NewStyle().Foreground(theme.Text),
		Muted:    lipgloss.NewStyle().Foreground(theme.Muted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(theme.Bar).Background(theme.Accent),
		Error:    lipgloss.NewStyle().Foreground(theme.Error),
		Success:  lipgloss.NewStyle().Foreground(theme.Success),
		Warning:  lipgloss.NewStyle().Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		User:      lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Assistant: lipgloss.NewStyle().Bold(true).Foreground(theme.Counsel).Underline(true),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
