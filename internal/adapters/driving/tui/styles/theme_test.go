package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_ColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()
	require.NotNil(t, theme)

	palette := []lipgloss.Color{
		theme.Accent, theme.Counsel, theme.Text, theme.Muted,
		theme.Success, theme.Warning, theme.Error, theme.Border, theme.Bar,
	}

	seen := make(map[string]bool)
	for _, c := range palette {
		s := string(c)
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate colour: %s", s)
		seen[s] = true
	}
}

func TestNewStyles(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, theme, NewStyles(theme).Theme())
	assert.NotNil(t, NewStyles(nil).Theme())
	assert.NotNil(t, DefaultStyles().Theme())
}

func TestStyles_AllStylesInitialised(t *testing.T) {
	s := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"Title": s.Title, "Subtitle": s.Subtitle, "Normal": s.Normal, "Muted": s.Muted,
		"Selected": s.Selected, "Error": s.Error, "Success": s.Success, "Warning": s.Warning,
		"InputField": s.InputField, "StatusBar": s.StatusBar, "User": s.User, "Assistant": s.Assistant,
	} {
		assert.NotEqual(t, lipgloss.Style{}, style, name)
		assert.Contains(t, style.Render("text"), "text", name)
	}
}
