// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// EntryList displays saved insights, arguments and todos in a navigable list.
type EntryList struct {
	entries  []domain.Insight
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewEntryList creates a new entry list component.
func NewEntryList(s *styles.Styles) *EntryList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &EntryList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *EntryList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *EntryList) Update(msg tea.Msg) (*EntryList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list grouped under category headings.
func (l *EntryList) View() string {
	if len(l.entries) == 0 {
		return l.styles.Muted.Render("No saved insights yet. Say \"save that\" after an answer.")
	}

	// Each entry takes two lines plus the occasional heading.
	visible := (l.height - 2) / 3
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.entries) {
		end = len(l.entries)
	}

	lines := make([]string, 0, (end-start)*3)
	var category domain.Category
	for i := start; i < end; i++ {
		entry := &l.entries[i]
		if entry.Category != category {
			category = entry.Category
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, l.styles.Subtitle.Render(heading(category)))
		}
		lines = append(lines, l.renderEntry(i, entry))
	}

	return strings.Join(lines, "\n")
}

func heading(c domain.Category) string {
	switch c {
	case domain.CategoryInsight:
		return "Key Insights"
	case domain.CategoryArgument:
		return "Arguments"
	case domain.CategoryTodo:
		return "Todos"
	default:
		return string(c)
	}
}

func (l *EntryList) renderEntry(index int, entry *domain.Insight) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	mark := ""
	if entry.Category == domain.CategoryTodo {
		mark = "[ ] "
		if entry.Completed {
			mark = "[x] "
		}
	}

	maxLen := l.width - 8
	if maxLen < 20 {
		maxLen = 20
	}
	text := strings.ReplaceAll(entry.Content, "\n", " ")
	if runes := []rune(text); len(runes) > maxLen {
		text = string(runes[:maxLen-3]) + "..."
	}

	line := fmt.Sprintf("%s%s%s", indicator, mark, text)
	if index == l.selected {
		line = l.styles.Selected.Render(line)
	} else {
		line = l.styles.Normal.Render(line)
	}

	meta := entry.CreatedAt.Format("2006-01-02 15:04")
	if len(entry.Tags) > 0 {
		meta += "  #" + strings.Join(entry.Tags, " #")
	}
	return line + "\n" + l.styles.Muted.Render("    "+meta)
}

// SetEntries replaces the entries, keeping the selection in range.
func (l *EntryList) SetEntries(entries []domain.Insight) {
	l.entries = entries
	if l.selected >= len(entries) {
		l.selected = len(entries) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Entries returns the current entries.
func (l *EntryList) Entries() []domain.Insight {
	return l.entries
}

// Selected returns the index of the selected entry.
func (l *EntryList) Selected() int {
	return l.selected
}

// SelectedEntry returns the currently selected entry, or nil if none.
func (l *EntryList) SelectedEntry() *domain.Insight {
	if len(l.entries) == 0 || l.selected < 0 || l.selected >= len(l.entries) {
		return nil
	}
	return &l.entries[l.selected]
}

// MoveUp moves selection up.
func (l *EntryList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *EntryList) MoveDown() {
	if l.selected < len(l.entries)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *EntryList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of entries.
func (l *EntryList) Count() int {
	return len(l.entries)
}
