// Package insights provides the saved insights view for the TUI.
package insights

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
)

// categories is the display order.
var categories = []domain.Category{domain.CategoryInsight, domain.CategoryArgument, domain.CategoryTodo}

// View lists a case's saved entries.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.EntryList
	statusbar *status.Bar

	service driving.InsightService
	ctx     context.Context
	caseID  string

	err    error
	width  int
	height int
}

// NewView creates an insights view. A nil service shows an empty list.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.InsightService, caseID string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetBindings(km.InsightsHelp())

	return &View{
		styles:    s,
		keymap:    km,
		list:      list.NewEntryList(s),
		statusbar: bar,
		service:   service,
		ctx:       context.Background(),
		caseID:    caseID,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the entries.
func (v *View) Init() tea.Cmd {
	return v.Load()
}

// Load returns a command that fetches every category.
func (v *View) Load() tea.Cmd {
	if v.service == nil {
		return nil
	}
	service, ctx, caseID := v.service, v.ctx, v.caseID
	return func() tea.Msg {
		var all []domain.Insight
		for _, c := range categories {
			items, err := service.List(ctx, caseID, c)
			if err != nil {
				return messages.InsightsLoaded{Err: fmt.Errorf("loading %s entries: %w", c, err)}
			}
			all = append(all, items...)
		}
		return messages.InsightsLoaded{Entries: all}
	}
}

// Update handles messages for the insights view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.InsightsLoaded:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.list.SetEntries(msg.Entries)
		v.statusbar.Clear()
		v.statusbar.SetMessage(fmt.Sprintf("%d entries", len(msg.Entries)))
		return v, nil

	case messages.EntryChanged:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		return v, v.Load()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Back), keymap.Matches(key, v.keymap.Insights):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewChat} }

	case keymap.Matches(key, v.keymap.Toggle):
		entry := v.list.SelectedEntry()
		if entry == nil || entry.Category != domain.CategoryTodo || v.service == nil {
			return v, nil
		}
		service, ctx, id, done := v.service, v.ctx, entry.ID, !entry.Completed
		return v, func() tea.Msg {
			return messages.EntryChanged{ID: id, Err: service.SetCompleted(ctx, id, done)}
		}

	case keymap.Matches(key, v.keymap.Delete):
		entry := v.list.SelectedEntry()
		if entry == nil || v.service == nil {
			return v, nil
		}
		service, ctx, id := v.service, v.ctx, entry.ID
		return v, func() tea.Msg {
			return messages.EntryChanged{ID: id, Err: service.Delete(ctx, id)}
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the insights view.
func (v *View) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("Saved Insights"),
		"",
		lipgloss.NewStyle().Height(max(v.height-4, 1)).Render(v.list.View()),
		v.statusbar.View(),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-4)
	v.statusbar.SetWidth(width)
}

// Entries returns the listed entries.
func (v *View) Entries() []domain.Insight {
	return v.list.Entries()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
