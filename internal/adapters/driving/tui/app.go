package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/views/chat"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/views/insights"
	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	caseItem domain.Case

	chatView     *chat.View
	insightsView *insights.View

	currentView messages.ViewType

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a chat application for one case.
func NewApp(ports *Ports, c domain.Case) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if c.ID == "" {
		return nil, fmt.Errorf("creating app: %w", ErrMissingCase)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		caseItem:     c,
		chatView:     chat.NewView(s, km, ports.Dialogue, c.ID, c.Title),
		insightsView: insights.NewView(s, km, ports.Insight, c.ID),
		currentView:  messages.ViewChat,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chatView.WithContext(ctx)
	a.insightsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("LegalMind - "+a.caseItem.Title),
		a.chatView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewInsights {
			return a, a.insightsView.Load()
		}
		return a, nil

	case messages.HistoryLoaded, messages.ReplyReceived:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.InsightsLoaded, messages.EntryChanged:
		a.insightsView, cmd = a.insightsView.Update(msg)
		return a, cmd
	}

	switch a.currentView {
	case messages.ViewInsights:
		a.insightsView, cmd = a.insightsView.Update(msg)
	default:
		a.chatView, cmd = a.chatView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	switch a.currentView {
	case messages.ViewInsights:
		return a.insightsView.View()
	default:
		return a.chatView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Chat returns the chat view.
func (a *App) Chat() *chat.View {
	return a.chatView
}

// Insights returns the insights view.
func (a *App) Insights() *insights.View {
	return a.insightsView
}

// Ready returns whether the app has received its first window size.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.chatView.SetDimensions(width, height)
	a.insightsView.SetDimensions(width, height)
}
