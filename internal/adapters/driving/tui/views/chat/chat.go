// Package chat provides the case dialogue view for the TUI.
package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
)

// chrome is the number of rows used by the header, input and status bar.
const chrome = 6

// View shows the transcript of one case above a message input.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.MessageInput
	statusbar *status.Bar
	viewport  viewport.Model
	spinner   spinner.Model

	dialogue driving.DialogueService
	ctx      context.Context
	caseID   string
	title    string

	turns   []domain.Turn
	waiting bool
	err     error
	width   int
	height  int
}

// NewView creates a chat view for caseID.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	dialogue driving.DialogueService,
	caseID, title string,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	bar := status.NewBar(s, km)
	bar.SetCaseName(title)

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewMessageInput(s),
		statusbar: bar,
		viewport:  viewport.New(80, 24-chrome),
		spinner:   sp,
		dialogue:  dialogue,
		ctx:       context.Background(),
		caseID:    caseID,
		title:     title,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the stored history.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.loadHistory())
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.HistoryLoaded:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.turns = msg.Turns
		v.refresh()
		return v, nil

	case messages.ReplyReceived:
		return v.handleReply(msg)

	case spinner.TickMsg:
		if !v.waiting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Insights):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewInsights} }

	case keymap.Matches(key, v.keymap.ScrollUp), keymap.Matches(key, v.keymap.ScrollDown):
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd

	case keymap.Matches(key, v.keymap.Send):
		text := strings.TrimSpace(v.input.Value())
		if text == "" || v.waiting {
			return v, nil
		}
		v.input.Reset()
		v.waiting = true
		v.err = nil
		v.statusbar.SetState(status.StateThinking)
		// Shown until the persisted turns arrive with the reply.
		v.turns = append(v.turns, domain.Turn{Role: domain.TurnUser, Content: text})
		v.refresh()
		return v, tea.Batch(v.send(text), v.spinner.Tick)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleReply(msg messages.ReplyReceived) (*View, tea.Cmd) {
	v.waiting = false
	if msg.Err != nil {
		v.setError(msg.Err)
		return v, nil
	}

	switch {
	case msg.Reply.Directive == domain.DirectiveCommit && !msg.Reply.UsedFallback:
		v.statusbar.SetState(status.StateSaved)
	case msg.Reply.UsedFallback:
		v.statusbar.SetState(status.StateOffline)
	default:
		v.statusbar.Clear()
	}

	v.turns = append(v.turns, domain.Turn{ID: msg.Reply.TurnID, Role: domain.TurnAssistant, Content: msg.Reply.Response})
	v.refresh()
	return v, v.loadHistory()
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

func (v *View) loadHistory() tea.Cmd {
	dialogue, ctx, caseID := v.dialogue, v.ctx, v.caseID
	return func() tea.Msg {
		turns, err := dialogue.History(ctx, caseID)
		return messages.HistoryLoaded{Turns: turns, Err: err}
	}
}

func (v *View) send(text string) tea.Cmd {
	dialogue, ctx, caseID := v.dialogue, v.ctx, v.caseID
	return func() tea.Msg {
		reply, err := dialogue.HandleMessage(ctx, caseID, text)
		return messages.ReplyReceived{Reply: reply, Err: err}
	}
}

// refresh re-renders the transcript and scrolls to the newest turn.
func (v *View) refresh() {
	v.viewport.SetContent(v.renderTranscript())
	v.viewport.GotoBottom()
}

func (v *View) renderTranscript() string {
	if len(v.turns) == 0 {
		return v.styles.Muted.Render("No messages yet. Ask a question about the case.")
	}

	body := lipgloss.NewStyle().Width(v.width - 2).PaddingLeft(2)
	blocks := make([]string, 0, len(v.turns))
	for _, t := range v.turns {
		speaker := v.styles.User.Render("You")
		if t.Role == domain.TurnAssistant {
			speaker = v.styles.Assistant.Render("LegalMind")
		}
		blocks = append(blocks, speaker+"\n"+body.Render(t.Content))
	}
	return strings.Join(blocks, "\n\n")
}

// View renders the chat view.
func (v *View) View() string {
	header := v.styles.Title.Render("LegalMind") + "  " + v.styles.Muted.Render(v.title)

	prompt := v.input.View()
	if v.waiting {
		prompt = v.spinner.View() + v.styles.Muted.Render(" thinking...")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		v.viewport.View(),
		prompt,
		v.statusbar.View(),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	v.viewport.Width = width
	v.viewport.Height = max(height-chrome, 1)
	v.refresh()
}

// Turns returns the displayed turns.
func (v *View) Turns() []domain.Turn {
	return v.turns
}

// Waiting reports whether a reply is pending.
func (v *View) Waiting() bool {
	return v.waiting
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// StatusState returns the status bar state.
func (v *View) StatusState() status.State {
	return v.statusbar.State()
}

// SetInput sets the typed message.
func (v *View) SetInput(text string) {
	v.input.SetValue(text)
}
