package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legalmind/internal/adapters/driving/tui"
)

var chatCase string

// chatCmd launches the interactive chat for one case.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat about a case in the terminal UI",
	Long: `Launch the interactive terminal chat for a case.

Answers draw on the case's evidence, saved insights and recent messages.
Type "save that" to keep the last answer as an insight.

Controls:
  Enter       - Send message
  PgUp/PgDn   - Scroll the conversation
  Tab         - Show saved insights
  ↑/k, ↓/j    - Navigate insights
  x           - Toggle todo done
  d           - Delete entry
  Esc         - Back to chat
  Ctrl+C      - Quit`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatCase, "case", "c", "", "case ID (default: newest case)")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if dialogueService == nil {
		return errors.New("dialogue service not configured")
	}
	if caseService == nil {
		return errors.New("case service not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	caseID, err := resolveCaseID(ctx, chatCase)
	if err != nil {
		return err
	}
	c, err := caseService.Get(ctx, caseID)
	if err != nil {
		return fmt.Errorf("failed to get case: %w", err)
	}

	app, err := tui.NewApp(&tui.Ports{
		Dialogue: dialogueService,
		Insight:  insightService,
	}, *c)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(ctx).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
