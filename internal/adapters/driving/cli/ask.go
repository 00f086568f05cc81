package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

var askCase string

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Ask a question about a case",
	Long: `Sends one message to the case dialogue and prints the reply.

The answer is grounded in the case's evidence, saved insights and recent
conversation. Send "save that" to store the previous answer as an insight.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

var historyCase string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show a case's conversation",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	askCmd.Flags().StringVarP(&askCase, "case", "c", "", "case ID (default: newest case)")
	historyCmd.Flags().StringVarP(&historyCase, "case", "c", "", "case ID (default: newest case)")
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(historyCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if dialogueService == nil {
		return errors.New("dialogue service not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	caseID, err := resolveCaseID(ctx, askCase)
	if err != nil {
		return err
	}

	reply, err := dialogueService.HandleMessage(ctx, caseID, args[0])
	if err != nil {
		return fmt.Errorf("failed to handle message: %w", err)
	}

	cmd.Println(reply.Response)
	if reply.UsedFallback && reply.Directive != domain.DirectiveCommit {
		cmd.Println()
		cmd.Println("(offline answer: configure a provider with 'legalmind settings llm')")
	}
	return nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if dialogueService == nil {
		return errors.New("dialogue service not configured")
	}

	ctx := context.Background()
	caseID, err := resolveCaseID(ctx, historyCase)
	if err != nil {
		return err
	}

	turns, err := dialogueService.History(ctx, caseID)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(turns) == 0 {
		cmd.Println("No messages yet.")
		return nil
	}

	for i := range turns {
		speaker := "You"
		if turns[i].Role == domain.TurnAssistant {
			speaker = "LegalMind"
		}
		cmd.Printf("[%s] %s:\n%s\n\n", turns[i].Timestamp.Format("2006-01-02 15:04"), speaker, turns[i].Content)
	}
	return nil
}
