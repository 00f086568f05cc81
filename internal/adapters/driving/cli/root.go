package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
	"github.com/custodia-labs/legalmind/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

var verbose bool

// Services wired by the entrypoint. Commands check for nil before use.
var (
	caseService      driving.CaseService
	ingestService    driving.IngestService
	dialogueService  driving.DialogueService
	insightService   driving.InsightService
	retrievalService driving.RetrievalService
	settingsService  driving.SettingsService
)

// Services groups the driving ports the CLI depends on.
type Services struct {
	Case      driving.CaseService
	Ingest    driving.IngestService
	Dialogue  driving.DialogueService
	Insight   driving.InsightService
	Retrieval driving.RetrievalService
	Settings  driving.SettingsService
}

var rootCmd = &cobra.Command{
	Use:   "legalmind",
	Short: "Case-aware legal reasoning assistant",
	Long: `LegalMind keeps the evidence, dialogue and saved insights of each legal
case together and answers questions grounded in them.

Evidence is filed as plaintiff or opposition material. Every answer is
built from the most relevant evidence of both sides, your saved insights
and arguments, and the recent conversation. Say "save that" to keep the
last answer as an insight.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetServices installs the services used by all commands.
func SetServices(s *Services) {
	caseService = s.Case
	ingestService = s.Ingest
	dialogueService = s.Dialogue
	insightService = s.Insight
	retrievalService = s.Retrieval
	settingsService = s.Settings
}

// Execute runs the root command.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}

// resolveCaseID returns id when set, otherwise the newest case, seeding the
// sample case into an empty workspace.
func resolveCaseID(ctx context.Context, id string) (string, error) {
	if id != "" {
		return id, nil
	}
	if caseService == nil {
		return "", errors.New("case service not configured")
	}
	c, err := caseService.EnsureDefault(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve case: %w", err)
	}
	return c.ID, nil
}

// parseRoles returns both roles for an empty value.
func parseRoles(value string) ([]domain.Role, error) {
	if value == "" {
		return domain.AllRoles(), nil
	}
	role, err := domain.ParseRole(value)
	if err != nil {
		return nil, err
	}
	return []domain.Role{role}, nil
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
