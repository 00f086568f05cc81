package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
	"github.com/custodia-labs/legalmind/internal/logger"
)

// Ensure DialogueService implements the interface.
var _ driving.DialogueService = (*DialogueService)(nil)

// DialogueService drives one user message through to a persisted reply.
//
// Each message moves through Received, DirectiveCheck, then either
// CommitLastAnswer or RetrievalAndGeneration, and ends Persisted.
type DialogueService struct {
	turns     driven.TurnStore
	insights  driven.InsightStore
	assembler *Assembler
	generator *Generator
	settings  domain.AppSettings
}

// NewDialogueService creates a new dialogue service.
// The generator may be nil, in which case every answer comes from Fallback.
func NewDialogueService(
	turns driven.TurnStore,
	insights driven.InsightStore,
	assembler *Assembler,
	generator *Generator,
	settings domain.AppSettings,
) *DialogueService {
	return &DialogueService{
		turns:     turns,
		insights:  insights,
		assembler: assembler,
		generator: generator,
		settings:  settings,
	}
}

// HandleMessage persists the user's message and returns the persisted reply.
// Generation problems never fail the call; storage problems always do.
func (s *DialogueService) HandleMessage(ctx context.Context, caseID, message string) (*driving.Reply, error) {
	logger.Section("Dialogue")

	if caseID == "" {
		return nil, fmt.Errorf("%w: case ID is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}

	// Received: the user's input is durable before anything else happens.
	userTurn, err := s.appendTurn(ctx, caseID, domain.TurnUser, message)
	if err != nil {
		return nil, err
	}

	directive := domain.ClassifyDirective(message)
	logger.Debug("Directive: %s", directive)

	if directive == domain.DirectiveCommit {
		reply, err := s.commitLastAnswer(ctx, caseID)
		if err != nil {
			return nil, err
		}
		if reply != nil {
			return reply, nil
		}
		logger.Debug("No assistant answer to commit, generating instead")
	}

	reply, err := s.retrieveAndGenerate(ctx, caseID, message, userTurn.ID)
	if err != nil {
		return nil, err
	}
	reply.Directive = directive
	return reply, nil
}

// History returns all turns of a case, oldest first.
func (s *DialogueService) History(ctx context.Context, caseID string) ([]domain.Turn, error) {
	return s.turns.List(ctx, caseID)
}

// commitLastAnswer returns nil without error when there is nothing to commit.
func (s *DialogueService) commitLastAnswer(ctx context.Context, caseID string) (*driving.Reply, error) {
	last, err := s.turns.LastByRole(ctx, caseID, domain.TurnAssistant)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load last answer: %w", err)
	}

	insight := domain.Insight{
		ID:        uuid.New().String(),
		CaseID:    caseID,
		Content:   last.Content,
		Category:  domain.CategoryInsight,
		Tags:      []string{},
		CreatedAt: time.Now(),
	}
	if err := s.insights.Save(ctx, insight); err != nil {
		return nil, fmt.Errorf("save insight: %w", err)
	}
	logger.Info("Committed answer %s as insight %s", last.ID, insight.ID)

	ack, err := s.appendTurn(ctx, caseID, domain.TurnAssistant, domain.CommitAcknowledgement)
	if err != nil {
		return nil, err
	}
	return &driving.Reply{
		TurnID:    ack.ID,
		Response:  ack.Content,
		Directive: domain.DirectiveCommit,
	}, nil
}

func (s *DialogueService) retrieveAndGenerate(
	ctx context.Context, caseID, message, currentTurnID string,
) (*driving.Reply, error) {
	bundle, err := s.assembler.Assemble(ctx, AssembleRequest{
		CaseID:     caseID,
		Query:      message,
		Roles:      domain.AllRoles(),
		TopN:       s.settings.Retrieval.TopN,
		WindowSize: s.settings.Retrieval.WindowSize,
		Overlay:    s.settings.Assistant.CustomSystemPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("assemble context: %w", err)
	}

	// The current message is sent once, after the window.
	window := make([]domain.Turn, 0, len(bundle.Window))
	for _, t := range bundle.Window {
		if t.ID != currentTurnID {
			window = append(window, t)
		}
	}

	response, usedFallback := s.generate(ctx, bundle, window, message)

	turn, err := s.appendTurn(ctx, caseID, domain.TurnAssistant, response)
	if err != nil {
		return nil, err
	}
	return &driving.Reply{
		TurnID:       turn.ID,
		Response:     response,
		UsedFallback: usedFallback,
	}, nil
}

func (s *DialogueService) generate(
	ctx context.Context, bundle *domain.ContextBundle, window []domain.Turn, message string,
) (string, bool) {
	if s.generator == nil || !s.generator.Available() || !s.settings.LLM.IsConfigured() {
		logger.Warn("Generation unavailable: %v", domain.ErrLLMUnavailable)
		return Fallback(message, RenderEvidence(bundle.Evidence)), true
	}

	response, err := s.generator.Complete(ctx, RenderSystemPrompt(bundle), window, message, driven.ChatOptions{
		Temperature: s.settings.LLM.Temperature,
		TopP:        s.settings.LLM.TopP,
	})
	if err != nil {
		logger.Warn("Generation failed, using fallback: %v", err)
		return Fallback(message, RenderEvidence(bundle.Evidence)), true
	}
	return response, false
}

func (s *DialogueService) appendTurn(
	ctx context.Context, caseID string, role domain.TurnRole, content string,
) (*domain.Turn, error) {
	turn := domain.Turn{
		ID:        uuid.New().String(),
		CaseID:    caseID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
	if err := s.turns.Append(ctx, turn); err != nil {
		return nil, fmt.Errorf("persist %s turn: %w", role, err)
	}
	return &turn, nil
}
