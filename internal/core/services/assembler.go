package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
	"github.com/custodia-labs/legalmind/internal/logger"
)

// insightTimeFormat matches the timestamps shown in saved entry lines.
const insightTimeFormat = "2006-01-02 15:04:05"

// AssembleRequest describes one context assembly.
// Settings values are passed explicitly so assembly never reads
// ambient configuration.
type AssembleRequest struct {
	CaseID string
	Query  string

	// Roles are retrieved in parallel and rendered in this order.
	Roles []domain.Role

	// TopN is the number of documents retrieved per role.
	TopN int

	// WindowSize is the number of recent turns included.
	WindowSize int

	// Overlay is the user's custom system instruction, if any.
	Overlay string
}

// Assembler builds the context bundle for a query.
type Assembler struct {
	retrieval driving.RetrievalService
	insights  driven.InsightStore
	turns     driven.TurnStore
	prompts   driven.PromptStore
}

// NewAssembler creates a new context assembler.
// The prompts parameter is optional (can be nil); built-in prompt text
// is used when it is absent or a prompt cannot be loaded.
func NewAssembler(
	retrieval driving.RetrievalService,
	insights driven.InsightStore,
	turns driven.TurnStore,
	prompts driven.PromptStore,
) *Assembler {
	return &Assembler{
		retrieval: retrieval,
		insights:  insights,
		turns:     turns,
		prompts:   prompts,
	}
}

// Assemble gathers evidence, saved entries and the recent turn window.
// Retrieval failures degrade to an empty section; storage failures for
// saved entries and turns are returned.
func (a *Assembler) Assemble(ctx context.Context, req AssembleRequest) (*domain.ContextBundle, error) {
	logger.Section("Context Assembly")

	topN := req.TopN
	if topN <= 0 {
		topN = domain.DefaultTopN
	}
	windowSize := req.WindowSize
	if windowSize <= 0 {
		windowSize = domain.DefaultWindowSize
	}

	sections := make([]domain.EvidenceSection, len(req.Roles))
	var insights, arguments []domain.Insight
	var recent []domain.Turn

	g, gctx := errgroup.WithContext(ctx)

	for i, role := range req.Roles {
		g.Go(func() error {
			key := domain.CollectionKey(role, req.CaseID)
			docs, err := a.retrieval.Rank(gctx, key, req.Query, topN)
			if err != nil {
				logger.Warn("Retrieval unavailable for %s: %v", key, err)
				docs = nil
			}
			sections[i] = domain.EvidenceSection{Role: role, Documents: docs}
			return nil
		})
	}

	g.Go(func() error {
		var err error
		insights, err = a.insights.List(gctx, req.CaseID, domain.CategoryInsight)
		if err != nil {
			return fmt.Errorf("list insights: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		arguments, err = a.insights.List(gctx, req.CaseID, domain.CategoryArgument)
		if err != nil {
			return fmt.Errorf("list arguments: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		recent, err = a.turns.Recent(gctx, req.CaseID, windowSize)
		if err != nil {
			return fmt.Errorf("load recent turns: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundle := &domain.ContextBundle{
		CaseID:       req.CaseID,
		Query:        req.Query,
		BaseIdentity: a.loadPrompt(driven.PromptBaseIdentity, domain.DefaultBaseIdentity),
		Overlay:      req.Overlay,
		Repositories: a.loadPrompt(driven.PromptRepositories, domain.DefaultRepositories),
		Insights:     insights,
		Arguments:    arguments,
		// Storage returns newest first; the model must see oldest first.
		Window: domain.Reverse(recent),
	}
	for _, s := range sections {
		if len(s.Documents) > 0 {
			bundle.Evidence = append(bundle.Evidence, s)
		}
	}

	logger.Debug("Assembled: %d evidence sections, %d insights, %d arguments, %d turns",
		len(bundle.Evidence), len(insights), len(arguments), len(bundle.Window))

	return bundle, nil
}

func (a *Assembler) loadPrompt(name, defaultText string) string {
	if a.prompts == nil {
		return defaultText
	}
	text, err := a.prompts.Load(name)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			logger.Debug("Prompt %s unavailable, using default: %v", name, err)
		}
		return defaultText
	}
	return text
}

// RenderEvidence returns the evidence context text: one role-labelled
// block per section, or "" when there is none.
func RenderEvidence(sections []domain.EvidenceSection) string {
	var b strings.Builder
	for _, s := range sections {
		if len(s.Documents) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(s.Role.Label())
		b.WriteString(":\n")
		b.WriteString(s.Text())
	}
	return b.String()
}

// RenderSystemPrompt composes the system prompt from a bundle.
// Sections always appear in the same order: identity, overlay,
// repositories, evidence, insights, arguments.
func RenderSystemPrompt(bundle *domain.ContextBundle) string {
	var b strings.Builder

	b.WriteString(bundle.BaseIdentity)
	if bundle.Overlay != "" {
		b.WriteString("\n\n### User Custom System Instruction\n")
		b.WriteString(bundle.Overlay)
	}

	b.WriteString("\n\n")
	b.WriteString(bundle.Repositories)

	evidence := RenderEvidence(bundle.Evidence)
	if evidence == "" {
		evidence = domain.NoEvidencePlaceholder
	}
	b.WriteString("\n\n### Evidence Context\n")
	b.WriteString(evidence)

	b.WriteString("\n\n### Key Insights\n")
	b.WriteString(renderEntries(bundle.Insights, domain.NoInsightsPlaceholder))

	b.WriteString("\n\n### Saved Arguments\n")
	b.WriteString(renderEntries(bundle.Arguments, domain.NoArgumentsPlaceholder))
	b.WriteString("\n")

	return b.String()
}

func renderEntries(entries []domain.Insight, placeholder string) string {
	if len(entries) == 0 {
		return placeholder
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("• (%s) %s", e.CreatedAt.UTC().Format(insightTimeFormat), e.Content)
	}
	return strings.Join(lines, "\n")
}
