package mcp

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
)

// defaultSearchLimit matches the number of documents retrieved per role
// when answering a question.
const defaultSearchLimit = domain.DefaultTopN

// AskInput is the input schema for the ask tool.
type AskInput struct {
	CaseID  string `json:"case_id" jsonschema:"the case to ask about"`
	Message string `json:"message" jsonschema:"the question or instruction; 'save that' stores the previous answer"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	TurnID       string `json:"turn_id"`
	Response     string `json:"response"`
	Directive    string `json:"directive"`
	UsedFallback bool   `json:"used_fallback"`
}

// SearchEvidenceInput is the input schema for the search_evidence tool.
type SearchEvidenceInput struct {
	CaseID string `json:"case_id" jsonschema:"the case whose evidence is searched"`
	Query  string `json:"query" jsonschema:"the search query"`
	Role   string `json:"role,omitempty" jsonschema:"plaintiff or opposition; both when empty"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum results per role (default 3)"`
}

// SearchEvidenceOutput is the output schema for the search_evidence tool.
type SearchEvidenceOutput struct {
	Results []EvidenceResult `json:"results"`
	Count   int              `json:"count"`
}

// EvidenceResult represents one ranked evidence document.
type EvidenceResult struct {
	DocumentID string  `json:"document_id"`
	Role       string  `json:"role"`
	Filename   string  `json:"filename,omitempty"`
	Score      float64 `json:"score"`
	Distance   float64 `json:"distance"`
	Content    string  `json:"content"`
}

// IngestEvidenceInput is the input schema for the ingest_evidence tool.
type IngestEvidenceInput struct {
	CaseID        string `json:"case_id" jsonschema:"the owning case"`
	Role          string `json:"role" jsonschema:"plaintiff or opposition"`
	Filename      string `json:"filename" jsonschema:"the file name, used to detect the format"`
	Content       string `json:"content,omitempty" jsonschema:"the text content"`
	ContentBase64 string `json:"content_base64,omitempty" jsonschema:"binary content, base64 encoded; overrides content"`
}

// IngestEvidenceOutput is the output schema for the ingest_evidence tool.
type IngestEvidenceOutput struct {
	EvidenceID string `json:"evidence_id"`
	DocumentID string `json:"document_id"`
	Duplicate  bool   `json:"duplicate"`
}

// SaveInsightInput is the input schema for the save_insight tool.
type SaveInsightInput struct {
	CaseID   string   `json:"case_id" jsonschema:"the owning case"`
	Content  string   `json:"content" jsonschema:"the insight text"`
	Category string   `json:"category,omitempty" jsonschema:"insight, argument or todo (default insight)"`
	Tags     []string `json:"tags,omitempty" jsonschema:"optional tags"`
}

// SaveInsightOutput is the output schema for the save_insight tool.
type SaveInsightOutput struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask LegalMind a question about a case, grounded in its evidence and saved insights",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_evidence",
		Description: "Rank a case's evidence against a query",
	}, s.handleSearchEvidence)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ingest_evidence",
		Description: "Add a document to a case's plaintiff or opposition evidence",
	}, s.handleIngestEvidence)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_insight",
		Description: "Save an insight, argument or todo to a case",
	}, s.handleSaveInsight)
}

func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	if s.ports.Dialogue == nil {
		return nil, AskOutput{}, fmt.Errorf("%w: dialogue", ErrServiceUnavailable)
	}

	reply, err := s.ports.Dialogue.HandleMessage(ctx, input.CaseID, input.Message)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{
		TurnID:       reply.TurnID,
		Response:     reply.Response,
		Directive:    reply.Directive.String(),
		UsedFallback: reply.UsedFallback,
	}, nil
}

func (s *Server) handleSearchEvidence(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchEvidenceInput,
) (*mcp.CallToolResult, SearchEvidenceOutput, error) {
	if s.ports.Retrieval == nil {
		return nil, SearchEvidenceOutput{}, fmt.Errorf("%w: retrieval", ErrServiceUnavailable)
	}
	if input.CaseID == "" {
		return nil, SearchEvidenceOutput{}, fmt.Errorf("%w: case_id is required", domain.ErrInvalidInput)
	}

	roles := domain.AllRoles()
	if input.Role != "" {
		role, err := domain.ParseRole(input.Role)
		if err != nil {
			return nil, SearchEvidenceOutput{}, err
		}
		roles = []domain.Role{role}
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	output := SearchEvidenceOutput{Results: []EvidenceResult{}}
	for _, role := range roles {
		ranked, err := s.ports.Retrieval.Rank(ctx, domain.CollectionKey(role, input.CaseID), input.Query, limit)
		if err != nil {
			return nil, SearchEvidenceOutput{}, fmt.Errorf("search %s evidence: %w", role, err)
		}
		for _, r := range ranked {
			filename, _ := r.Document.Metadata[domain.MetaFilename].(string)
			output.Results = append(output.Results, EvidenceResult{
				DocumentID: r.Document.ID,
				Role:       role.String(),
				Filename:   filename,
				Score:      r.Score,
				Distance:   r.Distance,
				Content:    r.Document.Content,
			})
		}
	}
	output.Count = len(output.Results)

	return nil, output, nil
}

func (s *Server) handleIngestEvidence(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IngestEvidenceInput,
) (*mcp.CallToolResult, IngestEvidenceOutput, error) {
	if s.ports.Ingest == nil {
		return nil, IngestEvidenceOutput{}, fmt.Errorf("%w: ingest", ErrServiceUnavailable)
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, IngestEvidenceOutput{}, err
	}

	content := []byte(input.Content)
	if input.ContentBase64 != "" {
		content, err = base64.StdEncoding.DecodeString(input.ContentBase64)
		if err != nil {
			return nil, IngestEvidenceOutput{}, fmt.Errorf("%w: content_base64: %v", domain.ErrInvalidInput, err)
		}
	}

	result, err := s.ports.Ingest.Ingest(ctx, driving.IngestRequest{
		CaseID:   input.CaseID,
		Role:     role,
		Filename: input.Filename,
		Content:  content,
	})
	if err != nil {
		return nil, IngestEvidenceOutput{}, err
	}

	return nil, IngestEvidenceOutput{
		EvidenceID: result.EvidenceID,
		DocumentID: result.DocumentID,
		Duplicate:  result.Duplicate,
	}, nil
}

func (s *Server) handleSaveInsight(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveInsightInput,
) (*mcp.CallToolResult, SaveInsightOutput, error) {
	if s.ports.Insight == nil {
		return nil, SaveInsightOutput{}, fmt.Errorf("%w: insight", ErrServiceUnavailable)
	}

	category := domain.CategoryInsight
	if input.Category != "" {
		parsed, err := domain.ParseCategory(input.Category)
		if err != nil {
			return nil, SaveInsightOutput{}, err
		}
		category = parsed
	}

	saved, err := s.ports.Insight.Create(ctx, input.CaseID, input.Content, category, input.Tags)
	if err != nil {
		return nil, SaveInsightOutput{}, err
	}

	return nil, SaveInsightOutput{ID: saved.ID, Category: string(saved.Category)}, nil
}
