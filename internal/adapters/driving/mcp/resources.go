package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for LegalMind resources.
	uriScheme = "legalmind://"

	casesPrefix = uriScheme + "cases/"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "cases",
		Name:        "cases",
		Description: "All cases, newest first",
		MIMEType:    "application/json",
	}, s.handleCasesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: casesPrefix + "{caseId}/insights",
		Name:        "case-insights",
		Description: "Saved insights, arguments and todos of a case",
		MIMEType:    "application/json",
	}, s.handleInsightsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: casesPrefix + "{caseId}/history",
		Name:        "case-history",
		Description: "The dialogue of a case, oldest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

func (s *Server) handleCasesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Case == nil {
		return jsonResult(req.Params.URI, []any{})
	}

	cases, err := s.ports.Case.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}

	type caseInfo struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	infos := make([]caseInfo, len(cases))
	for i, c := range cases {
		infos[i] = caseInfo{ID: c.ID, Title: c.Title, Description: c.Description, CreatedAt: c.CreatedAt}
	}
	return jsonResult(req.Params.URI, infos)
}

func (s *Server) handleInsightsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	caseID := extractCaseID(req.Params.URI, "insights")
	if caseID == "" || s.ports.Insight == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	type entry struct {
		ID        string    `json:"id"`
		Content   string    `json:"content"`
		Tags      []string  `json:"tags,omitempty"`
		Completed bool      `json:"completed,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	out := make(map[string][]entry, 3)
	for _, category := range []domain.Category{domain.CategoryInsight, domain.CategoryArgument, domain.CategoryTodo} {
		items, err := s.ports.Insight.List(ctx, caseID, category)
		if err != nil {
			return nil, fmt.Errorf("listing %s entries: %w", category, err)
		}
		entries := make([]entry, len(items))
		for i, it := range items {
			entries[i] = entry{ID: it.ID, Content: it.Content, Tags: it.Tags, Completed: it.Completed, CreatedAt: it.CreatedAt}
		}
		out[string(category)+"s"] = entries
	}
	return jsonResult(req.Params.URI, out)
}

func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	caseID := extractCaseID(req.Params.URI, "history")
	if caseID == "" || s.ports.Dialogue == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	turns, err := s.ports.Dialogue.History(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	type turnInfo struct {
		Role      string    `json:"role"`
		Content   string    `json:"content"`
		Timestamp time.Time `json:"timestamp"`
	}

	infos := make([]turnInfo, len(turns))
	for i, t := range turns {
		infos[i] = turnInfo{Role: string(t.Role), Content: t.Content, Timestamp: t.Timestamp}
	}
	return jsonResult(req.Params.URI, infos)
}

// extractCaseID returns the case ID from legalmind://cases/{caseId}/{suffix}.
func extractCaseID(uri, suffix string) string {
	if !strings.HasPrefix(uri, casesPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(uri, casesPrefix)
	id, ok := strings.CutSuffix(rest, "/"+suffix)
	if !ok || id == "" || strings.Contains(id, "/") {
		return ""
	}
	return id
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
