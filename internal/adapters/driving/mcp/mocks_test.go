package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
)

type mockDialogueService struct {
	reply    *driving.Reply
	turns    []domain.Turn
	err      error
	lastCase string
	lastMsg  string
}

func (m *mockDialogueService) HandleMessage(_ context.Context, caseID, message string) (*driving.Reply, error) {
	m.lastCase, m.lastMsg = caseID, message
	if m.err != nil {
		return nil, m.err
	}
	return m.reply, nil
}

func (m *mockDialogueService) History(_ context.Context, _ string) ([]domain.Turn, error) {
	return m.turns, m.err
}

type mockRetrievalService struct {
	byKey map[string][]domain.RankedDocument
	err   error
	keys  []string
	topN  int
}

func (m *mockRetrievalService) Rank(_ context.Context, key, _ string, topN int) ([]domain.RankedDocument, error) {
	m.keys = append(m.keys, key)
	m.topN = topN
	if m.err != nil {
		return nil, m.err
	}
	return m.byKey[key], nil
}

type mockIngestService struct {
	result  *driving.IngestResult
	err     error
	lastReq driving.IngestRequest
}

func (m *mockIngestService) Ingest(_ context.Context, req driving.IngestRequest) (*driving.IngestResult, error) {
	m.lastReq = req
	return m.result, m.err
}

func (m *mockIngestService) List(_ context.Context, _ string) ([]domain.Evidence, error) {
	return nil, nil
}

func (m *mockIngestService) Remove(_ context.Context, _ string) error {
	return nil
}

type mockInsightService struct {
	items map[domain.Category][]domain.Insight
	err   error
}

func (m *mockInsightService) Create(
	_ context.Context, caseID, content string, category domain.Category, tags []string,
) (*domain.Insight, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Insight{ID: "ins-1", CaseID: caseID, Content: content, Category: category, Tags: tags}, nil
}

func (m *mockInsightService) List(_ context.Context, _ string, category domain.Category) ([]domain.Insight, error) {
	return m.items[category], m.err
}

func (m *mockInsightService) SetCompleted(_ context.Context, _ string, _ bool) error { return nil }

func (m *mockInsightService) Delete(_ context.Context, _ string) error { return nil }

type mockCaseService struct {
	cases []domain.Case
	err   error
}

func (m *mockCaseService) Create(_ context.Context, title, description string) (*domain.Case, error) {
	return &domain.Case{ID: "new", Title: title, Description: description}, nil
}

func (m *mockCaseService) Get(_ context.Context, id string) (*domain.Case, error) {
	for i := range m.cases {
		if m.cases[i].ID == id {
			return &m.cases[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCaseService) List(_ context.Context) ([]domain.Case, error) {
	return m.cases, m.err
}

func (m *mockCaseService) EnsureDefault(_ context.Context) (*domain.Case, error) {
	return &domain.Case{ID: "c1", Title: domain.DefaultCaseTitle, CreatedAt: time.Now()}, nil
}

// newTestServer builds a server over fresh mocks.
func newTestServer() (*Server, *Ports) {
	ports := &Ports{
		Dialogue:  &mockDialogueService{},
		Retrieval: &mockRetrievalService{},
		Ingest:    &mockIngestService{},
		Insight:   &mockInsightService{},
		Case:      &mockCaseService{},
	}
	s, err := NewServer(ports)
	if err != nil {
		panic(err)
	}
	return s, ports
}
