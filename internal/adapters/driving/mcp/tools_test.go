package mcp

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
)

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the persisted reply", func(t *testing.T) {
		server, ports := newTestServer()
		dialogue := ports.Dialogue.(*mockDialogueService)
		dialogue.reply = &driving.Reply{TurnID: "t9", Response: "Answer", Directive: domain.DirectiveNormal, UsedFallback: true}

		_, out, err := server.handleAsk(ctx, nil, AskInput{CaseID: "c1", Message: "Is it valid?"})
		require.NoError(t, err)

		assert.Equal(t, "t9", out.TurnID)
		assert.Equal(t, "Answer", out.Response)
		assert.Equal(t, "normal", out.Directive)
		assert.True(t, out.UsedFallback)
		assert.Equal(t, "c1", dialogue.lastCase)
		assert.Equal(t, "Is it valid?", dialogue.lastMsg)
	})

	t.Run("reports commit directive", func(t *testing.T) {
		server, ports := newTestServer()
		ports.Dialogue.(*mockDialogueService).reply = &driving.Reply{Response: domain.CommitAcknowledgement, Directive: domain.DirectiveCommit}

		_, out, err := server.handleAsk(ctx, nil, AskInput{CaseID: "c1", Message: "save that"})
		require.NoError(t, err)
		assert.Equal(t, "commit", out.Directive)
	})

	t.Run("propagates errors", func(t *testing.T) {
		server, ports := newTestServer()
		ports.Dialogue.(*mockDialogueService).err = errors.New("db down")

		_, _, err := server.handleAsk(ctx, nil, AskInput{CaseID: "c1", Message: "x"})
		assert.Error(t, err)
	})

	t.Run("unavailable without dialogue service", func(t *testing.T) {
		server, ports := newTestServer()
		ports.Dialogue = nil

		_, _, err := server.handleAsk(ctx, nil, AskInput{CaseID: "c1", Message: "x"})
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})
}

func TestServer_handleSearchEvidence(t *testing.T) {
	ctx := context.Background()

	t.Run("searches both roles in order", func(t *testing.T) {
		server, ports := newTestServer()
		retrieval := ports.Retrieval.(*mockRetrievalService)
		retrieval.byKey = map[string][]domain.RankedDocument{
			"plaintiff_c1": {{
				Document: domain.Document{ID: "d1", Content: "lease", Metadata: map[string]any{domain.MetaFilename: "lease.txt"}},
				Score:    1, Distance: 0,
			}},
			"opposition_c1": {{Document: domain.Document{ID: "d2", Content: "notice"}, Score: 0, Distance: 1}},
		}

		_, out, err := server.handleSearchEvidence(ctx, nil, SearchEvidenceInput{CaseID: "c1", Query: "lease"})
		require.NoError(t, err)

		assert.Equal(t, []string{"plaintiff_c1", "opposition_c1"}, retrieval.keys)
		assert.Equal(t, defaultSearchLimit, retrieval.topN)
		require.Equal(t, 2, out.Count)
		assert.Equal(t, "d1", out.Results[0].DocumentID)
		assert.Equal(t, "plaintiff", out.Results[0].Role)
		assert.Equal(t, "lease.txt", out.Results[0].Filename)
		assert.Equal(t, "opposition", out.Results[1].Role)
	})

	t.Run("single role and limit", func(t *testing.T) {
		server, ports := newTestServer()
		retrieval := ports.Retrieval.(*mockRetrievalService)

		_, out, err := server.handleSearchEvidence(ctx, nil, SearchEvidenceInput{CaseID: "c1", Query: "q", Role: "opposition", Limit: 7})
		require.NoError(t, err)
		assert.Equal(t, []string{"opposition_c1"}, retrieval.keys)
		assert.Equal(t, 7, retrieval.topN)
		assert.Equal(t, 0, out.Count)
		assert.NotNil(t, out.Results)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		server, _ := newTestServer()

		_, _, err := server.handleSearchEvidence(ctx, nil, SearchEvidenceInput{Query: "q"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, _, err = server.handleSearchEvidence(ctx, nil, SearchEvidenceInput{CaseID: "c1", Role: "judge"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unavailable without retrieval service", func(t *testing.T) {
		server, ports := newTestServer()
		ports.Retrieval = nil

		_, _, err := server.handleSearchEvidence(ctx, nil, SearchEvidenceInput{CaseID: "c1", Query: "q"})
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})
}

func TestServer_handleIngestEvidence(t *testing.T) {
	ctx := context.Background()

	t.Run("text content", func(t *testing.T) {
		server, ports := newTestServer()
		ingest := ports.Ingest.(*mockIngestService)
		ingest.result = &driving.IngestResult{EvidenceID: "e1", DocumentID: "d1"}

		_, out, err := server.handleIngestEvidence(ctx, nil, IngestEvidenceInput{
			CaseID: "c1", Role: "plaintiff", Filename: "note.txt", Content: "hello",
		})
		require.NoError(t, err)

		assert.Equal(t, "e1", out.EvidenceID)
		assert.False(t, out.Duplicate)
		assert.Equal(t, domain.RolePlaintiff, ingest.lastReq.Role)
		assert.Equal(t, []byte("hello"), ingest.lastReq.Content)
	})

	t.Run("base64 content wins", func(t *testing.T) {
		server, ports := newTestServer()
		ingest := ports.Ingest.(*mockIngestService)
		ingest.result = &driving.IngestResult{EvidenceID: "e1", Duplicate: true}

		_, out, err := server.handleIngestEvidence(ctx, nil, IngestEvidenceInput{
			CaseID: "c1", Role: "opposition", Filename: "a.bin",
			Content: "ignored", ContentBase64: base64.StdEncoding.EncodeToString([]byte{1, 2, 3}),
		})
		require.NoError(t, err)
		assert.True(t, out.Duplicate)
		assert.Equal(t, []byte{1, 2, 3}, ingest.lastReq.Content)
	})

	t.Run("invalid input", func(t *testing.T) {
		server, _ := newTestServer()

		_, _, err := server.handleIngestEvidence(ctx, nil, IngestEvidenceInput{CaseID: "c1", Role: "witness"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, _, err = server.handleIngestEvidence(ctx, nil, IngestEvidenceInput{CaseID: "c1", Role: "plaintiff", ContentBase64: "!!"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unavailable without ingest service", func(t *testing.T) {
		server, err := NewServer(&Ports{Dialogue: &mockDialogueService{}, Retrieval: &mockRetrievalService{}})
		require.NoError(t, err)

		_, _, err = server.handleIngestEvidence(ctx, nil, IngestEvidenceInput{CaseID: "c1", Role: "plaintiff"})
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})
}

func TestServer_handleSaveInsight(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer()

	_, out, err := server.handleSaveInsight(ctx, nil, SaveInsightInput{CaseID: "c1", Content: "Notice was late"})
	require.NoError(t, err)
	assert.Equal(t, "ins-1", out.ID)
	assert.Equal(t, "insight", out.Category)

	_, out, err = server.handleSaveInsight(ctx, nil, SaveInsightInput{CaseID: "c1", Content: "x", Category: "argument"})
	require.NoError(t, err)
	assert.Equal(t, "argument", out.Category)

	_, _, err = server.handleSaveInsight(ctx, nil, SaveInsightInput{CaseID: "c1", Content: "x", Category: "memo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
