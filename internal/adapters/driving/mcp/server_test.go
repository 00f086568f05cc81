package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("missing dialogue service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Retrieval: &mockRetrievalService{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDialogueService)
	})

	t.Run("missing retrieval service returns error", func(t *testing.T) {
		_, err := NewServer(&Ports{Dialogue: &mockDialogueService{}})
		assert.ErrorIs(t, err, ErrMissingRetrievalService)
	})

	t.Run("required ports create server", func(t *testing.T) {
		server, err := NewServer(&Ports{Dialogue: &mockDialogueService{}, Retrieval: &mockRetrievalService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	_, ports := newTestServer()
	assert.NoError(t, ports.Validate())

	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingDialogueService)
}
