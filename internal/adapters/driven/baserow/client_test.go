package baserow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

func TestClient_Test(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/applications/", r.URL.Path)
		assert.Equal(t, "Token secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":7,"name":"Cases","type":"database","workspace":{"id":1,"name":"Firm"}}]`))
	}))
	defer server.Close()

	apps, err := NewClient(0).Test(context.Background(), server.URL+"/", "secret")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, 7, apps[0].ID)
	assert.Equal(t, "Cases", apps[0].Name)
	assert.Equal(t, "Firm", apps[0].Workspace.Name)
}

func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"ERROR_INVALID_TOKEN","detail":"Token is invalid"}`))
	}))
	defer server.Close()

	_, err := NewClient(0).Test(context.Background(), server.URL, "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Token is invalid")
}

func TestClient_NotBaserow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>hello</html>`))
	}))
	defer server.Close()

	_, err := NewClient(0).Test(context.Background(), server.URL, "t")
	assert.Error(t, err)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	_, err := NewClient(20*time.Millisecond).Test(context.Background(), server.URL, "t")
	assert.Error(t, err)
}

func TestClient_MissingInput(t *testing.T) {
	_, err := NewClient(0).Test(context.Background(), "", "t")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
