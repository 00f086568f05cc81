// Package baserow checks connectivity to a Baserow workspace.
package baserow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// DefaultTimeout bounds a connectivity check.
const DefaultTimeout = 5 * time.Second

// Application is one Baserow database or application visible to the token.
type Application struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Workspace struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"workspace"`
}

// Client talks to the Baserow REST API.
type Client struct {
	client *http.Client
}

// NewClient creates a client. A zero timeout uses DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{client: &http.Client{Timeout: timeout}}
}

// Test lists the applications the token can see. Any failure means the
// URL or token is unusable.
func (c *Client) Test(ctx context.Context, baseURL, token string) ([]Application, error) {
	if baseURL == "" || token == "" {
		return nil, fmt.Errorf("%w: baserow url and token are required", domain.ErrInvalidInput)
	}

	endpoint := strings.TrimRight(baseURL, "/") + "/api/applications/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("baserow: create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("baserow: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("baserow: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Detail != "" {
			return nil, fmt.Errorf("baserow: status %d: %s", resp.StatusCode, apiErr.Detail)
		}
		return nil, fmt.Errorf("baserow: status %d", resp.StatusCode)
	}

	var apps []Application
	if err := json.Unmarshal(body, &apps); err != nil {
		return nil, errors.New("baserow: unexpected response, is the URL a Baserow server?")
	}
	return apps, nil
}
