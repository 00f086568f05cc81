package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long key",
			input:    "sk-1234567890abcdef",
			expected: "sk-1...cdef",
		},
		{
			name:     "Very long key",
			input:    "sk-proj-1234567890abcdefghijklmnop",
			expected: "sk-p...mnop",
		},
		{
			name:     "Empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskAPIKey(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{
			name:       "Empty input returns default",
			input:      "",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Valid choice within range",
			input:      "3",
			maxVal:     5,
			defaultVal: 1,
			expected:   3,
		},
		{
			name:       "Choice below minimum returns default",
			input:      "0",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Choice above maximum returns default",
			input:      "6",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Invalid input returns default",
			input:      "abc",
			maxVal:     5,
			defaultVal: 2,
			expected:   2,
		},
		{
			name:       "Negative number returns default",
			input:      "-1",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Whitespace returns default",
			input:      "   ",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Maximum value is valid",
			input:      "5",
			maxVal:     5,
			defaultVal: 1,
			expected:   5,
		},
		{
			name:       "Minimum value is valid",
			input:      "1",
			maxVal:     5,
			defaultVal: 3,
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseChoice(tt.input, tt.maxVal, tt.defaultVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSettingsShow_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings")
	require.NoError(t, err)
	for _, section := range []string{"[LLM]", "[Embedding]", "[Retrieval]", "[Generation]", "[Storage]", "[Assistant]"} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, "Documents per role: 3")
	assert.Contains(t, out, "Custom instruction: (none)")
}

func TestSettingsOverlay(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "overlay", "Answer in plain English.")
	require.NoError(t, err)
	assert.Contains(t, out, "Custom instruction saved.")

	out, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Custom instruction: Answer in plain English.")

	out, err = execute(t, "settings", "overlay", "  ")
	require.NoError(t, err)
	assert.Contains(t, out, "Custom instruction cleared.")
}

func TestSettingsLLM_NoValidate(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "llm",
		"--provider", "openai", "--model", "gpt-4o-mini", "--api-key", "sk-test-1234567890", "--no-validate")
	require.NoError(t, err)
	assert.Contains(t, out, "LLM provider configured: OpenAI (cloud) (gpt-4o-mini)")
	assert.NotContains(t, out, "Validating")

	out, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Model: gpt-4o-mini")
	assert.NotContains(t, out, "sk-test-1234567890")
}

func TestSettingsLLM_ValidationFailure(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	original := validateLLM
	defer func() { validateLLM = original }()
	validateLLM = func(*domain.LLMSettings) error { return errors.New("connection refused") }

	out, err := execute(t, "settings", "llm", "--provider", "ollama", "--model", "llama3")
	require.Error(t, err)
	assert.Contains(t, out, "FAILED: connection refused")
	assert.Contains(t, err.Error(), "LLM configuration validation failed")
}

func TestSettingsLLM_PromptsForProvider(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	original := validateLLM
	defer func() { validateLLM = original }()
	validateLLM = func(*domain.LLMSettings) error { return nil }

	out, err := executeWithInput(t, "2\n", "settings", "llm", "--model", "llama3")
	require.NoError(t, err)
	assert.Contains(t, out, "Select Provider")
	assert.Contains(t, out, "LLM provider configured: Ollama (local) (llama3)")
	assert.Contains(t, out, "Validating configuration... OK")
}

func TestSettingsLLM_UnknownProvider(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "llm", "--provider", "watson")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsEmbedding(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	original := validateEmbedding
	defer func() { validateEmbedding = original }()
	var checked *domain.EmbeddingSettings
	validateEmbedding = func(s *domain.EmbeddingSettings) error {
		checked = s
		return nil
	}

	out, err := execute(t, "settings", "embedding", "--provider", "ollama", "--model", "nomic-embed-text")
	require.NoError(t, err)
	assert.Contains(t, out, "Embedding provider configured: Ollama (local) (nomic-embed-text)")
	require.NotNil(t, checked)
	assert.Equal(t, domain.AIProviderOllama, checked.Provider)
}

func TestSettingsEmbedding_UnsupportedProvider(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "embedding", "--provider", "anthropic", "--api-key", "k", "--no-validate")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestSettings_ServiceNotConfigured(t *testing.T) {
	SetServices(&Services{})

	_, err := execute(t, "settings", "show")
	assert.EqualError(t, err, "settings service not configured")
}
