// Package ai provides factory functions for creating AI service adapters.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openaiembed "github.com/custodia-labs/legalmind/internal/adapters/driven/embedding/openai"
	anthropicllm "github.com/custodia-labs/legalmind/internal/adapters/driven/llm/anthropic"
	openaillm "github.com/custodia-labs/legalmind/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
	"github.com/custodia-labs/legalmind/internal/logger"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// InitResult contains the result of AI service initialisation.
// Either service may be nil; callers degrade to the offline fallback and
// lexical ranking.
type InitResult struct {
	EmbeddingService driven.EmbeddingService
	LLMService       driven.LLMService
	Warnings         []string // Non-fatal issues that left a service unset.
}

// Close releases all resources held by InitResult.
func (r *InitResult) Close() {
	if r.EmbeddingService != nil {
		r.EmbeddingService.Close()
	}
	if r.LLMService != nil {
		r.LLMService.Close()
	}
}

// Init creates the configured AI services without contacting them.
// Construction failures become warnings rather than errors.
func Init(settings *domain.AppSettings) *InitResult {
	result := &InitResult{}
	if settings == nil {
		return result
	}

	if llm, err := CreateLLMService(&settings.LLM); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%v: %v", domain.ErrLLMUnavailable, err))
	} else {
		result.LLMService = llm
	}

	if emb, err := CreateEmbeddingService(&settings.Embedding); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%v: %v", domain.ErrEmbeddingUnavailable, err))
	} else {
		result.EmbeddingService = emb
	}

	for _, w := range result.Warnings {
		logger.Warn("%s", w)
	}
	return result
}

// ValidateEmbeddingConfig creates an embedding service and pings it.
// Used by the settings commands to check credentials when they are saved.
func ValidateEmbeddingConfig(settings *domain.EmbeddingSettings) error {
	svc, err := CreateEmbeddingService(settings)
	if err != nil || svc == nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, err)
	}
	return nil
}

// ValidateLLMConfig creates an LLM service and pings it.
// Used by the settings commands to check credentials when they are saved.
func ValidateLLMConfig(settings *domain.LLMSettings) error {
	svc, err := CreateLLMService(settings)
	if err != nil || svc == nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, err)
	}
	return nil
}

// CreateEmbeddingService creates the appropriate embedding service based on settings.
// Returns nil if the provider is not configured.
func CreateEmbeddingService(settings *domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.AIProviderOllama:
		return openaiembed.NewEmbeddingService(openaiembed.Config{
			BaseURL: ollamaBaseURL(settings.BaseURL),
			Model:   settings.Model,
		})

	case domain.AIProviderOpenAI:
		return openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:        settings.APIKey,
			BaseURL:       settings.BaseURL,
			Model:         settings.Model,
			RequireAPIKey: true,
		})

	default:
		return nil, fmt.Errorf("%w: embedding provider %s", domain.ErrUnsupportedType, settings.Provider)
	}
}

// CreateLLMService creates the appropriate LLM service based on settings.
// Returns nil if the provider is not configured.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.AIProviderOllama:
		return openaillm.NewLLMService(openaillm.LLMConfig{
			BaseURL: ollamaBaseURL(settings.BaseURL),
			Model:   settings.Model,
		})

	case domain.AIProviderOpenAI:
		return openaillm.NewLLMService(openaillm.LLMConfig{
			APIKey:        settings.APIKey,
			BaseURL:       settings.BaseURL,
			Model:         settings.Model,
			RequireAPIKey: true,
		})

	case domain.AIProviderAnthropic:
		return anthropicllm.NewLLMService(anthropicllm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	default:
		return nil, fmt.Errorf("%w: LLM provider %s", domain.ErrUnsupportedType, settings.Provider)
	}
}

// ollamaBaseURL returns the OpenAI-compatible endpoint of an Ollama server.
func ollamaBaseURL(baseURL string) string {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(baseURL, "/v1") {
		baseURL += "/v1"
	}
	return baseURL
}
