package services

import (
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider       = "llm.provider"
	keyLLMModel          = "llm.model"
	keyLLMBaseURL        = "llm.base_url"
	keyLLMAPIKey         = "llm.api_key"
	keyLLMTemperature    = "llm.temperature"
	keyLLMTopP           = "llm.top_p"
	keyEmbedProvider     = "embedding.provider"
	keyEmbedModel        = "embedding.model"
	keyEmbedBaseURL      = "embedding.base_url"
	keyEmbedAPIKey       = "embedding.api_key"
	keyOverlay           = "assistant.custom_system_prompt"
	keyTopN              = "retrieval.top_n"
	keyWindowSize        = "retrieval.window_size"
	keyScorer            = "retrieval.scorer"
	keyGenTimeoutSeconds = "generation.timeout_seconds"
	keyGenRatePerMinute  = "generation.rate_per_minute"
	keyCollections       = "storage.collections"
)

// Environment variables consulted when no API key is configured.
//
//nolint:gosec // G101: environment variable names, not credentials.
var envAPIKeys = map[domain.AIProvider]string{
	domain.AIProviderOpenAI:    "OPENAI_API_KEY",
	domain.AIProviderAnthropic: "ANTHROPIC_API_KEY",
}

// defaultLocalBaseURL is used for local providers without a configured URL.
const defaultLocalBaseURL = "http://localhost:11434/v1"

// Default models per provider.
var defaultLLMModels = map[domain.AIProvider]string{
	domain.AIProviderOpenAI:    domain.DefaultLLMModel,
	domain.AIProviderOllama:    "llama3.2",
	domain.AIProviderAnthropic: "claude-3-5-haiku-latest",
}

var defaultEmbeddingModels = map[domain.AIProvider]string{
	domain.AIProviderOpenAI: "text-embedding-3-small",
	domain.AIProviderOllama: "nomic-embed-text",
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider:    s.getProvider(keyLLMProvider, defaults.LLM.Provider),
			Model:       s.getString(keyLLMModel, defaults.LLM.Model),
			BaseURL:     s.configStore.GetString(keyLLMBaseURL), // empty is valid for cloud providers
			APIKey:      s.configStore.GetString(keyLLMAPIKey),
			Temperature: s.getFloat(keyLLMTemperature, defaults.LLM.Temperature),
			TopP:        s.getFloat(keyLLMTopP, defaults.LLM.TopP),
		},
		Embedding: domain.EmbeddingSettings{
			Provider: s.getProvider(keyEmbedProvider, defaults.Embedding.Provider),
			Model:    s.getString(keyEmbedModel, defaults.Embedding.Model),
			BaseURL:  s.configStore.GetString(keyEmbedBaseURL),
			APIKey:   s.configStore.GetString(keyEmbedAPIKey),
		},
		Assistant: domain.AssistantSettings{
			CustomSystemPrompt: s.configStore.GetString(keyOverlay),
		},
		Retrieval: domain.RetrievalSettings{
			TopN:       s.getInt(keyTopN, defaults.Retrieval.TopN),
			WindowSize: s.getInt(keyWindowSize, defaults.Retrieval.WindowSize),
			Scorer:     s.getScorer(defaults.Retrieval.Scorer),
		},
		Generation: domain.GenerationSettings{
			Timeout: time.Duration(s.getInt(keyGenTimeoutSeconds,
				int(defaults.Generation.Timeout/time.Second))) * time.Second,
			RatePerMinute: s.getInt(keyGenRatePerMinute, defaults.Generation.RatePerMinute),
		},
		Storage: domain.StorageSettings{
			Collections: s.getCollections(defaults.Storage.Collections),
		},
	}

	// Credentials from the environment fill gaps, never override config.
	if settings.LLM.APIKey == "" {
		settings.LLM.APIKey = s.envKey(settings.LLM.Provider)
	}
	if settings.Embedding.APIKey == "" {
		settings.Embedding.APIKey = s.envKey(settings.Embedding.Provider)
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyLLMProvider, settings.LLM.Provider.String()},
		{keyLLMModel, settings.LLM.Model},
		{keyLLMBaseURL, settings.LLM.BaseURL},
		{keyLLMTemperature, settings.LLM.Temperature},
		{keyLLMTopP, settings.LLM.TopP},
		{keyEmbedProvider, settings.Embedding.Provider.String()},
		{keyEmbedModel, settings.Embedding.Model},
		{keyEmbedBaseURL, settings.Embedding.BaseURL},
		{keyOverlay, settings.Assistant.CustomSystemPrompt},
		{keyTopN, settings.Retrieval.TopN},
		{keyWindowSize, settings.Retrieval.WindowSize},
		{keyScorer, string(settings.Retrieval.Scorer)},
		{keyGenTimeoutSeconds, int(settings.Generation.Timeout / time.Second)},
		{keyGenRatePerMinute, settings.Generation.RatePerMinute},
		{keyCollections, string(settings.Storage.Collections)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	// API keys are only written when present so that an environment
	// credential is never copied into the config file by accident.
	if settings.LLM.APIKey != "" && settings.LLM.APIKey != s.envKey(settings.LLM.Provider) {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}
	if settings.Embedding.APIKey != "" && settings.Embedding.APIKey != s.envKey(settings.Embedding.Provider) {
		if err := s.configStore.Set(keyEmbedAPIKey, settings.Embedding.APIKey); err != nil {
			return fmt.Errorf("save embedding api_key: %w", err)
		}
	}

	return nil
}

// SetLLMProvider configures the generation provider.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey, baseURL string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: invalid LLM provider: %s", domain.ErrInvalidInput, provider)
	}
	if provider.RequiresAPIKey() && apiKey == "" && s.envKey(provider) == "" {
		return fmt.Errorf("%w: API key required for %s", domain.ErrInvalidInput, provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider
	settings.LLM.Model = model
	if model == "" {
		settings.LLM.Model = defaultLLMModels[provider]
	}
	settings.LLM.BaseURL = resolveBaseURL(provider, baseURL)
	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// SetEmbeddingProvider configures the embedding provider.
func (s *SettingsService) SetEmbeddingProvider(provider domain.AIProvider, model, apiKey, baseURL string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: invalid embedding provider: %s", domain.ErrInvalidInput, provider)
	}
	if _, ok := defaultEmbeddingModels[provider]; !ok {
		return fmt.Errorf("%w: provider %s does not support embeddings", domain.ErrUnsupportedType, provider)
	}
	if provider.RequiresAPIKey() && apiKey == "" && s.envKey(provider) == "" {
		return fmt.Errorf("%w: API key required for %s", domain.ErrInvalidInput, provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Embedding.Provider = provider
	settings.Embedding.Model = model
	if model == "" {
		settings.Embedding.Model = defaultEmbeddingModels[provider]
	}
	settings.Embedding.BaseURL = resolveBaseURL(provider, baseURL)
	settings.Embedding.APIKey = apiKey

	return s.Save(settings)
}

// SetOverlay stores the user's custom system instruction.
// An empty string removes the overlay.
func (s *SettingsService) SetOverlay(text string) error {
	if err := s.configStore.Set(keyOverlay, text); err != nil {
		return fmt.Errorf("save overlay: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func resolveBaseURL(provider domain.AIProvider, baseURL string) string {
	if baseURL != "" {
		return baseURL
	}
	if provider.IsLocal() {
		return defaultLocalBaseURL
	}
	return ""
}

func (s *SettingsService) envKey(provider domain.AIProvider) string {
	name, ok := envAPIKeys[provider]
	if !ok || s.lookupEnv == nil {
		return ""
	}
	val, _ := s.lookupEnv(name)
	return val
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getProvider(key string, defaultVal domain.AIProvider) domain.AIProvider {
	provider := domain.AIProvider(s.configStore.GetString(key))
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

func (s *SettingsService) getScorer(defaultVal domain.ScorerKind) domain.ScorerKind {
	kind := domain.ScorerKind(s.configStore.GetString(keyScorer))
	if !kind.IsValid() {
		return defaultVal
	}
	return kind
}

func (s *SettingsService) getCollections(defaultVal domain.CollectionBackend) domain.CollectionBackend {
	backend := domain.CollectionBackend(s.configStore.GetString(keyCollections))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
