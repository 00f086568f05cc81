package domain

import "time"

const unknownDescription = "Unknown"

// AIProvider identifies an AI service provider for embeddings or LLM.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance (OpenAI-compatible API).
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// ScorerKind selects the relevance scoring algorithm.
type ScorerKind string

// Available scorers.
const (
	// ScorerLexical counts query terms contained in the document.
	ScorerLexical ScorerKind = "lexical"

	// ScorerEmbedding ranks by cosine similarity of embeddings.
	// Falls back to lexical scoring when embeddings are unavailable.
	ScorerEmbedding ScorerKind = "embedding"
)

// IsValid returns true if the scorer is recognised.
func (k ScorerKind) IsValid() bool {
	return k == ScorerLexical || k == ScorerEmbedding
}

// CollectionBackend selects where collections are persisted.
type CollectionBackend string

// Available collection backends.
const (
	// CollectionBackendSQLite stores documents in the metadata database.
	CollectionBackendSQLite CollectionBackend = "sqlite"

	// CollectionBackendJSON stores one JSON file per collection.
	CollectionBackendJSON CollectionBackend = "json"
)

// IsValid returns true if the backend is recognised.
func (b CollectionBackend) IsValid() bool {
	return b == CollectionBackendSQLite || b == CollectionBackendJSON
}

// LLMSettings holds generation provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint (for Ollama or compatible servers).
	BaseURL string

	// APIKey is the generation credential.
	APIKey string

	// Temperature controls randomness.
	Temperature float64

	// TopP is the nucleus sampling cutoff.
	TopP float64
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string
}

// IsConfigured returns true if the embedding provider is set up.
// Anthropic has no embedding API.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() || e.Provider == AIProviderAnthropic {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// AssistantSettings holds prompt customisation.
type AssistantSettings struct {
	// CustomSystemPrompt is the user overlay merged after the base identity.
	CustomSystemPrompt string
}

// RetrievalSettings controls context assembly.
type RetrievalSettings struct {
	// TopN is the number of documents retrieved per role.
	TopN int

	// WindowSize is the number of recent turns included.
	WindowSize int

	// Scorer selects the relevance algorithm.
	Scorer ScorerKind
}

// GenerationSettings bounds calls to the generation backend.
type GenerationSettings struct {
	// Timeout is the maximum duration of a single generation call.
	Timeout time.Duration

	// RatePerMinute limits outbound generation calls.
	RatePerMinute int
}

// StorageSettings controls persistence backends.
type StorageSettings struct {
	// Collections selects the collection store backend.
	Collections CollectionBackend
}

// AppSettings holds all application settings.
type AppSettings struct {
	LLM        LLMSettings
	Embedding  EmbeddingSettings
	Assistant  AssistantSettings
	Retrieval  RetrievalSettings
	Generation GenerationSettings
	Storage    StorageSettings
}

// Default values.
const (
	DefaultTopN          = 3
	DefaultWindowSize    = 6
	DefaultLLMModel      = "gpt-4o-mini"
	DefaultTemperature   = 0.8
	DefaultTopP          = 0.9
	DefaultTimeout       = 60 * time.Second
	DefaultRatePerMinute = 30
)

// DefaultAppSettings returns settings with sensible defaults.
// AI features are left unconfigured; without a credential every answer
// comes from the offline fallback.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Model:       DefaultLLMModel,
			Temperature: DefaultTemperature,
			TopP:        DefaultTopP,
		},
		Embedding: EmbeddingSettings{},
		Retrieval: RetrievalSettings{
			TopN:       DefaultTopN,
			WindowSize: DefaultWindowSize,
			Scorer:     ScorerLexical,
		},
		Generation: GenerationSettings{
			Timeout:       DefaultTimeout,
			RatePerMinute: DefaultRatePerMinute,
		},
		Storage: StorageSettings{
			Collections: CollectionBackendSQLite,
		},
	}
}

// AllAIProviders returns all available AI providers.
func AllAIProviders() []AIProvider {
	return []AIProvider{AIProviderOpenAI, AIProviderOllama, AIProviderAnthropic}
}
