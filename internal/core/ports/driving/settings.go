package driving

import "github.com/custodia-labs/legalmind/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLLMProvider configures the generation provider.
	SetLLMProvider(provider domain.AIProvider, model, apiKey, baseURL string) error

	// SetEmbeddingProvider configures the embedding provider.
	SetEmbeddingProvider(provider domain.AIProvider, model, apiKey, baseURL string) error

	// SetOverlay stores the user's custom system instruction.
	SetOverlay(text string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
