package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/legalmind/internal/adapters/driven/ai"
	"github.com/custodia-labs/legalmind/internal/core/domain"
)

// Provider checks, replaceable in tests.
var (
	validateLLM       = ai.ValidateLLMConfig
	validateEmbedding = ai.ValidateEmbeddingConfig
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the AI providers and the assistant's custom instruction.

Without a configured LLM provider every answer comes from the offline
fallback, which quotes the most relevant evidence.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "Configure LLM provider",
	Long: `Configure the provider that generates answers.

Run without --provider to choose interactively. API keys may also come
from OPENAI_API_KEY or ANTHROPIC_API_KEY.`,
	RunE: runSettingsLLM,
}

var settingsEmbeddingCmd = &cobra.Command{
	Use:   "embedding",
	Short: "Configure embedding provider",
	Long:  `Configure the embedding provider used by the "embedding" retrieval scorer.`,
	RunE:  runSettingsEmbedding,
}

var settingsOverlayCmd = &cobra.Command{
	Use:   "overlay [text]",
	Short: "Set the custom system instruction",
	Long: `Sets an instruction appended to the assistant's identity for every answer.
Pass an empty string to clear it.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsOverlay,
}

// providerFlags are shared by the llm and embedding subcommands.
type providerFlags struct {
	provider   string
	model      string
	apiKey     string
	baseURL    string
	noValidate bool
}

var (
	llmFlags       providerFlags
	embeddingFlags providerFlags
)

func (f *providerFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.provider, "provider", "", "provider: openai, ollama or anthropic")
	c.Flags().StringVar(&f.model, "model", "", "model name (default: provider default)")
	c.Flags().StringVar(&f.apiKey, "api-key", "", "API key (prompted when required)")
	c.Flags().StringVar(&f.baseURL, "base-url", "", "API endpoint override")
	c.Flags().BoolVar(&f.noValidate, "no-validate", false, "skip the connectivity check")
}

func init() {
	llmFlags.register(settingsLLMCmd)
	embeddingFlags.register(settingsEmbeddingCmd)

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	settingsCmd.AddCommand(settingsEmbeddingCmd)
	settingsCmd.AddCommand(settingsOverlayCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[LLM]")
	printProvider(cmd, settings.LLM.Provider, settings.LLM.Model, settings.LLM.BaseURL, settings.LLM.APIKey)
	cmd.Printf("  Temperature: %.2f\n", settings.LLM.Temperature)
	cmd.Printf("  Top P: %.2f\n", settings.LLM.TopP)
	printStatus(cmd, settings.LLM.IsConfigured())
	cmd.Println()

	cmd.Println("[Embedding]")
	printProvider(cmd, settings.Embedding.Provider, settings.Embedding.Model, settings.Embedding.BaseURL, settings.Embedding.APIKey)
	printStatus(cmd, settings.Embedding.IsConfigured())
	cmd.Println()

	cmd.Println("[Retrieval]")
	cmd.Printf("  Scorer: %s\n", settings.Retrieval.Scorer)
	cmd.Printf("  Documents per role: %d\n", settings.Retrieval.TopN)
	cmd.Printf("  Conversation window: %d\n", settings.Retrieval.WindowSize)
	cmd.Println()

	cmd.Println("[Generation]")
	cmd.Printf("  Timeout: %s\n", settings.Generation.Timeout)
	cmd.Printf("  Rate limit: %d/min\n", settings.Generation.RatePerMinute)
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Collections: %s\n", settings.Storage.Collections)
	cmd.Println()

	cmd.Println("[Assistant]")
	if settings.Assistant.CustomSystemPrompt != "" {
		cmd.Printf("  Custom instruction: %s\n", settings.Assistant.CustomSystemPrompt)
	} else {
		cmd.Println("  Custom instruction: (none)")
	}

	return nil
}

func printProvider(cmd *cobra.Command, provider domain.AIProvider, model, baseURL, apiKey string) {
	if provider == "" {
		cmd.Println("  Provider: (not set)")
		return
	}
	cmd.Printf("  Provider: %s\n", provider.Description())
	cmd.Printf("  Model: %s\n", model)
	if baseURL != "" {
		cmd.Printf("  Base URL: %s\n", baseURL)
	}
	if provider.RequiresAPIKey() {
		if apiKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(apiKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
}

func printStatus(cmd *cobra.Command, configured bool) {
	status := "configured"
	if !configured {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
}

func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	provider, err := chooseProvider(cmd, reader, llmFlags.provider, domain.AllAIProviders())
	if err != nil {
		return err
	}

	apiKey := llmFlags.apiKey
	if apiKey == "" && provider.RequiresAPIKey() && llmFlags.provider == "" {
		cmd.Print("Enter API key (empty to use environment): ")
		apiKey = readPassword(cmd.InOrStdin(), reader)
		cmd.Println()
	}

	if err := settingsService.SetLLMProvider(provider, llmFlags.model, apiKey, llmFlags.baseURL); err != nil {
		return fmt.Errorf("failed to configure LLM provider: %w", err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !llmFlags.noValidate {
		cmd.Print("Validating configuration... ")
		if err := validateLLM(&settings.LLM); err != nil {
			cmd.Printf("FAILED: %v\n", err)
			return fmt.Errorf("LLM configuration validation failed: %w", err)
		}
		cmd.Println("OK")
	}

	cmd.Printf("LLM provider configured: %s (%s)\n", provider.Description(), settings.LLM.Model)
	return nil
}

func runSettingsEmbedding(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	provider, err := chooseProvider(cmd, reader, embeddingFlags.provider,
		[]domain.AIProvider{domain.AIProviderOpenAI, domain.AIProviderOllama})
	if err != nil {
		return err
	}

	apiKey := embeddingFlags.apiKey
	if apiKey == "" && provider.RequiresAPIKey() && embeddingFlags.provider == "" {
		cmd.Print("Enter API key (empty to use environment): ")
		apiKey = readPassword(cmd.InOrStdin(), reader)
		cmd.Println()
	}

	if err := settingsService.SetEmbeddingProvider(provider, embeddingFlags.model, apiKey, embeddingFlags.baseURL); err != nil {
		return fmt.Errorf("failed to configure embedding provider: %w", err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !embeddingFlags.noValidate {
		cmd.Print("Validating configuration... ")
		if err := validateEmbedding(&settings.Embedding); err != nil {
			cmd.Printf("FAILED: %v\n", err)
			return fmt.Errorf("embedding configuration validation failed: %w", err)
		}
		cmd.Println("OK")
	}

	cmd.Printf("Embedding provider configured: %s (%s)\n", provider.Description(), settings.Embedding.Model)
	return nil
}

func runSettingsOverlay(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	text := strings.TrimSpace(args[0])
	if err := settingsService.SetOverlay(text); err != nil {
		return fmt.Errorf("failed to save custom instruction: %w", err)
	}

	if text == "" {
		cmd.Println("Custom instruction cleared.")
	} else {
		cmd.Println("Custom instruction saved.")
	}
	return nil
}

// chooseProvider parses value, or prompts for a choice when it is empty.
func chooseProvider(
	cmd *cobra.Command,
	reader *bufio.Reader,
	value string,
	providers []domain.AIProvider,
) (domain.AIProvider, error) {
	if value != "" {
		p := domain.AIProvider(value)
		if !p.IsValid() {
			return "", fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidInput, value)
		}
		return p, nil
	}

	cmd.Println("Select Provider")
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	idx := parseChoice(readLine(reader), len(providers), 1)
	return providers[idx-1], nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads without echo when in is a terminal.
func readPassword(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
