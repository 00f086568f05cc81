// Command legalmind is a legal reasoning assistant that answers questions
// about a case from its plaintiff and opposition evidence.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/legalmind/internal/adapters/driven/ai"
	"github.com/custodia-labs/legalmind/internal/adapters/driven/config/file"
	"github.com/custodia-labs/legalmind/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/legalmind/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/legalmind/internal/adapters/driving/cli"
	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driven"
	"github.com/custodia-labs/legalmind/internal/core/services"
	"github.com/custodia-labs/legalmind/internal/extractors"
	"github.com/custodia-labs/legalmind/internal/logger"
)

// Set by the release build.
var version = "dev"

func main() {
	os.Exit(run())
}

// run wires the adapters and executes the CLI. Command errors are already
// printed by cobra; setup errors are printed here.
func run() int {
	defer logger.Sync()
	defer func() {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
	}()

	if err := wire(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	if err := cli.Execute(version); err != nil {
		return 1
	}
	return 0
}

// cleanup holds the closers registered by wire.
var cleanup []func()

func wire() error {
	// A missing .env is normal.
	_ = godotenv.Load()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	cleanup = append(cleanup, func() { _ = store.Close() })

	collections := store.CollectionStore()
	if settings.Storage.Collections == domain.CollectionBackendJSON {
		jsonStore, err := jsonfile.NewCollectionStore("")
		if err != nil {
			return fmt.Errorf("open collections: %w", err)
		}
		collections = jsonStore
	}

	blobs, err := jsonfile.NewBlobStore("")
	if err != nil {
		return fmt.Errorf("open upload directory: %w", err)
	}

	providers := ai.Init(settings)
	cleanup = append(cleanup, providers.Close)
	for _, w := range providers.Warnings {
		logger.Warn("%s", w)
	}

	var prompts driven.PromptStore
	if ps, err := file.NewPromptStore(""); err != nil {
		logger.Warn("Prompt directory unavailable, using built-in prompts: %v", err)
	} else {
		prompts = ps
	}

	ranker := services.NewRanker(collections, providers.EmbeddingService)
	ranker.SetScorer(settings.Retrieval.Scorer)

	var generator *services.Generator
	if providers.LLMService != nil {
		generator = services.NewGenerator(providers.LLMService, settings.Generation)
	}

	assembler := services.NewAssembler(ranker, store.InsightStore(), store.TurnStore(), prompts)

	ingest := services.NewIngestService(store.EvidenceStore(), collections, blobs,
		extractors.NewDefaultRegistry(), providers.EmbeddingService)

	cli.SetServices(&cli.Services{
		Case:      services.NewCaseService(store.CaseStore()),
		Ingest:    ingest,
		Dialogue:  services.NewDialogueService(store.TurnStore(), store.InsightStore(), assembler, generator, *settings),
		Insight:   services.NewInsightService(store.InsightStore()),
		Retrieval: ranker,
		Settings:  settingsService,
	})
	return nil
}
