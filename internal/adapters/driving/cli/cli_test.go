package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/services"
	"github.com/custodia-labs/legalmind/internal/extractors"
)

// testStores exposes the stores behind the test services.
type testStores struct {
	cases    *memory.CaseStore
	insights *memory.InsightStore
	config   *memory.ConfigStore
}

var stores *testStores

// setupTestServices wires the real services over in-memory stores with no
// AI providers, so every answer comes from the offline fallback.
func setupTestServices() func() {
	caseStore := memory.NewCaseStore()
	turnStore := memory.NewTurnStore()
	insightStore := memory.NewInsightStore()
	evidenceStore := memory.NewEvidenceStore()
	collectionStore := memory.NewCollectionStore()
	configStore := memory.NewConfigStore()

	ranker := services.NewRanker(collectionStore, nil)
	assembler := services.NewAssembler(ranker, insightStore, turnStore, nil)

	SetServices(&Services{
		Case:      services.NewCaseService(caseStore),
		Ingest:    services.NewIngestService(evidenceStore, collectionStore, memory.NewBlobStore(), extractors.NewDefaultRegistry(), nil),
		Dialogue:  services.NewDialogueService(turnStore, insightStore, assembler, nil, domain.DefaultAppSettings()),
		Insight:   services.NewInsightService(insightStore),
		Retrieval: ranker,
		Settings:  services.NewSettingsService(configStore),
	})
	stores = &testStores{cases: caseStore, insights: insightStore, config: configStore}

	return func() {
		SetServices(&Services{})
		stores = nil
		resetFlags()
	}
}

// resetFlags restores flag variables that persist between executions.
func resetFlags() {
	caseDescription = ""
	evidenceCase, evidenceRole = "", string(domain.RolePlaintiff)
	searchCase, searchRole, searchLimit, searchJSON = "", "", domain.DefaultTopN, false
	askCase, historyCase, chatCase = "", "", ""
	insightCase, listCategory, addCategory, insightUndo = "", "", string(domain.CategoryInsight), false
	insightTags = nil
	llmFlags, embeddingFlags = providerFlags{}, providerFlags{}
	baserowURL, baserowToken = "", ""
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

// executeWithInput runs the root command reading stdin from input.
func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// defaultCaseID seeds and returns the sample case.
func defaultCaseID(t *testing.T) string {
	t.Helper()
	c, err := caseService.EnsureDefault(context.Background())
	require.NoError(t, err)
	return c.ID
}

// writeFile creates a file in a temporary directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
