package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

func TestCaseCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range caseCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "create", "show"}, names)
}

func TestCaseList_SeedsSampleCase(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "case", "list")
	require.NoError(t, err)

	assert.Contains(t, out, domain.DefaultCaseTitle)
	assert.Contains(t, out, domain.DefaultCaseDescription)
	assert.Contains(t, out, "Total: 1 cases")
}

func TestCaseCreate(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "case", "create", "Smith v Jones", "--description", "Tenancy dispute")
	require.NoError(t, err)
	assert.Contains(t, out, "Created case Smith v Jones")

	cases, err := stores.cases.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "Tenancy dispute", cases[0].Description)
}

func TestCaseShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	id := defaultCaseID(t)

	out, err := execute(t, "case", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Case: "+id)
	assert.Contains(t, out, "Evidence:    0 files")
}

func TestCaseShow_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "case", "show", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCaseCmd_ServiceNotConfigured(t *testing.T) {
	SetServices(&Services{})

	_, err := execute(t, "case", "list")
	assert.EqualError(t, err, "case service not configured")
}
