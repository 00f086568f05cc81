package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

func TestEvidenceCmd_Flags(t *testing.T) {
	role := evidenceAddCmd.Flags().Lookup("role")
	require.NotNil(t, role)
	assert.Equal(t, "plaintiff", role.DefValue)
	assert.NotNil(t, evidenceWatchCmd.Flags().Lookup("role"))
	assert.NotNil(t, evidenceListCmd.Flags().Lookup("case"))
	assert.Nil(t, evidenceRemoveCmd.Flags().Lookup("case"))
}

func TestEvidenceAdd_ListAndRemove(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	id := defaultCaseID(t)
	path := writeFile(t, "lease.txt", "The lease ends in March.")

	out, err := execute(t, "evidence", "add", path, "--case", id, "--role", "opposition")
	require.NoError(t, err)
	assert.Contains(t, out, "Added lease.txt as opposition evidence")

	out, err = execute(t, "evidence", "add", path, "--case", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Already ingested: lease.txt")

	out, err = execute(t, "evidence", "list", "--case", id)
	require.NoError(t, err)
	assert.Contains(t, out, "lease.txt")
	assert.Contains(t, out, "Role:     opposition")
	assert.Contains(t, out, "Total: 1 files")

	evidence, err := ingestService.List(t.Context(), id)
	require.NoError(t, err)
	require.Len(t, evidence, 1)

	out, err = execute(t, "evidence", "remove", evidence[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed evidence")

	out, err = execute(t, "evidence", "list", "--case", id)
	require.NoError(t, err)
	assert.Contains(t, out, "No evidence for case")
}

func TestEvidenceAdd_Errors(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "evidence", "add", writeFile(t, "a.txt", "x"), "--role", "judge")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "evidence", "add", "/does/not/exist.txt", "--role", "plaintiff")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")

	_, err = execute(t, "evidence", "add", writeFile(t, "empty.txt", ""), "--role", "plaintiff")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "evidence", "remove", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEvidenceCmd_ServiceNotConfigured(t *testing.T) {
	SetServices(&Services{})

	_, err := execute(t, "evidence", "list")
	assert.EqualError(t, err, "ingest service not configured")
}
