package cli

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

var savedID = regexp.MustCompile(`Saved \w+ (\S+)`)

func addEntry(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, append([]string{"insight", "add"}, args...)...)
	require.NoError(t, err)
	m := savedID.FindStringSubmatch(out)
	require.Len(t, m, 2, out)
	return m[1]
}

func TestInsight_AddAndList(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	id := defaultCaseID(t)

	addEntry(t, "Landlord never served notice", "--case", id, "--tag", "notice")
	addEntry(t, "Notice period was too short", "--case", id, "--category", "argument")

	out, err := execute(t, "insight", "list", "--case", id)
	require.NoError(t, err)
	assert.Contains(t, out, "[insight]")
	assert.Contains(t, out, "Landlord never served notice")
	assert.Contains(t, out, "Tags: [notice]")
	assert.Contains(t, out, "[argument]")

	out, err = execute(t, "insight", "list", "--case", id, "--category", "argument")
	require.NoError(t, err)
	assert.NotContains(t, out, "Landlord never served notice")
	assert.Contains(t, out, "Notice period was too short")
}

func TestInsight_TodoDoneAndRemove(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	caseID := defaultCaseID(t)

	id := addEntry(t, "File the response", "--case", caseID, "--category", "todo")

	out, err := execute(t, "insight", "list", "--case", caseID, "--category", "todo")
	require.NoError(t, err)
	assert.Contains(t, out, "[ ] File the response")

	out, err = execute(t, "insight", "done", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Completed "+id)

	out, err = execute(t, "insight", "list", "--case", caseID, "--category", "todo")
	require.NoError(t, err)
	assert.Contains(t, out, "[x] File the response")

	out, err = execute(t, "insight", "done", id, "--undo")
	require.NoError(t, err)
	assert.Contains(t, out, "Reopened "+id)

	out, err = execute(t, "insight", "remove", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed "+id)

	out, err = execute(t, "insight", "list", "--case", caseID)
	require.NoError(t, err)
	assert.Contains(t, out, "No saved entries.")
}

func TestInsight_Errors(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "insight", "list", "--category", "memo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "insight", "done", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInsight_ServiceNotConfigured(t *testing.T) {
	SetServices(&Services{})

	_, err := execute(t, "insight", "list")
	assert.EqualError(t, err, "insight service not configured")
}
