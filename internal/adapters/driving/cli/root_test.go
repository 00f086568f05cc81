package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{
		"case", "evidence", "search", "ask", "chat", "history",
		"insight", "settings", "mcp", "baserow", "version",
	} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestResolveCaseID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	ctx := context.Background()

	id, err := resolveCaseID(ctx, "explicit")
	require.NoError(t, err)
	assert.Equal(t, "explicit", id)

	id, err = resolveCaseID(ctx, "")
	require.NoError(t, err)
	c, err := caseService.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCaseTitle, c.Title)

	again, err := resolveCaseID(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, id, again, "the sample case is seeded once")
}

func TestResolveCaseID_NoService(t *testing.T) {
	SetServices(&Services{})

	_, err := resolveCaseID(context.Background(), "")
	assert.EqualError(t, err, "case service not configured")
}

func TestParseRoles(t *testing.T) {
	roles, err := parseRoles("")
	require.NoError(t, err)
	assert.Equal(t, domain.AllRoles(), roles)

	roles, err = parseRoles("opposition")
	require.NoError(t, err)
	assert.Equal(t, []domain.Role{domain.RoleOpposition}, roles)

	_, err = parseRoles("witness")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 10))
	assert.Equal(t, "abc...", preview("abcdef", 3))
	assert.Equal(t, "§§...", preview("§§§§", 2))
}
