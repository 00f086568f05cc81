package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/legalmind/internal/core/domain"
)

func TestCaseService_Create(t *testing.T) {
	service := NewCaseService(memory.NewCaseStore())

	c, err := service.Create(context.Background(), "  Smith v. Jones ", "tenancy dispute")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Smith v. Jones", c.Title)

	got, err := service.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Title, got.Title)

	_, err = service.Create(context.Background(), " ", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCaseService_EnsureDefault(t *testing.T) {
	service := NewCaseService(memory.NewCaseStore())
	ctx := context.Background()

	seeded, err := service.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCaseTitle, seeded.Title)
	assert.Equal(t, domain.DefaultCaseDescription, seeded.Description)

	again, err := service.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, again.ID)

	cases, _ := service.List(ctx)
	assert.Len(t, cases, 1)
}
