package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legalmind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/legalmind/internal/core/domain"
)

func TestInsightService_CreateAndList(t *testing.T) {
	service := NewInsightService(memory.NewInsightStore())
	ctx := context.Background()

	in, err := service.Create(ctx, "c", "Notice period was 30 days", domain.CategoryArgument, []string{" notice ", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"notice"}, in.Tags)

	args, err := service.List(ctx, "c", domain.CategoryArgument)
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, in.ID, args[0].ID)

	insights, err := service.List(ctx, "c", domain.CategoryInsight)
	require.NoError(t, err)
	assert.Empty(t, insights)
}

func TestInsightService_Validation(t *testing.T) {
	service := NewInsightService(memory.NewInsightStore())
	ctx := context.Background()

	_, err := service.Create(ctx, "", "x", domain.CategoryInsight, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Create(ctx, "c", "  ", domain.CategoryInsight, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Create(ctx, "c", "x", domain.Category("memo"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.List(ctx, "c", domain.Category("memo"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInsightService_CompleteAndDelete(t *testing.T) {
	service := NewInsightService(memory.NewInsightStore())
	ctx := context.Background()

	todo, err := service.Create(ctx, "c", "File motion", domain.CategoryTodo, nil)
	require.NoError(t, err)

	require.NoError(t, service.SetCompleted(ctx, todo.ID, true))
	todos, _ := service.List(ctx, "c", domain.CategoryTodo)
	assert.True(t, todos[0].Completed)

	require.NoError(t, service.Delete(ctx, todo.ID))
	todos, _ = service.List(ctx, "c", domain.CategoryTodo)
	assert.Empty(t, todos)
}
