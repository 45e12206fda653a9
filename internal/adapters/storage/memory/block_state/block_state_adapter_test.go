package block_state_test

import (
	"context"
	"testing"

	"block_explorer/internal/adapters/storage/memory/block_state"
	"block_explorer/internal/core/domain"
	"block_explorer/internal/core/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryBlockStateRepo_GetSetCurrentBlock(t *testing.T) {
	repo := block_state.NewInMemoryBlockStateRepo()
	ctx := context.Background()

	_, err := repo.GetCurrentBlock(ctx)
	require.Error(t, err, "GetCurrentBlock() should fail before any block is set")
	assert.ErrorIs(t, err, repository.ErrStateNotInitialized)

	block1, err := domain.NewBlockNumber(18000000)
	require.NoError(t, err)
	require.NoError(t, repo.SetCurrentBlock(ctx, block1))

	got, err := repo.GetCurrentBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, block1, got)

	require.NoError(t, repo.SetCurrentBlock(ctx, block1.Previous()))

	got, err = repo.GetCurrentBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(17999999), got.Value())
}
