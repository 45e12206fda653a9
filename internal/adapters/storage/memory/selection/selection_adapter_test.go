package selection_test

import (
	"context"
	"testing"

	"block_explorer/internal/adapters/storage/memory/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySelectionRepo_GetSet(t *testing.T) {
	repo := selection.NewInMemorySelectionRepo()
	ctx := context.Background()

	got, err := repo.GetSelectedHash(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	const hash = "0x1111111111111111111111111111111111111111111111111111111111111111"
	require.NoError(t, repo.SetSelectedHash(ctx, hash))

	got, err = repo.GetSelectedHash(ctx)
	require.NoError(t, err)
	assert.Equal(t, hash, got)

	require.NoError(t, repo.SetSelectedHash(ctx, ""))
	got, err = repo.GetSelectedHash(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
