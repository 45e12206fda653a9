package transaction_test

import (
	"context"
	"testing"

	"block_explorer/internal/adapters/storage/memory/transaction"
	"block_explorer/internal/core/domain"
	"block_explorer/internal/core/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTx(t *testing.T, hash string) domain.Transaction {
	t.Helper()
	txHash, err := domain.NewTransactionHash(hash)
	require.NoError(t, err)
	return domain.Transaction{Hash: txHash}
}

func TestInMemoryTransactionListRepo_ReplaceFindAll(t *testing.T) {
	repo := transaction.NewInMemoryTransactionListRepo()
	ctx := context.Background()

	initial, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, initial)
	assert.Empty(t, initial)

	tx1 := newTx(t, "0x1111111111111111111111111111111111111111111111111111111111111111")
	tx2 := newTx(t, "0x2222222222222222222222222222222222222222222222222222222222222222")
	tx3 := newTx(t, "0x3333333333333333333333333333333333333333333333333333333333333333")

	input := []domain.Transaction{tx2, tx1}
	require.NoError(t, repo.Replace(ctx, input))
	input[0] = tx3

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Transaction{tx2, tx1}, got, "order is preserved and the input slice is copied")

	got[0] = tx3
	again, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, tx2, again[0], "returned slice is a copy")

	require.NoError(t, repo.Replace(ctx, nil))
	empty, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestInMemoryTransactionListRepo_FindByHash(t *testing.T) {
	repo := transaction.NewInMemoryTransactionListRepo()
	ctx := context.Background()

	tx1 := newTx(t, "0x1111111111111111111111111111111111111111111111111111111111111111")
	require.NoError(t, repo.Replace(ctx, []domain.Transaction{tx1}))

	got, err := repo.FindByHash(ctx, tx1.Hash.String())
	require.NoError(t, err)
	assert.Equal(t, tx1, got)

	_, err = repo.FindByHash(ctx, "0x2222222222222222222222222222222222222222222222222222222222222222")
	assert.ErrorIs(t, err, repository.ErrTransactionNotFound)

	_, err = repo.FindByHash(ctx, "")
	assert.ErrorIs(t, err, repository.ErrTransactionNotFound)
}
