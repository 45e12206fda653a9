package repository

import (
	"context"
	"errors"

	"block_explorer/internal/core/domain"
)

// ErrTransactionNotFound indicates that no transaction in the current list has the requested hash.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionListRepository holds the transaction list of the current block.
type TransactionListRepository interface {
	// Replace swaps the whole list. The order of txs is preserved.
	Replace(ctx context.Context, txs []domain.Transaction) error

	// FindAll returns a copy of the current list.
	FindAll(ctx context.Context) ([]domain.Transaction, error)

	// FindByHash returns the first transaction whose hash matches, or ErrTransactionNotFound.
	FindByHash(ctx context.Context, hash string) (domain.Transaction, error)
}
