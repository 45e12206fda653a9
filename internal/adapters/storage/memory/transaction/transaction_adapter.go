// Package transaction provides an in-memory implementation of the TransactionListRepository interface.
package transaction

import (
	"context"
	"fmt"
	"sync"

	"block_explorer/internal/core/domain"
	"block_explorer/internal/core/domain/repository"
)

// InMemoryTransactionListRepo keeps the current block's transactions in a slice.
type InMemoryTransactionListRepo struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
}

// Compile-time check to ensure InMemoryTransactionListRepo implements repository.TransactionListRepository
var _ repository.TransactionListRepository = (*InMemoryTransactionListRepo)(nil)

// NewInMemoryTransactionListRepo creates an empty list repository.
func NewInMemoryTransactionListRepo() *InMemoryTransactionListRepo {
	return &InMemoryTransactionListRepo{
		transactions: []domain.Transaction{},
	}
}

// Replace swaps the stored list for a copy of txs.
func (r *InMemoryTransactionListRepo) Replace(_ context.Context, txs []domain.Transaction) error {
	txCopy := make([]domain.Transaction, len(txs))
	copy(txCopy, txs)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = txCopy
	return nil
}

// FindAll returns a copy of the stored list.
func (r *InMemoryTransactionListRepo) FindAll(_ context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txCopy := make([]domain.Transaction, len(r.transactions))
	copy(txCopy, r.transactions)

	return txCopy, nil
}

// FindByHash returns the first stored transaction whose hash matches.
func (r *InMemoryTransactionListRepo) FindByHash(_ context.Context, hash string) (domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, tx := range r.transactions {
		if tx.Hash.Matches(hash) {
			return tx, nil
		}
	}
	return domain.Transaction{}, fmt.Errorf("%w: %s", repository.ErrTransactionNotFound, hash)
}
