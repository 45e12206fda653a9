// Package selection provides an in-memory implementation of the SelectionRepository interface.
package selection

import (
	"context"
	"sync"

	"block_explorer/internal/core/domain/repository"
)

// InMemorySelectionRepo stores the selected transaction hash.
type InMemorySelectionRepo struct {
	mu   sync.RWMutex
	hash string
}

// Compile-time check to ensure InMemorySelectionRepo implements repository.SelectionRepository
var _ repository.SelectionRepository = (*InMemorySelectionRepo)(nil)

// NewInMemorySelectionRepo creates a repository with no selection.
func NewInMemorySelectionRepo() *InMemorySelectionRepo {
	return &InMemorySelectionRepo{}
}

// GetSelectedHash returns the selected hash, "" when nothing is selected.
func (r *InMemorySelectionRepo) GetSelectedHash(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hash, nil
}

// SetSelectedHash replaces the selection.
func (r *InMemorySelectionRepo) SetSelectedHash(_ context.Context, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hash = hash
	return nil
}
