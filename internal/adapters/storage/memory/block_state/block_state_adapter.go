// Package block_state provides an in-memory implementation of the BlockStateRepository interface.
package block_state

import (
	"context"
	"sync"

	"block_explorer/internal/core/domain"
	"block_explorer/internal/core/domain/repository"
)

// InMemoryBlockStateRepo is an in-memory implementation of BlockStateRepository.
type InMemoryBlockStateRepo struct {
	mu           sync.RWMutex
	currentBlock *domain.BlockNumber
}

// Compile-time check to ensure InMemoryBlockStateRepo implements repository.BlockStateRepository
var _ repository.BlockStateRepository = (*InMemoryBlockStateRepo)(nil)

// NewInMemoryBlockStateRepo creates a new InMemoryBlockStateRepo with no block set.
func NewInMemoryBlockStateRepo() *InMemoryBlockStateRepo {
	return &InMemoryBlockStateRepo{}
}

// GetCurrentBlock retrieves the current block number.
func (r *InMemoryBlockStateRepo) GetCurrentBlock(_ context.Context) (domain.BlockNumber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.currentBlock == nil {
		return domain.BlockNumber{}, repository.ErrStateNotInitialized
	}
	return *r.currentBlock, nil
}

// SetCurrentBlock stores the current block number.
func (r *InMemoryBlockStateRepo) SetCurrentBlock(_ context.Context, blockNumber domain.BlockNumber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bnCopy := blockNumber
	r.currentBlock = &bnCopy
	return nil
}
