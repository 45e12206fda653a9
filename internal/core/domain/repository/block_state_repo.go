// Package repository defines interfaces for the explorer's view state storage.
package repository

import (
	"context"
	"errors"

	"block_explorer/internal/core/domain"
)

// ErrStateNotInitialized indicates that no current block number has been set yet.
var ErrStateNotInitialized = errors.New("block state not initialized")

// BlockStateRepository holds the block number the explorer is currently showing.
type BlockStateRepository interface {
	// GetCurrentBlock returns the current block number or ErrStateNotInitialized.
	GetCurrentBlock(ctx context.Context) (domain.BlockNumber, error)

	// SetCurrentBlock replaces the current block number.
	SetCurrentBlock(ctx context.Context, blockNumber domain.BlockNumber) error
}
