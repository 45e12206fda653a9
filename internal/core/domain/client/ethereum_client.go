// Package client defines interfaces for external service clients, such as an Ethereum node client.
//
//go:generate mockery --name=EthereumClient --output=../../../core/application/mocks/mock_client --outpkg=mock_client
package client

import (
	"context"

	"block_explorer/internal/core/domain"
)

// EthereumClient defines the node operations the explorer depends on.
type EthereumClient interface {
	// GetLatestBlockNumber fetches the number of the most recent block in the blockchain.
	GetLatestBlockNumber(ctx context.Context) (domain.BlockNumber, error)

	// GetBlockWithTransactions fetches a block by its number, including all transaction details.
	// It returns an error wrapping domain.ErrBlockNotFound when the node has no such block.
	GetBlockWithTransactions(ctx context.Context, blockNumber domain.BlockNumber) (*domain.Block, error)
}
