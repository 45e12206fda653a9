// Package rpc implements an Ethereum client using JSON-RPC communication with an Ethereum node.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"block_explorer/internal/core/domain"
	"block_explorer/internal/core/domain/client"
	"block_explorer/internal/logger"
)

const (
	methodBlockNumber      = "eth_blockNumber"
	methodGetBlockByNumber = "eth_getBlockByNumber"
)

// CallRecorder receives the duration and result of every JSON-RPC call.
type CallRecorder interface {
	ObserveRPCCall(method string, d time.Duration, err error)
}

type noopCallRecorder struct{}

func (noopCallRecorder) ObserveRPCCall(string, time.Duration, error) {}

// EthereumNodeAdapter implements the client.EthereumClient interface by making JSON-RPC calls to an Ethereum node.
type EthereumNodeAdapter struct {
	client   *gethrpc.Client
	logger   logger.AppLogger
	recorder CallRecorder
}

// Compile-time check to ensure EthereumNodeAdapter implements client.EthereumClient
var _ client.EthereumClient = (*EthereumNodeAdapter)(nil)

// NewEthereumNodeAdapter creates a new RPC adapter talking to rpcURL over
// httpClient. httpClient and recorder may be nil.
func NewEthereumNodeAdapter(
	ctx context.Context,
	rpcURL string,
	httpClient *http.Client,
	appLogger logger.AppLogger,
	recorder CallRecorder,
) (*EthereumNodeAdapter, error) {
	if appLogger == nil {
		return nil, errors.New("NewEthereumNodeAdapter: appLogger is nil")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if recorder == nil {
		recorder = noopCallRecorder{}
	}

	rpcClient, err := gethrpc.DialOptions(ctx, rpcURL, gethrpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create RPC client: %w", err)
	}

	return &EthereumNodeAdapter{
		client:   rpcClient,
		logger:   appLogger.With("component", "rpc"),
		recorder: recorder,
	}, nil
}

// Close releases the underlying RPC client.
func (a *EthereumNodeAdapter) Close() {
	a.client.Close()
}

// GetLatestBlockNumber fetches the number of the most recent block.
func (a *EthereumNodeAdapter) GetLatestBlockNumber(ctx context.Context) (domain.BlockNumber, error) {
	var head hexutil.Uint64
	if err := a.call(ctx, &head, methodBlockNumber); err != nil {
		return domain.BlockNumber{}, fmt.Errorf("RPC call %s failed: %w", methodBlockNumber, err)
	}
	return blockNumberFromUint64(uint64(head))
}

// GetBlockWithTransactions fetches a block by its number including full
// transactions. Confirmations are derived from a second eth_blockNumber call;
// if that call fails the transactions carry no confirmation count.
func (a *EthereumNodeAdapter) GetBlockWithTransactions(
	ctx context.Context,
	blockNumber domain.BlockNumber,
) (*domain.Block, error) {
	blockNumberHex := hexutil.EncodeUint64(uint64(blockNumber.Value()))

	var rpcBlock *Block
	if err := a.call(ctx, &rpcBlock, methodGetBlockByNumber, blockNumberHex, true); err != nil {
		return nil, fmt.Errorf("RPC call %s(%s) failed: %w", methodGetBlockByNumber, blockNumberHex, err)
	}
	if rpcBlock == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrBlockNotFound, blockNumber.Value())
	}

	block, err := mapRPCBlockToDomain(rpcBlock, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to map block %d: %w", blockNumber.Value(), err)
	}

	head, err := a.GetLatestBlockNumber(ctx)
	if err != nil {
		a.logger.Warn("Failed to fetch chain head for confirmations",
			"blockNumber", blockNumber.Value(),
			"error", err,
		)
		return block, nil
	}

	confirmations := confirmationsAt(head, block.Number)
	for i := range block.Transactions {
		c := confirmations
		block.Transactions[i].Confirmations = &c
	}
	return block, nil
}

func (a *EthereumNodeAdapter) call(ctx context.Context, result any, method string, args ...any) error {
	start := time.Now()
	err := a.client.CallContext(ctx, result, method, args...)
	a.recorder.ObserveRPCCall(method, time.Since(start), err)
	if err != nil {
		a.logger.Debug("RPC call failed", "method", method, "error", err)
	}
	return err
}

// confirmationsAt counts the blocks from block to head inclusive; a block
// above head has none.
func confirmationsAt(head, block domain.BlockNumber) int64 {
	diff := head.Value() - block.Value()
	if diff < 0 {
		return 0
	}
	if diff == math.MaxInt64 {
		return diff
	}
	return diff + 1
}
