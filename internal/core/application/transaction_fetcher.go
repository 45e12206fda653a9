package application

import (
	"context"
	"errors"

	"block_explorer/internal/core/domain"
)

// initialize fetches the chain head and makes it the current block.
func (s *ExplorerServiceImpl) initialize(ctx context.Context) {
	defer s.inflight.Done()

	head, err := s.ethClient.GetLatestBlockNumber(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.logger.Info("Context cancelled while fetching chain head.", "error", err)
			return
		}
		s.logger.Warn("Failed to fetch chain head, block number stays unset", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setBlockLocked(ctx, head); err != nil {
		s.logger.Error("Failed to store chain head", "blockNumber", head.Value(), "error", err)
	}
}

// fetchTransactions loads the transactions of blockNumber and replaces the
// current list with them, or with an empty list on any failure. Results of a
// superseded generation are dropped.
func (s *ExplorerServiceImpl) fetchTransactions(ctx context.Context, blockNumber domain.BlockNumber, gen uint64) {
	defer s.inflight.Done()

	logger := s.logger.With("blockNumber", blockNumber.Value(), "generation", gen)
	logger.Debug("Fetching block transactions")

	txs := []domain.Transaction{}
	outcome := FetchOutcomeApplied

	block, err := s.ethClient.GetBlockWithTransactions(ctx, blockNumber)
	switch {
	case err != nil:
		logger.Warn("Failed to get block with transactions, clearing list", "error", err)
		outcome = FetchOutcomeFailed
	case block == nil:
		logger.Warn("Received nil block, clearing list")
		outcome = FetchOutcomeFailed
	default:
		txs = block.Transactions
	}

	if s.generation.Load() != gen {
		logger.Debug("Discarding stale transaction fetch")
		s.recorder.ObserveTransactionFetch(FetchOutcomeStale)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the lock: a block change may have happened while we waited.
	if s.generation.Load() != gen {
		logger.Debug("Discarding stale transaction fetch")
		s.recorder.ObserveTransactionFetch(FetchOutcomeStale)
		return
	}

	if err := s.txRepo.Replace(context.WithoutCancel(ctx), txs); err != nil {
		logger.Error("Failed to store transaction list", "error", err)
		return
	}

	s.recorder.ObserveTransactionFetch(outcome)
	s.recorder.ObserveBlockState(blockNumber.Value(), len(txs))
	if outcome == FetchOutcomeApplied {
		logger.Info("Transaction list updated", "txCount", len(txs))
	}
}
