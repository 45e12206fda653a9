// Package application contains the core application service logic for the block explorer.
package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"block_explorer/internal/core/domain"
	"block_explorer/internal/core/domain/client"
	"block_explorer/internal/core/domain/repository"
	"block_explorer/internal/logger"
	"block_explorer/pkg/explorer"
)

// Outcomes reported to a FetchRecorder.
const (
	FetchOutcomeApplied = "applied"
	FetchOutcomeFailed  = "failed"
	FetchOutcomeStale   = "stale"
)

// FetchRecorder receives the outcome of every transaction list fetch.
type FetchRecorder interface {
	ObserveTransactionFetch(outcome string)
	ObserveBlockState(blockNumber int64, txCount int)
}

type noopRecorder struct{}

func (noopRecorder) ObserveTransactionFetch(string) {}

func (noopRecorder) ObserveBlockState(int64, int) {}

// ExplorerServiceImpl implements the explorer.Explorer interface. It owns the
// current block number, the transaction list of that block and the selected
// transaction hash.
type ExplorerServiceImpl struct {
	blockRepo     repository.BlockStateRepository
	txRepo        repository.TransactionListRepository
	selectionRepo repository.SelectionRepository
	ethClient     client.EthereumClient
	logger        logger.AppLogger
	recorder      FetchRecorder

	// mu serializes state transitions: a block change and the application of
	// a fetch result never interleave.
	mu sync.Mutex
	// generation is bumped on every block change; a fetch result is applied
	// only if its generation is still current.
	generation *atomic.Uint64
	inflight   sync.WaitGroup

	started   bool
	runCtx    context.Context
	runCancel context.CancelFunc
}

// Compile-time check to ensure ExplorerServiceImpl implements explorer.Explorer
var _ explorer.Explorer = (*ExplorerServiceImpl)(nil)

// NewExplorerService creates a new instance of ExplorerServiceImpl. recorder may be nil.
func NewExplorerService(
	blockRepo repository.BlockStateRepository,
	txRepo repository.TransactionListRepository,
	selectionRepo repository.SelectionRepository,
	ethClient client.EthereumClient,
	appLogger logger.AppLogger,
	recorder FetchRecorder,
) (*ExplorerServiceImpl, error) {
	if appLogger == nil {
		return nil, errors.New("NewExplorerService: appLogger is nil")
	}
	if blockRepo == nil {
		appLogger.Error("NewExplorerService: blockRepo is nil")
		return nil, errors.New("NewExplorerService: blockRepo is nil")
	}
	if txRepo == nil {
		appLogger.Error("NewExplorerService: txRepo is nil")
		return nil, errors.New("NewExplorerService: txRepo is nil")
	}
	if selectionRepo == nil {
		appLogger.Error("NewExplorerService: selectionRepo is nil")
		return nil, errors.New("NewExplorerService: selectionRepo is nil")
	}
	if ethClient == nil {
		appLogger.Error("NewExplorerService: ethClient is nil")
		return nil, errors.New("NewExplorerService: ethClient is nil")
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}

	runCtx, runCancel := context.WithCancel(context.Background())

	return &ExplorerServiceImpl{
		blockRepo:     blockRepo,
		txRepo:        txRepo,
		selectionRepo: selectionRepo,
		ethClient:     ethClient,
		logger:        appLogger.With("component", "explorer"),
		recorder:      recorder,
		generation:    atomic.NewUint64(0),
		runCtx:        runCtx,
		runCancel:     runCancel,
	}, nil
}

// Start fetches the chain head in the background and makes it the current block.
// A failed fetch leaves the block number unset; there is no retry.
func (s *ExplorerServiceImpl) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		s.logger.Info("Explorer service is already started.")
		return fmt.Errorf("service already started")
	}
	s.started = true

	s.inflight.Add(1)
	go s.initialize(s.runCtx)

	s.logger.Info("Explorer service started, fetching chain head...")
	return nil
}

// Stop cancels outstanding fetches and waits for them to return or for ctx to expire.
func (s *ExplorerServiceImpl) Stop(ctx context.Context) error {
	s.logger.Info("Stopping explorer service...")
	s.runCancel()

	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Explorer service stopped gracefully.")
		return nil
	case <-ctx.Done():
		s.logger.Error("Explorer service stop timed out.", "error", ctx.Err())
		return ctx.Err()
	}
}

// Wait blocks until every fetch started so far has finished.
func (s *ExplorerServiceImpl) Wait() {
	s.inflight.Wait()
}

// PreviousBlock moves to the preceding block, floored at zero. It is a no-op
// while the block number is unset.
func (s *ExplorerServiceImpl) PreviousBlock(ctx context.Context) error {
	return s.navigate(ctx, "previous", domain.BlockNumber.Previous)
}

// NextBlock moves to the following block. It is a no-op while the block number is unset.
func (s *ExplorerServiceImpl) NextBlock(ctx context.Context) error {
	return s.navigate(ctx, "next", domain.BlockNumber.Next)
}

func (s *ExplorerServiceImpl) navigate(
	ctx context.Context,
	direction string,
	step func(domain.BlockNumber) domain.BlockNumber,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.blockRepo.GetCurrentBlock(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotInitialized) {
			s.logger.Debug("Ignoring navigation before the chain head is known", "direction", direction)
			return nil
		}
		return fmt.Errorf("failed to get current block from state: %w", err)
	}

	return s.setBlockLocked(ctx, step(current))
}

// SelectTransaction selects hash, or clears the selection when the current list is empty.
func (s *ExplorerServiceImpl) SelectTransaction(ctx context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.txRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get transactions from repository: %w", err)
	}
	if len(txs) == 0 {
		hash = ""
	}

	if err := s.selectionRepo.SetSelectedHash(ctx, hash); err != nil {
		return fmt.Errorf("failed to store selected hash: %w", err)
	}
	s.logger.Debug("Transaction selected", "hash", hash)
	return nil
}

// GetTransaction returns the transaction with the given hash from the current
// list, or the empty record.
func (s *ExplorerServiceImpl) GetTransaction(ctx context.Context, hash string) (explorer.Transaction, error) {
	tx, err := s.txRepo.FindByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return explorer.Transaction{}, nil
		}
		return explorer.Transaction{}, fmt.Errorf("failed to look up transaction: %w", err)
	}
	return mapDomainToAPITransaction(tx), nil
}

// Snapshot returns a consistent copy of the view state.
func (s *ExplorerServiceImpl) Snapshot(ctx context.Context) (explorer.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snapshot explorer.Snapshot

	current, err := s.blockRepo.GetCurrentBlock(ctx)
	switch {
	case err == nil:
		blockNumber := current.Value()
		snapshot.BlockNumber = &blockNumber
	case errors.Is(err, repository.ErrStateNotInitialized):
	default:
		return explorer.Snapshot{}, fmt.Errorf("failed to get current block from state: %w", err)
	}

	txs, err := s.txRepo.FindAll(ctx)
	if err != nil {
		return explorer.Snapshot{}, fmt.Errorf("failed to get transactions from repository: %w", err)
	}
	snapshot.Transactions = mapDomainToAPITransactions(txs)

	snapshot.SelectedHash, err = s.selectionRepo.GetSelectedHash(ctx)
	if err != nil {
		return explorer.Snapshot{}, fmt.Errorf("failed to get selected hash: %w", err)
	}

	return snapshot, nil
}

// setBlockLocked stores the new block number and starts loading its
// transactions. s.mu must be held.
func (s *ExplorerServiceImpl) setBlockLocked(ctx context.Context, blockNumber domain.BlockNumber) error {
	if err := s.blockRepo.SetCurrentBlock(ctx, blockNumber); err != nil {
		return fmt.Errorf("failed to set current block: %w", err)
	}

	gen := s.generation.Inc()
	s.logger.Info("Current block changed", "blockNumber", blockNumber.Value(), "generation", gen)

	s.inflight.Add(1)
	go s.fetchTransactions(s.runCtx, blockNumber, gen)
	return nil
}
