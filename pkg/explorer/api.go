// Package explorer defines the public API contracts for the block explorer service.
package explorer

import (
	"context"
)

// Transaction is a transaction as exposed by the API. Quantities are base-10
// integers in the smallest unit; empty strings and nil pointers mean the
// node did not provide the field. The zero value is the empty record.
type Transaction struct {
	Hash          string `json:"hash"`
	BlockNumber   *int64 `json:"blockNumber,omitempty"`
	From          string `json:"from"`
	To            string `json:"to"`
	Confirmations *int64 `json:"confirmations,omitempty"`
	Value         string `json:"value"`
	GasLimit      string `json:"gasLimit"`
	GasPrice      string `json:"gasPrice"`
	Data          string `json:"data"`
}

// Snapshot is a consistent copy of the explorer's view state.
type Snapshot struct {
	// BlockNumber is nil until the chain head has been fetched.
	BlockNumber  *int64        `json:"blockNumber"`
	Transactions []Transaction `json:"transactions"`
	// SelectedHash is empty when no transaction is selected.
	SelectedHash string `json:"selectedHash"`
}

// Explorer defines the public interface of the block explorer service.
type Explorer interface {
	// Snapshot returns the current view state.
	Snapshot(ctx context.Context) (Snapshot, error)

	// PreviousBlock moves to the preceding block (floored at zero) and reloads its transactions.
	PreviousBlock(ctx context.Context) error

	// NextBlock moves to the following block and reloads its transactions.
	NextBlock(ctx context.Context) error

	// SelectTransaction selects the transaction with the given hash.
	// The selection is cleared instead when the current list is empty.
	SelectTransaction(ctx context.Context, hash string) error

	// GetTransaction looks a hash up in the current list. A miss returns the
	// empty record and no error.
	GetTransaction(ctx context.Context, hash string) (Transaction, error)

	// Start fetches the chain head in the background.
	Start(ctx context.Context) error

	// Stop cancels outstanding fetches and waits for them to return.
	Stop(ctx context.Context) error
}
