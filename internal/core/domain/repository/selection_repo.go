package repository

import "context"

// SelectionRepository holds the selected transaction hash. An empty hash means no selection.
type SelectionRepository interface {
	GetSelectedHash(ctx context.Context) (string, error)
	SetSelectedHash(ctx context.Context, hash string) error
}
