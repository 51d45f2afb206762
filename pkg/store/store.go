// Package store declares a contract for saving ensemble runs.
package store

import (
	"context"

	"github.com/gnames/gncamtrap/pkg/prediction"
	"github.com/gnames/gncamtrap/pkg/schema"
)

// Store saves prediction records of ensemble runs.
type Store interface {
	// Save stores a run and its prediction records.
	Save(ctx context.Context, run schema.Run, preds []prediction.Prediction) error

	// Close releases resources of the store.
	Close() error
}
