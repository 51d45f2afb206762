// Package iostore saves prediction records of ensemble runs to SQLite
// or PostgreSQL. This is an impure I/O package that implements
// store.Store.
package iostore

import (
	"context"

	"github.com/gnames/gncamtrap/pkg/config"
	"github.com/gnames/gncamtrap/pkg/store"
)

// Store kinds accepted by Config.Output.Store.
const (
	None     = "none"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// New creates a store of the kind set in the configuration. It returns
// nil store for None.
func New(
	ctx context.Context,
	cfg *config.Config,
	progress bool,
) (store.Store, error) {
	switch cfg.Output.Store {
	case SQLite:
		return NewSQLite(cfg.SQLitePath())
	case Postgres:
		return NewPostgres(ctx, &cfg.Database, progress)
	default:
		return nil, nil
	}
}
