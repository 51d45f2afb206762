// Package db declares contracts for PostgreSQL access used by the
// PostgreSQL prediction store.
package db

import (
	"context"

	"github.com/gnames/gncamtrap/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator manages a PostgreSQL connection pool.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool. It is nil before Connect.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	HasTables(ctx context.Context) (bool, error)
}

// SchemaManager creates or updates the tables of stored runs.
// Migrate is idempotent.
type SchemaManager interface {
	Migrate(ctx context.Context) error
}
