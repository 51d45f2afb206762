// Package ioschema implements db.SchemaManager with GORM AutoMigrate.
// This is an impure I/O package.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/gncamtrap/pkg/db"
	"github.com/gnames/gncamtrap/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the db.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) db.SchemaManager {
	return &manager{operator: op}
}

// Migrate creates or updates tables of stored runs.
func (m *manager) Migrate(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	for _, col := range collated {
		if _, err := pool.Exec(ctx, col.sql()); err != nil {
			return CollationError(col.table, col.column, err)
		}
	}

	slog.Info("Database schema is up to date")
	return nil
}
