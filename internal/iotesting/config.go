// Package iotesting provides shared test utilities and fixtures.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/gnames/gncamtrap/internal/iodb"
	"github.com/gnames/gncamtrap/pkg/config"
	"github.com/gnames/gncamtrap/pkg/db"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// Tests never run against the configured production database.
	TestDatabaseName = "gncamtrap_test"
)

// GetTestConfig returns a configuration suitable for tests. Database
// settings come from GNCAMTRAP_DATABASE_* environment variables when set,
// the database name is always TestDatabaseName.
func GetTestConfig() *config.Config {
	cfg := config.New()
	var opts []config.Option

	if v := os.Getenv("GNCAMTRAP_DATABASE_HOST"); v != "" {
		opts = append(opts, config.OptDatabaseHost(v))
	}
	if v := os.Getenv("GNCAMTRAP_DATABASE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if v := os.Getenv("GNCAMTRAP_DATABASE_USER"); v != "" {
		opts = append(opts, config.OptDatabaseUser(v))
	}
	if v := os.Getenv("GNCAMTRAP_DATABASE_PASSWORD"); v != "" {
		opts = append(opts, config.OptDatabasePassword(v))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))

	cfg.Update(opts)
	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// ConnectTestDB connects to the test database. The test is skipped in
// short mode or when PostgreSQL is not reachable. The connection is
// closed when the test finishes.
func ConnectTestDB(t *testing.T) db.Operator {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	err := op.Connect(context.Background(), GetTestDatabaseConfig())
	if err != nil {
		t.Skipf("PostgreSQL is not available: %v", err)
	}
	t.Cleanup(func() { _ = op.Close() })
	return op
}
