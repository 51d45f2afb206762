package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
)

// ConnectionError is returned when database connection fails.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL at <em>%s:%d</em>

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     pg_isready -h %s -p %d
  2. Verify database <em>%s</em> exists and user <em>%s</em> can access it
  3. Check the database section of
     ~/.config/gncamtrap/config.yaml
     or GNCAMTRAP_DATABASE_* environment variables`

	vars := []any{host, port, host, port, database, user}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError is returned when an operation requires a
// connection pool that was not created.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableExistsCheckError is returned when the table lookup query fails.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}
