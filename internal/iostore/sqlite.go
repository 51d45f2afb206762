package iostore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gncamtrap/pkg/prediction"
	"github.com/gnames/gncamtrap/pkg/schema"
	"github.com/gnames/gncamtrap/pkg/store"
	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

type sqliteStore struct {
	path string
	db   *sql.DB
	lock *flock.Flock
}

// NewSQLite opens or creates a SQLite database at path. The database is
// locked for the lifetime of the store, so two runs cannot write to it
// at the same time.
func NewSQLite(path string) (store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, StoreOpenError(path, err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, StoreOpenError(path, err)
	}
	if !ok {
		return nil, StoreLockError(path)
	}

	res := &sqliteStore{path: path, lock: lock}
	if err = res.open(); err != nil {
		_ = lock.Unlock()
		return nil, err
	}
	return res, nil
}

func (s *sqliteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return StoreOpenError(s.path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, m := range schema.AllModels() {
		pragmas = append(pragmas, m.TableDDL())
		pragmas = append(pragmas, m.IndexDDL()...)
	}
	for _, q := range pragmas {
		if _, err = db.Exec(q); err != nil {
			db.Close()
			return StoreOpenError(s.path, err)
		}
	}

	s.db = db
	return nil
}

// Save stores a run and its records in one transaction.
func (s *sqliteStore) Save(
	ctx context.Context,
	run schema.Run,
	preds []prediction.Prediction,
) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StoreSaveError(s.path, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		schema.InsertSQL(run, run.TableName()), schema.Values(run)...)
	if err != nil {
		return StoreSaveError(s.path, err)
	}

	var row schema.Prediction
	stmt, err := tx.PrepareContext(ctx, schema.InsertSQL(row, row.TableName()))
	if err != nil {
		return StoreSaveError(s.path, err)
	}
	defer stmt.Close()

	for i := range preds {
		row, err = schema.NewPrediction(run.ID, preds[i])
		if err != nil {
			return StoreSaveError(s.path, err)
		}
		if _, err = stmt.ExecContext(ctx, schema.Values(row)...); err != nil {
			return StoreSaveError(s.path, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return StoreSaveError(s.path, err)
	}

	slog.Info("Predictions saved to SQLite",
		"path", s.path,
		"run_id", run.ID,
		"records", len(preds),
	)
	return nil
}

// Close closes the database and releases the lock.
func (s *sqliteStore) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
		s.db = nil
	}
	errs = append(errs, s.lock.Unlock())
	return errors.Join(errs...)
}
