package iostore

import (
	"context"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gncamtrap/internal/iodb"
	"github.com/gnames/gncamtrap/internal/ioschema"
	"github.com/gnames/gncamtrap/pkg/config"
	"github.com/gnames/gncamtrap/pkg/db"
	"github.com/gnames/gncamtrap/pkg/prediction"
	"github.com/gnames/gncamtrap/pkg/schema"
	"github.com/gnames/gncamtrap/pkg/store"
	"github.com/jackc/pgx/v5"
)

type pgStore struct {
	operator  db.Operator
	dbName    string
	batchSize int
	progress  bool
}

// NewPostgres connects to PostgreSQL and makes sure the tables for runs
// and predictions exist. With progress set, a progress bar is shown on
// standard error while records are copied.
func NewPostgres(
	ctx context.Context,
	cfg *config.DatabaseConfig,
	progress bool,
) (store.Store, error) {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, cfg); err != nil {
		return nil, err
	}

	if err := ioschema.NewManager(op).Migrate(ctx); err != nil {
		op.Close()
		return nil, err
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = config.New().Database.BatchSize
	}

	res := pgStore{
		operator:  op,
		dbName:    cfg.Database,
		batchSize: batchSize,
		progress:  progress,
	}
	return &res, nil
}

// Save copies a run and its records in batches within one transaction.
func (s *pgStore) Save(
	ctx context.Context,
	run schema.Run,
	preds []prediction.Prediction,
) (err error) {
	tx, err := s.operator.Pool().Begin(ctx)
	if err != nil {
		return StoreSaveError(s.dbName, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{run.TableName()},
		schema.Columns(run),
		pgx.CopyFromRows([][]any{schema.Values(run)}),
	)
	if err != nil {
		return StoreSaveError(s.dbName, err)
	}

	var bar *pb.ProgressBar
	if s.progress {
		bar = pb.Full.Start(len(preds))
		bar.Set("prefix", "Saving predictions: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	var row schema.Prediction
	cols := schema.Columns(row)
	records := make([][]any, 0, s.batchSize)
	var count int64
	for i := range preds {
		row, err = schema.NewPrediction(run.ID, preds[i])
		if err != nil {
			return StoreSaveError(s.dbName, err)
		}
		records = append(records, schema.Values(row))
		if len(records) < s.batchSize && i < len(preds)-1 {
			continue
		}

		n, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{row.TableName()},
			cols,
			pgx.CopyFromRows(records),
		)
		if err != nil {
			return StoreSaveError(s.dbName, err)
		}
		count += n
		if bar != nil {
			bar.Add(len(records))
		}
		records = records[:0]
	}

	if err = tx.Commit(ctx); err != nil {
		return StoreSaveError(s.dbName, err)
	}

	slog.Info("Predictions saved to PostgreSQL",
		"database", s.dbName,
		"run_id", run.ID,
		"records", humanize.Comma(count),
	)
	return nil
}

// Close closes the connection pool.
func (s *pgStore) Close() error {
	return s.operator.Close()
}
