package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

// idGenerator produces primary keys for new rows.
type idGenerator interface {
	Generate() string
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryer is implemented by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// dateColumn selects a DATE column as "YYYY-MM-DD" text.
func dateColumn(name string) string {
	return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD') AS %s", name, name)
}

func buildQuery(ctx context.Context, op string, b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", op).Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// scanOne executes a single-row statement on q and scans it with scan.
// Driver errors are returned untranslated.
func scanOne[T any](ctx context.Context, q queryer, op string, b sq.Sqlizer, scan func(rowScanner) (T, error)) (T, error) {
	var zero T
	query, args, err := buildQuery(ctx, op, b)
	if err != nil {
		return zero, err
	}

	out, err := scan(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.FromContext(ctx).Err(err).Str("func", op).Msg("failed to execute query")
		}
		return zero, err
	}
	return out, nil
}

// queryOne runs scanOne with the single retry and translates the error.
// A missing row is reported as [ErrNotFound].
func queryOne[T any](ctx context.Context, db *DB, op string, b sq.Sqlizer, scan func(rowScanner) (T, error)) (T, error) {
	var out T
	err := db.withRetry(ctx, op, func() error {
		var scanErr error
		out, scanErr = scanOne(ctx, db, op, b, scan)
		return scanErr
	})
	if err != nil {
		var zero T
		return zero, translateError(err)
	}
	return out, nil
}

// queryMany executes a multi-row statement and scans every row with scan.
// The result is never nil.
func queryMany[T any](ctx context.Context, db *DB, op string, b sq.Sqlizer, scan func(rowScanner) (T, error)) ([]T, error) {
	query, args, err := buildQuery(ctx, op, b)
	if err != nil {
		return nil, err
	}

	var out []T
	err = db.withRetry(ctx, op, func() error {
		rows, queryErr := db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		out = make([]T, 0, 16)
		for rows.Next() {
			item, scanErr := scan(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			out = append(out, item)
		}
		return rows.Err()
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", op).Msg("failed to execute query")
		if errors.Is(err, ErrScanningRows) {
			return nil, err
		}
		return nil, translateError(err)
	}
	return out, nil
}

// execAffecting executes a statement and returns [ErrNotFound] when it
// affected no rows.
func execAffecting(ctx context.Context, db *DB, op string, b sq.Sqlizer) error {
	query, args, err := buildQuery(ctx, op, b)
	if err != nil {
		return err
	}

	var affected int64
	err = db.withRetry(ctx, op, func() error {
		res, execErr := db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", op).Msg("failed to execute statement")
		return translateError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteOwned deletes the row id of table owned by profileID.
func deleteOwned(ctx context.Context, db *DB, op, table, profileID, id string) error {
	return execAffecting(ctx, db, op, psql.Delete(table).Where(sq.Eq{"id": id, "profile_id": profileID}))
}

// nullable converts a missing-row error into a nil result.
func nullable[T any](v T, err error) (*T, error) {
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// inTx runs fn in a transaction. The whole transaction is retried once on a
// retryable error (serialization failure, deadlock).
func (db *DB) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	return db.withRetry(ctx, op, func() error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", op).Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if err = fn(tx); err != nil {
			return err
		}

		if err = tx.Commit(); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", op).Msg("failed to commit transaction")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
