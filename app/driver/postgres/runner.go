package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

// Runner executes database units of work with uniform transaction,
// rollback, and logging semantics. Connections are scoped to the call:
// nothing acquired here escapes to the caller.
type Runner struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewRunner creates a new query runner
func NewRunner(db DatabaseIface, logger *slog.Logger) *Runner {
	return &Runner{
		db:     db,
		logger: logger.With("component", "query_runner"),
	}
}

// InTransaction begins a transaction, runs fn against it, and commits on
// success. On failure the transaction is rolled back and the original
// error is returned; a failure of the rollback itself is logged but
// never replaces the unit of work's error.
func (r *Runner) InTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.Error("failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.logger.Error("error during transaction rollback", "error", rbErr)
		}
		r.logger.Error("error while handling transaction", "error", err)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("failed to commit transaction", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ReadOnly runs fn without a transaction. Failures are logged with
// context and returned unchanged.
func (r *Runner) ReadOnly(ctx context.Context, fn func(q Querier) error) error {
	if err := fn(r.db); err != nil {
		r.logger.Error("error while executing query", "error", err)
		return err
	}
	return nil
}

// ReadOnlyOr runs fn without a transaction and substitutes the supplied
// domain error for whatever the data store reported. The raw error is
// still logged before being replaced.
func (r *Runner) ReadOnlyOr(ctx context.Context, substitute error, fn func(q Querier) error) error {
	if err := fn(r.db); err != nil {
		r.logger.Error("error while executing query", "error", err)
		return substitute
	}
	return nil
}

// Exec runs a single parameterized statement inside a transaction.
func (r *Runner) Exec(ctx context.Context, sql string, args ...interface{}) error {
	return r.InTransaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, sql, args...)
		return err
	})
}
