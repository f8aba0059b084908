package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
)

// txKey is the context key carrying an open transaction between the
// transaction manager and the repositories.
type txKey struct{}

// dbtx is the subset of pgx operations shared by pools and transactions.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// q returns the open transaction from the context when there is one,
// otherwise the pool. Repository queries always go through q so they
// transparently join a surrounding unit of work.
func (r *BaseRepository) q(ctx context.Context) dbtx {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.Pool
}

// WithinTx runs fn inside a database transaction, storing the transaction in
// the context so repository calls made from fn share it. fn returning an error
// rolls the transaction back; nil commits it.
func (r *BaseRepository) WithinTx(ctx context.Context, opts portsrepo.TxOptions, fn func(ctx context.Context) error) error {
	txOpts := pgx.TxOptions{IsoLevel: opts.IsoLevel}
	if opts.ReadOnly {
		txOpts.AccessMode = pgx.ReadOnly
	}
	tx, err := r.Pool.BeginTx(ctx, txOpts)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			// Rollback after commit reports ErrTxClosed; anything else is surfaced
			// via the commit error path, so only the original error matters here.
			_ = rbErr
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)
