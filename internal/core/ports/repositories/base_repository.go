package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxOptions configures the transaction a unit of work runs in.
type TxOptions struct {
	ReadOnly bool
	IsoLevel pgx.TxIsoLevel // empty means the database default
}

// TransactionManager runs a function inside a database transaction. The open
// transaction travels in the context so repository calls made from fn share it.
// fn returning an error rolls the transaction back; nil commits it.
type TransactionManager interface {
	WithinTx(ctx context.Context, opts TxOptions, fn func(ctx context.Context) error) error
}
