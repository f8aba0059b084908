package services

import (
	"context"

	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/lock"
)

// TxCoordinator composes a database transaction with an optional per-key lock.
// When a lock is requested it is acquired before the transaction begins and
// released only after commit or rollback, so the lock strictly contains the
// transaction and no other caller can interleave a read-modify-write sequence
// on the same key.
type TxCoordinator struct {
	txm   portsrepo.TransactionManager
	locks *lock.IdLockManager
}

// NewTxCoordinator creates a coordinator over the given transaction manager
// and lock registry.
func NewTxCoordinator(txm portsrepo.TransactionManager, locks *lock.IdLockManager) *TxCoordinator {
	return &TxCoordinator{txm: txm, locks: locks}
}

// Run executes fn inside a transaction without any lock.
func (c *TxCoordinator) Run(ctx context.Context, opts portsrepo.TxOptions, fn func(ctx context.Context) error) error {
	return c.txm.WithinTx(ctx, opts, fn)
}

// RunLocked executes fn inside a transaction while holding the lock for key.
func (c *TxCoordinator) RunLocked(ctx context.Context, key string, lockType lock.LockType, opts portsrepo.TxOptions, fn func(ctx context.Context) error) error {
	return c.locks.Call(key, lockType, func() error {
		return c.txm.WithinTx(ctx, opts, fn)
	})
}
