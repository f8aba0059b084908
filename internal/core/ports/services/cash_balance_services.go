package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
)

// CashBalanceSvcFacade manages per-day balance rows.
//
// Both operations run inside the caller's transaction and assume the caller
// holds the account's write lock (for Add) or at least its read lock; they do
// not acquire locks themselves.
type CashBalanceSvcFacade interface {
	// GetOrNew returns today's balance row, creating it by carry-forward from
	// the most recent prior row (or zero) when absent.
	GetOrNew(ctx context.Context, accountID, currencyCode string, actorID string) (*domain.CashBalance, error)

	// Add applies a signed delta to today's balance row: the stored amount is
	// truncated to the currency's fractional digits, then the raw delta is added.
	Add(ctx context.Context, accountID, currencyCode string, delta decimal.Decimal, actorID string) (*domain.CashBalance, error)
}
