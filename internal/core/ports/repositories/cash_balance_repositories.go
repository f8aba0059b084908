package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
)

// CashBalanceReader defines read operations for balance rows
type CashBalanceReader interface {
	// FindCashBalanceByDay retrieves the balance row for exactly the given base day.
	FindCashBalanceByDay(ctx context.Context, accountID, currencyCode string, baseDay time.Time) (*domain.CashBalance, error)

	// FindLatestCashBalanceBefore retrieves the most recent balance row strictly
	// before the given base day, used for carry-forward.
	FindLatestCashBalanceBefore(ctx context.Context, accountID, currencyCode string, baseDay time.Time) (*domain.CashBalance, error)
}

// CashBalanceWriter defines write operations for balance rows
type CashBalanceWriter interface {
	// SaveCashBalance persists a new balance row.
	SaveCashBalance(ctx context.Context, balance domain.CashBalance, actorID string, now time.Time) error

	// UpdateCashBalanceAmount replaces the amount of an existing balance row.
	UpdateCashBalanceAmount(ctx context.Context, balanceID string, amount decimal.Decimal, actorID string, now time.Time) error
}

// CashBalanceRepositoryFacade combines all balance-related repository interfaces
type CashBalanceRepositoryFacade interface {
	CashBalanceReader
	CashBalanceWriter
}
