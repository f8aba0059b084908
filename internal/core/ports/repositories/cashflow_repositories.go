package repositories

import (
	"context"
	"time"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
)

// CashflowReader defines read operations for cashflow data
type CashflowReader interface {
	// FindCashflowByID retrieves a specific cashflow by its unique identifier.
	FindCashflowByID(ctx context.Context, cashflowID string) (*domain.Cashflow, error)

	// FindUnrealizedCashflows retrieves still-actionable cashflows for an account
	// and currency whose value day is on or before asOfDay, ordered by value day.
	FindUnrealizedCashflows(ctx context.Context, accountID, currencyCode string, asOfDay time.Time) ([]domain.Cashflow, error)

	// FindCashflowsToRealize retrieves all non-terminal cashflows due on or
	// before valueDay, for batch realization. Late realization is allowed, so
	// rows left behind by a failed run settle on the next one.
	FindCashflowsToRealize(ctx context.Context, valueDay time.Time) ([]domain.Cashflow, error)
}

// CashflowWriter defines write operations for cashflow data
type CashflowWriter interface {
	// SaveCashflow persists a new cashflow.
	SaveCashflow(ctx context.Context, cashflow domain.Cashflow, actorID string, now time.Time) error

	// UpdateCashflowStatus persists a status transition.
	UpdateCashflowStatus(ctx context.Context, cashflowID string, status domain.ActionStatusType, actorID string, now time.Time) error
}

// CashflowRepositoryFacade combines all cashflow-related repository interfaces
type CashflowRepositoryFacade interface {
	CashflowReader
	CashflowWriter
}
