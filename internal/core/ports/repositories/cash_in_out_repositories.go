package repositories

import (
	"context"
	"time"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
)

// FindCashInOutCriteria narrows the admin search over transfer requests.
// Zero values mean "no restriction" for that field.
type FindCashInOutCriteria struct {
	CurrencyCode string
	StatusTypes  []domain.ActionStatusType
	UpdFromDay   time.Time
	UpdToDay     time.Time
}

// CashInOutReader defines read operations for transfer request data
type CashInOutReader interface {
	// FindCashInOutByID retrieves a specific transfer request by its unique identifier.
	FindCashInOutByID(ctx context.Context, cashInOutID string) (*domain.CashInOut, error)

	// FindUnprocessedCashInOutsByEventDay retrieves non-terminal requests whose
	// event day is exactly the given day, for the closing batch.
	FindUnprocessedCashInOutsByEventDay(ctx context.Context, eventDay time.Time) ([]domain.CashInOut, error)

	// FindUnprocessedCashInOutsByAccount retrieves non-terminal requests for an
	// account, currency and direction, used to compute pending holds.
	FindUnprocessedCashInOutsByAccount(ctx context.Context, accountID, currencyCode string, withdrawal bool) ([]domain.CashInOut, error)

	// FindCashInOuts retrieves requests matching the admin search criteria.
	FindCashInOuts(ctx context.Context, criteria FindCashInOutCriteria) ([]domain.CashInOut, error)
}

// CashInOutWriter defines write operations for transfer request data
type CashInOutWriter interface {
	// SaveCashInOut persists a new transfer request.
	SaveCashInOut(ctx context.Context, cashInOut domain.CashInOut, actorID string, now time.Time) error

	// UpdateCashInOut persists a status transition together with the linked
	// cashflow id (empty until processed).
	UpdateCashInOut(ctx context.Context, cashInOutID string, status domain.ActionStatusType, cashflowID string, actorID string, now time.Time) error
}

// CashInOutRepositoryFacade combines all transfer-request repository interfaces
type CashInOutRepositoryFacade interface {
	CashInOutReader
	CashInOutWriter
}
