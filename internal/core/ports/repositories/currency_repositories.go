package repositories

import (
	"context"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency master data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency master data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency (upsert, primarily for initial setup).
	SaveCurrency(ctx context.Context, currency domain.Currency, actorID string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
