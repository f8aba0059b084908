package repositories

import (
	"context"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
)

// FiAccountReader defines read operations for financial-institution master data
type FiAccountReader interface {
	// FindFiAccount retrieves the customer's counterparty FI account for a
	// service category and currency.
	FindFiAccount(ctx context.Context, accountID, category, currencyCode string) (*domain.FiAccount, error)

	// FindSelfFiAccount retrieves our own FI account for a service category and currency.
	FindSelfFiAccount(ctx context.Context, category, currencyCode string) (*domain.SelfFiAccount, error)
}

// FiAccountRepositoryFacade combines FI master repository interfaces
type FiAccountRepositoryFacade interface {
	FiAccountReader
}
