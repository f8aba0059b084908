package services

import (
	"context"
	"time"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	"github.com/fincore-dev/asset_ledger_app/internal/dto"
)

// CashflowReaderSvc defines read operations for cashflow data
type CashflowReaderSvc interface {
	// GetCashflowByID retrieves a specific cashflow.
	GetCashflowByID(ctx context.Context, cashflowID string) (*domain.Cashflow, error)

	// FindUnrealizedCashflows lists still-actionable cashflows for an account
	// with value day on or before asOfDay.
	FindUnrealizedCashflows(ctx context.Context, accountID, currencyCode string, asOfDay time.Time) ([]domain.Cashflow, error)
}

// CashflowWriterSvc defines lifecycle operations for cashflow data
type CashflowWriterSvc interface {
	// RegisterCashflow persists a new cashflow under the account's write lock.
	// A cashflow already due on registration is realized before returning.
	RegisterCashflow(ctx context.Context, req dto.RegisterCashflowRequest, actorID string) (*domain.Cashflow, error)

	// RegisterCashflowInTx is RegisterCashflow without the surrounding lock and
	// transaction; the caller must already hold both for the target account.
	RegisterCashflowInTx(ctx context.Context, req dto.RegisterCashflowRequest, actorID string) (*domain.Cashflow, error)

	// RealizeCashflow settles a due cashflow and applies it to the balance.
	RealizeCashflow(ctx context.Context, cashflowID string, actorID string) (*domain.Cashflow, error)

	// ErrorCashflow marks a non-terminal cashflow as ERROR.
	ErrorCashflow(ctx context.Context, cashflowID string, actorID string) error
}

// CashflowSvcFacade combines all cashflow-related service interfaces
type CashflowSvcFacade interface {
	CashflowReaderSvc
	CashflowWriterSvc
}
