package services

import (
	"context"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	"github.com/fincore-dev/asset_ledger_app/internal/dto"
)

// CashInOutReaderSvc defines read operations for transfer requests
type CashInOutReaderSvc interface {
	// GetCashInOutByID retrieves a specific transfer request.
	GetCashInOutByID(ctx context.Context, cashInOutID string) (*domain.CashInOut, error)

	// FindUnprocessedCashInOuts lists the requests due for today's closing run.
	FindUnprocessedCashInOuts(ctx context.Context) ([]domain.CashInOut, error)

	// FindCashInOuts searches requests by currency, statuses and update-day window.
	FindCashInOuts(ctx context.Context, criteria portsrepo.FindCashInOutCriteria) ([]domain.CashInOut, error)
}

// CashInOutWriterSvc defines lifecycle operations for transfer requests
type CashInOutWriterSvc interface {
	// Withdraw validates the withdrawable position and persists a new pending
	// withdrawal request (event day today, value day three business days out).
	Withdraw(ctx context.Context, req dto.WithdrawRequest, actorID string) (*domain.CashInOut, error)

	// Deposit persists a new pending incoming transfer request. Deposits are
	// not position-checked; the funds only become withdrawable once the
	// resulting cashflow is realized on the value day.
	Deposit(ctx context.Context, req dto.DepositRequest, actorID string) (*domain.CashInOut, error)

	// ProcessCashInOut advances a due request to PROCESSED, creating and linking
	// its cashflow within the same transaction.
	ProcessCashInOut(ctx context.Context, cashInOutID string, actorID string) (*domain.CashInOut, error)

	// CancelCashInOut cancels a still-actionable request before its event day.
	CancelCashInOut(ctx context.Context, cashInOutID string, actorID string) (*domain.CashInOut, error)

	// ErrorCashInOut marks a non-terminal request as ERROR.
	ErrorCashInOut(ctx context.Context, cashInOutID string, actorID string) error
}

// CashInOutSvcFacade combines all transfer-request service interfaces
type CashInOutSvcFacade interface {
	CashInOutReaderSvc
	CashInOutWriterSvc
}
