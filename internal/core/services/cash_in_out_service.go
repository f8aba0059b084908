package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/fincore-dev/asset_ledger_app/internal/core/ports/services"
	"github.com/fincore-dev/asset_ledger_app/internal/dto"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/lock"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/logging"
)

// FI master service categories for the two transfer directions.
const (
	CategoryCashOut = "cashOut"
	CategoryCashIn  = "cashIn"
)

// withdrawLeadDays is how many business days after the event day funds settle.
const withdrawLeadDays = 3

// cashInOutService orchestrates the transfer request lifecycle. Every mutating
// operation runs under the account's write lock with a surrounding transaction.
type cashInOutService struct {
	cashInOutRepo portsrepo.CashInOutRepositoryFacade
	fiAccountRepo portsrepo.FiAccountReader
	assetSvc      portssvc.AssetSvcFacade
	cashflowSvc   portssvc.CashflowSvcFacade
	businessDay   portssvc.BusinessDayReaderSvc
	coordinator   *TxCoordinator
}

// NewCashInOutService creates the transfer request service.
func NewCashInOutService(cashInOutRepo portsrepo.CashInOutRepositoryFacade, fiAccountRepo portsrepo.FiAccountReader, assetSvc portssvc.AssetSvcFacade, cashflowSvc portssvc.CashflowSvcFacade, businessDay portssvc.BusinessDayReaderSvc, coordinator *TxCoordinator) portssvc.CashInOutSvcFacade {
	return &cashInOutService{
		cashInOutRepo: cashInOutRepo,
		fiAccountRepo: fiAccountRepo,
		assetSvc:      assetSvc,
		cashflowSvc:   cashflowSvc,
		businessDay:   businessDay,
		coordinator:   coordinator,
	}
}

var _ portssvc.CashInOutSvcFacade = (*cashInOutService)(nil)

// GetCashInOutByID retrieves a specific transfer request.
func (s *cashInOutService) GetCashInOutByID(ctx context.Context, cashInOutID string) (*domain.CashInOut, error) {
	cio, err := s.cashInOutRepo.FindCashInOutByID(ctx, cashInOutID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cash-in/out %s: %w", cashInOutID, err)
	}
	return cio, nil
}

// FindUnprocessedCashInOuts lists the requests due for today's closing run.
func (s *cashInOutService) FindUnprocessedCashInOuts(ctx context.Context) ([]domain.CashInOut, error) {
	day, err := s.businessDay.Day(ctx)
	if err != nil {
		return nil, err
	}
	return s.cashInOutRepo.FindUnprocessedCashInOutsByEventDay(ctx, day)
}

// FindCashInOuts searches requests by currency, statuses and update-day window.
func (s *cashInOutService) FindCashInOuts(ctx context.Context, criteria portsrepo.FindCashInOutCriteria) ([]domain.CashInOut, error) {
	return s.cashInOutRepo.FindCashInOuts(ctx, criteria)
}

// Withdraw validates the withdrawable position and persists a new pending
// withdrawal request. The event day is today; the value day is three business
// days out. Counterparty and own FI details are snapshotted at request time.
func (s *cashInOutService) Withdraw(ctx context.Context, req dto.WithdrawRequest, actorID string) (*domain.CashInOut, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	var created *domain.CashInOut
	err := s.coordinator.RunLocked(ctx, req.AccountID, lock.Write, portsrepo.TxOptions{}, func(ctx context.Context) error {
		now, innerErr := s.businessDay.Now(ctx)
		if innerErr != nil {
			return innerErr
		}
		valueDay, innerErr := s.businessDay.DayN(ctx, withdrawLeadDays)
		if innerErr != nil {
			return innerErr
		}

		ok, innerErr := s.assetSvc.CanWithdraw(ctx, req.AccountID, req.CurrencyCode, req.AbsAmount, valueDay, actorID)
		if innerErr != nil {
			return innerErr
		}
		if !ok {
			return apperrors.ErrWithdrawAmount
		}

		fiAccount, innerErr := s.fiAccountRepo.FindFiAccount(ctx, req.AccountID, CategoryCashOut, req.CurrencyCode)
		if innerErr != nil {
			return fmt.Errorf("failed to resolve counterparty FI account for %s: %w", req.AccountID, innerErr)
		}
		selfFiAccount, innerErr := s.fiAccountRepo.FindSelfFiAccount(ctx, CategoryCashOut, req.CurrencyCode)
		if innerErr != nil {
			return fmt.Errorf("failed to resolve own FI account: %w", innerErr)
		}

		cio := domain.CashInOut{
			CashInOutID:       uuid.NewString(),
			AccountID:         req.AccountID,
			CurrencyCode:      req.CurrencyCode,
			AbsAmount:         req.AbsAmount,
			Withdrawal:        true,
			RequestDay:        now.Day,
			RequestAt:         now.Timestamp,
			EventDay:          now.Day,
			ValueDay:          valueDay,
			TargetFiCode:      fiAccount.FiCode,
			TargetFiAccountID: fiAccount.FiAccountNo,
			SelfFiCode:        selfFiAccount.FiCode,
			SelfFiAccountID:   selfFiAccount.FiAccountNo,
			StatusType:        domain.Unprocessed,
		}
		if innerErr := s.cashInOutRepo.SaveCashInOut(ctx, cio, actorID, now.Timestamp); innerErr != nil {
			return fmt.Errorf("failed to save withdrawal request: %w", innerErr)
		}
		created = &cio
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Withdrawal request accepted",
		slog.String("cash_in_out_id", created.CashInOutID),
		slog.String("account_id", created.AccountID),
		slog.String("abs_amount", created.AbsAmount.String()))
	return created, nil
}

// Deposit persists a new pending incoming transfer request. No position check
// applies; the funds become withdrawable only once the resulting cashflow is
// realized on the value day.
func (s *cashInOutService) Deposit(ctx context.Context, req dto.DepositRequest, actorID string) (*domain.CashInOut, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	var created *domain.CashInOut
	err := s.coordinator.RunLocked(ctx, req.AccountID, lock.Write, portsrepo.TxOptions{}, func(ctx context.Context) error {
		now, innerErr := s.businessDay.Now(ctx)
		if innerErr != nil {
			return innerErr
		}
		valueDay, innerErr := s.businessDay.DayN(ctx, withdrawLeadDays)
		if innerErr != nil {
			return innerErr
		}

		fiAccount, innerErr := s.fiAccountRepo.FindFiAccount(ctx, req.AccountID, CategoryCashIn, req.CurrencyCode)
		if innerErr != nil {
			return fmt.Errorf("failed to resolve counterparty FI account for %s: %w", req.AccountID, innerErr)
		}
		selfFiAccount, innerErr := s.fiAccountRepo.FindSelfFiAccount(ctx, CategoryCashIn, req.CurrencyCode)
		if innerErr != nil {
			return fmt.Errorf("failed to resolve own FI account: %w", innerErr)
		}

		cio := domain.CashInOut{
			CashInOutID:       uuid.NewString(),
			AccountID:         req.AccountID,
			CurrencyCode:      req.CurrencyCode,
			AbsAmount:         req.AbsAmount,
			Withdrawal:        false,
			RequestDay:        now.Day,
			RequestAt:         now.Timestamp,
			EventDay:          now.Day,
			ValueDay:          valueDay,
			TargetFiCode:      fiAccount.FiCode,
			TargetFiAccountID: fiAccount.FiAccountNo,
			SelfFiCode:        selfFiAccount.FiCode,
			SelfFiAccountID:   selfFiAccount.FiAccountNo,
			StatusType:        domain.Unprocessed,
		}
		if innerErr := s.cashInOutRepo.SaveCashInOut(ctx, cio, actorID, now.Timestamp); innerErr != nil {
			return fmt.Errorf("failed to save deposit request: %w", innerErr)
		}
		created = &cio
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Deposit request accepted",
		slog.String("cash_in_out_id", created.CashInOutID),
		slog.String("account_id", created.AccountID),
		slog.String("abs_amount", created.AbsAmount.String()))
	return created, nil
}

// ProcessCashInOut advances a due request to PROCESSED. The cashflow is
// registered and linked within the same transaction, so the status change and
// the cashflow creation are atomic.
func (s *cashInOutService) ProcessCashInOut(ctx context.Context, cashInOutID string, actorID string) (*domain.CashInOut, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	target, err := s.cashInOutRepo.FindCashInOutByID(ctx, cashInOutID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cash-in/out %s: %w", cashInOutID, err)
	}

	var processed *domain.CashInOut
	err = s.coordinator.RunLocked(ctx, target.AccountID, lock.Write, portsrepo.TxOptions{}, func(ctx context.Context) error {
		cio, innerErr := s.cashInOutRepo.FindCashInOutByID(ctx, cashInOutID)
		if innerErr != nil {
			return fmt.Errorf("failed to reload cash-in/out %s: %w", cashInOutID, innerErr)
		}
		now, innerErr := s.businessDay.Now(ctx)
		if innerErr != nil {
			return innerErr
		}
		// Guard check happens before the cashflow is registered so a rejected
		// request leaves no side effects behind.
		if innerErr := cio.CanProcess(now); innerErr != nil {
			return innerErr
		}

		eventDay := cio.EventDay
		cashflow, innerErr := s.cashflowSvc.RegisterCashflowInTx(ctx, dto.RegisterCashflowRequest{
			AccountID:    cio.AccountID,
			CurrencyCode: cio.CurrencyCode,
			Amount:       cio.CashflowAmount(),
			CashflowType: cio.CashflowKind(),
			Remark:       string(cio.CashflowKind()),
			EventDay:     &eventDay,
			ValueDay:     cio.ValueDay,
		}, actorID)
		if innerErr != nil {
			return innerErr
		}

		transitioned, innerErr := cio.Processed(now, cashflow.CashflowID)
		if innerErr != nil {
			return innerErr
		}
		if innerErr := s.cashInOutRepo.UpdateCashInOut(ctx, transitioned.CashInOutID, transitioned.StatusType, transitioned.CashflowID, actorID, now.Timestamp); innerErr != nil {
			return fmt.Errorf("failed to update cash-in/out %s: %w", transitioned.CashInOutID, innerErr)
		}
		processed = &transitioned
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Cash-in/out processed",
		slog.String("cash_in_out_id", processed.CashInOutID),
		slog.String("cashflow_id", processed.CashflowID))
	return processed, nil
}

// CancelCashInOut cancels a still-actionable request strictly before its event day.
func (s *cashInOutService) CancelCashInOut(ctx context.Context, cashInOutID string, actorID string) (*domain.CashInOut, error) {
	target, err := s.cashInOutRepo.FindCashInOutByID(ctx, cashInOutID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cash-in/out %s: %w", cashInOutID, err)
	}

	var cancelled *domain.CashInOut
	err = s.coordinator.RunLocked(ctx, target.AccountID, lock.Write, portsrepo.TxOptions{}, func(ctx context.Context) error {
		cio, innerErr := s.cashInOutRepo.FindCashInOutByID(ctx, cashInOutID)
		if innerErr != nil {
			return fmt.Errorf("failed to reload cash-in/out %s: %w", cashInOutID, innerErr)
		}
		now, innerErr := s.businessDay.Now(ctx)
		if innerErr != nil {
			return innerErr
		}
		transitioned, innerErr := cio.Cancelled(now)
		if innerErr != nil {
			return innerErr
		}
		if innerErr := s.cashInOutRepo.UpdateCashInOut(ctx, transitioned.CashInOutID, transitioned.StatusType, transitioned.CashflowID, actorID, now.Timestamp); innerErr != nil {
			return fmt.Errorf("failed to update cash-in/out %s: %w", transitioned.CashInOutID, innerErr)
		}
		cancelled = &transitioned
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// ErrorCashInOut marks a non-terminal request as ERROR.
func (s *cashInOutService) ErrorCashInOut(ctx context.Context, cashInOutID string, actorID string) error {
	target, err := s.cashInOutRepo.FindCashInOutByID(ctx, cashInOutID)
	if err != nil {
		return fmt.Errorf("failed to find cash-in/out %s: %w", cashInOutID, err)
	}

	return s.coordinator.RunLocked(ctx, target.AccountID, lock.Write, portsrepo.TxOptions{}, func(ctx context.Context) error {
		cio, innerErr := s.cashInOutRepo.FindCashInOutByID(ctx, cashInOutID)
		if innerErr != nil {
			return fmt.Errorf("failed to reload cash-in/out %s: %w", cashInOutID, innerErr)
		}
		transitioned, innerErr := cio.Errored()
		if innerErr != nil {
			return innerErr
		}
		now, innerErr := s.businessDay.Now(ctx)
		if innerErr != nil {
			return innerErr
		}
		return s.cashInOutRepo.UpdateCashInOut(ctx, transitioned.CashInOutID, transitioned.StatusType, transitioned.CashflowID, actorID, now.Timestamp)
	})
}
