package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/fincore-dev/asset_ledger_app/internal/core/ports/services"
	"github.com/fincore-dev/asset_ledger_app/internal/dto"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/lock"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/logging"
)

// cashflowService orchestrates the cashflow lifecycle: register, realize,
// error. Public lifecycle operations run under the account's write lock with a
// surrounding transaction; the InTx variant is for callers that already hold both.
type cashflowService struct {
	cashflowRepo portsrepo.CashflowRepositoryFacade
	balanceSvc   portssvc.CashBalanceSvcFacade
	businessDay  portssvc.BusinessDayReaderSvc
	coordinator  *TxCoordinator
}

// NewCashflowService creates the cashflow service.
func NewCashflowService(cashflowRepo portsrepo.CashflowRepositoryFacade, balanceSvc portssvc.CashBalanceSvcFacade, businessDay portssvc.BusinessDayReaderSvc, coordinator *TxCoordinator) portssvc.CashflowSvcFacade {
	return &cashflowService{
		cashflowRepo: cashflowRepo,
		balanceSvc:   balanceSvc,
		businessDay:  businessDay,
		coordinator:  coordinator,
	}
}

var _ portssvc.CashflowSvcFacade = (*cashflowService)(nil)

// GetCashflowByID retrieves a specific cashflow.
func (s *cashflowService) GetCashflowByID(ctx context.Context, cashflowID string) (*domain.Cashflow, error) {
	cf, err := s.cashflowRepo.FindCashflowByID(ctx, cashflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cashflow %s: %w", cashflowID, err)
	}
	return cf, nil
}

// FindUnrealizedCashflows lists still-actionable cashflows due by asOfDay.
func (s *cashflowService) FindUnrealizedCashflows(ctx context.Context, accountID, currencyCode string, asOfDay time.Time) ([]domain.Cashflow, error) {
	return s.cashflowRepo.FindUnrealizedCashflows(ctx, accountID, currencyCode, asOfDay)
}

// RegisterCashflow persists a new cashflow under the account's write lock.
func (s *cashflowService) RegisterCashflow(ctx context.Context, req dto.RegisterCashflowRequest, actorID string) (*domain.Cashflow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var registered *domain.Cashflow
	err := s.coordinator.RunLocked(ctx, req.AccountID, lock.Write, portsrepo.TxOptions{}, func(ctx context.Context) error {
		var innerErr error
		registered, innerErr = s.RegisterCashflowInTx(ctx, req, actorID)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return registered, nil
}

// RegisterCashflowInTx registers a cashflow assuming the caller already holds
// the account's write lock and an open transaction. A cashflow that is already
// due is realized before returning.
func (s *cashflowService) RegisterCashflowInTx(ctx context.Context, req dto.RegisterCashflowRequest, actorID string) (*domain.Cashflow, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	now, err := s.businessDay.Now(ctx)
	if err != nil {
		return nil, err
	}

	valueDay := domain.NormalizeDay(req.ValueDay)
	if !now.BeforeEqualsDay(valueDay) {
		return nil, apperrors.ErrAfterValueDay
	}

	eventDay := now.Day
	if req.EventDay != nil {
		eventDay = domain.NormalizeDay(*req.EventDay)
	}

	cashflow := domain.Cashflow{
		CashflowID:   uuid.NewString(),
		AccountID:    req.AccountID,
		CurrencyCode: req.CurrencyCode,
		Amount:       req.Amount,
		CashflowType: req.CashflowType,
		Remark:       req.Remark,
		EventDay:     eventDay,
		EventAt:      now.Timestamp,
		ValueDay:     valueDay,
		StatusType:   domain.Unprocessed,
	}
	if err := s.cashflowRepo.SaveCashflow(ctx, cashflow, actorID, now.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to save cashflow: %w", err)
	}

	logger.Info("Cashflow registered",
		slog.String("cashflow_id", cashflow.CashflowID),
		slog.String("account_id", cashflow.AccountID),
		slog.String("amount", cashflow.Amount.String()))

	// A cashflow already due on registration settles immediately.
	if cashflow.CanRealize(now) {
		return s.realize(ctx, cashflow, now, actorID)
	}
	return &cashflow, nil
}

// RealizeCashflow settles a due cashflow and applies it to the balance.
func (s *cashflowService) RealizeCashflow(ctx context.Context, cashflowID string, actorID string) (*domain.Cashflow, error) {
	target, err := s.cashflowRepo.FindCashflowByID(ctx, cashflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cashflow %s: %w", cashflowID, err)
	}

	var realized *domain.Cashflow
	err = s.coordinator.RunLocked(ctx, target.AccountID, lock.Write, portsrepo.TxOptions{}, func(ctx context.Context) error {
		cashflow, innerErr := s.cashflowRepo.FindCashflowByID(ctx, cashflowID)
		if innerErr != nil {
			return fmt.Errorf("failed to reload cashflow %s: %w", cashflowID, innerErr)
		}
		now, innerErr := s.businessDay.Now(ctx)
		if innerErr != nil {
			return innerErr
		}
		realized, innerErr = s.realize(ctx, *cashflow, now, actorID)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return realized, nil
}

// realize performs the settlement inside the caller's lock and transaction:
// status to PROCESSED, then the signed amount onto the balance.
func (s *cashflowService) realize(ctx context.Context, cashflow domain.Cashflow, now domain.TimePoint, actorID string) (*domain.Cashflow, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	realized, err := cashflow.Realized(now)
	if err != nil {
		return nil, err
	}
	if err := s.cashflowRepo.UpdateCashflowStatus(ctx, realized.CashflowID, realized.StatusType, actorID, now.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to update cashflow %s status: %w", realized.CashflowID, err)
	}
	if _, err := s.balanceSvc.Add(ctx, realized.AccountID, realized.CurrencyCode, realized.Amount, actorID); err != nil {
		return nil, fmt.Errorf("failed to apply cashflow %s to balance: %w", realized.CashflowID, err)
	}

	logger.Info("Cashflow realized",
		slog.String("cashflow_id", realized.CashflowID),
		slog.String("account_id", realized.AccountID),
		slog.String("amount", realized.Amount.String()))
	return &realized, nil
}

// ErrorCashflow marks a non-terminal cashflow as ERROR.
func (s *cashflowService) ErrorCashflow(ctx context.Context, cashflowID string, actorID string) error {
	target, err := s.cashflowRepo.FindCashflowByID(ctx, cashflowID)
	if err != nil {
		return fmt.Errorf("failed to find cashflow %s: %w", cashflowID, err)
	}

	return s.coordinator.RunLocked(ctx, target.AccountID, lock.Write, portsrepo.TxOptions{}, func(ctx context.Context) error {
		cashflow, innerErr := s.cashflowRepo.FindCashflowByID(ctx, cashflowID)
		if innerErr != nil {
			return fmt.Errorf("failed to reload cashflow %s: %w", cashflowID, innerErr)
		}
		errored, innerErr := cashflow.Errored()
		if innerErr != nil {
			return innerErr
		}
		now, innerErr := s.businessDay.Now(ctx)
		if innerErr != nil {
			return innerErr
		}
		return s.cashflowRepo.UpdateCashflowStatus(ctx, errored.CashflowID, errored.StatusType, actorID, now.Timestamp)
	})
}
