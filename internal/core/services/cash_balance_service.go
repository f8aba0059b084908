package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/fincore-dev/asset_ledger_app/internal/core/ports/services"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/logging"
)

// cashBalanceService maintains the per-day balance rows. It runs inside the
// caller's transaction and lock scope; see the facade documentation.
type cashBalanceService struct {
	balanceRepo  portsrepo.CashBalanceRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	businessDay  portssvc.BusinessDayReaderSvc
	clock        func() time.Time
}

// CashBalanceOption customizes the balance service.
type CashBalanceOption func(*cashBalanceService)

// WithBalanceClock overrides the wall clock, used by tests.
func WithBalanceClock(clock func() time.Time) CashBalanceOption {
	return func(s *cashBalanceService) { s.clock = clock }
}

// NewCashBalanceService creates the balance service.
func NewCashBalanceService(balanceRepo portsrepo.CashBalanceRepositoryFacade, currencyRepo portsrepo.CurrencyReader, businessDay portssvc.BusinessDayReaderSvc, opts ...CashBalanceOption) portssvc.CashBalanceSvcFacade {
	s := &cashBalanceService{
		balanceRepo:  balanceRepo,
		currencyRepo: currencyRepo,
		businessDay:  businessDay,
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.CashBalanceSvcFacade = (*cashBalanceService)(nil)

// GetOrNew returns today's balance row, creating it by carry-forward when absent.
func (s *cashBalanceService) GetOrNew(ctx context.Context, accountID, currencyCode string, actorID string) (*domain.CashBalance, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	day, err := s.businessDay.Day(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := s.balanceRepo.FindCashBalanceByDay(ctx, accountID, currencyCode, day)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find balance for account %s: %w", accountID, err)
	}

	// No row for today yet: carry the most recent prior amount forward, or zero.
	amount := decimal.Zero
	prev, err := s.balanceRepo.FindLatestCashBalanceBefore(ctx, accountID, currencyCode, day)
	if err == nil {
		amount = prev.Amount
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find prior balance for account %s: %w", accountID, err)
	}

	created := domain.CashBalance{
		BalanceID:    uuid.NewString(),
		AccountID:    accountID,
		CurrencyCode: currencyCode,
		BaseDay:      day,
		Amount:       amount,
	}
	if err := s.balanceRepo.SaveCashBalance(ctx, created, actorID, s.clock()); err != nil {
		return nil, fmt.Errorf("failed to save carried-forward balance for account %s: %w", accountID, err)
	}

	logger.Debug("Balance row carried forward",
		slog.String("account_id", accountID),
		slog.String("currency", currencyCode),
		slog.String("amount", amount.String()))
	return &created, nil
}

// Add applies a signed delta to today's balance row. The stored amount is
// truncated to the currency's fractional digits before the raw delta is added.
func (s *cashBalanceService) Add(ctx context.Context, accountID, currencyCode string, delta decimal.Decimal, actorID string) (*domain.CashBalance, error) {
	balance, err := s.GetOrNew(ctx, accountID, currencyCode, actorID)
	if err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve currency %s: %w", currencyCode, err)
	}

	amount := balance.Added(delta, currency.Precision)
	if err := s.balanceRepo.UpdateCashBalanceAmount(ctx, balance.BalanceID, amount, actorID, s.clock()); err != nil {
		return nil, fmt.Errorf("failed to update balance %s: %w", balance.BalanceID, err)
	}
	balance.Amount = amount
	return balance, nil
}
