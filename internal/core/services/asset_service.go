package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/fincore-dev/asset_ledger_app/internal/core/ports/services"
)

// assetService computes the withdrawable position of an account on demand.
// The position is ephemeral and never persisted.
type assetService struct {
	balanceSvc    portssvc.CashBalanceSvcFacade
	cashflowRepo  portsrepo.CashflowReader
	cashInOutRepo portsrepo.CashInOutReader
}

// NewAssetService creates the position calculator.
func NewAssetService(balanceSvc portssvc.CashBalanceSvcFacade, cashflowRepo portsrepo.CashflowReader, cashInOutRepo portsrepo.CashInOutReader) portssvc.AssetSvcFacade {
	return &assetService{
		balanceSvc:    balanceSvc,
		cashflowRepo:  cashflowRepo,
		cashInOutRepo: cashInOutRepo,
	}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

// CanWithdraw reports whether absAmount is coverable on valueDay:
//
//	balance
//	+ sum of unrealized cashflow amounts with value day <= valueDay
//	- sum of holds from other pending withdrawal requests
//	- absAmount
//	>= 0
//
// Pending incoming deposits are not counted toward available funds; only
// registered cashflows contribute positively.
func (s *assetService) CanWithdraw(ctx context.Context, accountID, currencyCode string, absAmount decimal.Decimal, valueDay time.Time, actorID string) (bool, error) {
	balance, err := s.balanceSvc.GetOrNew(ctx, accountID, currencyCode, actorID)
	if err != nil {
		return false, err
	}

	cashflows, err := s.cashflowRepo.FindUnrealizedCashflows(ctx, accountID, currencyCode, valueDay)
	if err != nil {
		return false, fmt.Errorf("failed to find unrealized cashflows for account %s: %w", accountID, err)
	}

	pending, err := s.cashInOutRepo.FindUnprocessedCashInOutsByAccount(ctx, accountID, currencyCode, true)
	if err != nil {
		return false, fmt.Errorf("failed to find pending withdrawals for account %s: %w", accountID, err)
	}

	available := balance.Amount
	for _, cf := range cashflows {
		available = available.Add(cf.Amount)
	}
	for _, cio := range pending {
		available = available.Sub(cio.AbsAmount)
	}
	// Scale is deliberately not applied here; this is a comparison only.
	return available.Sub(absAmount).GreaterThanOrEqual(decimal.Zero), nil
}
