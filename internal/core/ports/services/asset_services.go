package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AssetSvcFacade computes the withdrawable position of an account.
type AssetSvcFacade interface {
	// CanWithdraw decides whether absAmount can be withdrawn on valueDay:
	// current balance, plus unrealized cashflows due by valueDay, minus holds of
	// other pending withdrawals, minus absAmount, must be non-negative.
	// Pure decision; it performs no persistence writes beyond lazy balance
	// carry-forward.
	CanWithdraw(ctx context.Context, accountID, currencyCode string, absAmount decimal.Decimal, valueDay time.Time, actorID string) (bool, error)
}
