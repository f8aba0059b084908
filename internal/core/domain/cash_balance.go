package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashBalance is the running cash balance for one (account, currency, base day).
// Rows are created lazily by carry-forward from the most recent prior day and
// mutated only through Added.
type CashBalance struct {
	BalanceID    string          `json:"balanceID"` // Primary Key (e.g., UUID)
	AccountID    string          `json:"accountID"`
	CurrencyCode string          `json:"currencyCode"`
	BaseDay      time.Time       `json:"baseDay"`
	Amount       decimal.Decimal `json:"amount"`
	AuditFields
}

// Added returns the balance amount after applying delta.
// The stored amount is first truncated to the currency's fractional digits
// (rounding toward zero) and the raw delta is added to that truncated value.
// Truncate-then-add is the historical behavior of this ledger and is kept
// as-is rather than rounding the sum.
func (b CashBalance) Added(delta decimal.Decimal, precision int) decimal.Decimal {
	return b.Amount.Truncate(int32(precision)).Add(delta)
}
