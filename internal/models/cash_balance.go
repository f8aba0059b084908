package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashBalance is one (account, currency, base day) balance row.
type CashBalance struct {
	BalanceID    string          `db:"balance_id"`
	AccountID    string          `db:"account_id"`
	CurrencyCode string          `db:"currency_code"`
	BaseDay      time.Time       `db:"base_day"`
	Amount       decimal.Decimal `db:"amount"`
	AuditFields
}
