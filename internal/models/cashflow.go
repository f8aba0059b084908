package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cashflow is a realized or unrealized money movement row.
type Cashflow struct {
	CashflowID   string          `db:"cashflow_id"`
	AccountID    string          `db:"account_id"`
	CurrencyCode string          `db:"currency_code"`
	Amount       decimal.Decimal `db:"amount"`
	CashflowType string          `db:"cashflow_type"`
	Remark       string          `db:"remark"`
	EventDay     time.Time       `db:"event_day"`
	EventAt      time.Time       `db:"event_at"`
	ValueDay     time.Time       `db:"value_day"`
	StatusType   string          `db:"status_type"`
	AuditFields
}
