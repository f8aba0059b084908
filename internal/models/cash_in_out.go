package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// CashInOut is a customer transfer request row.
type CashInOut struct {
	CashInOutID       string          `db:"cash_in_out_id"`
	AccountID         string          `db:"account_id"`
	CurrencyCode      string          `db:"currency_code"`
	AbsAmount         decimal.Decimal `db:"abs_amount"`
	Withdrawal        bool            `db:"withdrawal"`
	RequestDay        time.Time       `db:"request_day"`
	RequestAt         time.Time       `db:"request_at"`
	EventDay          time.Time       `db:"event_day"`
	ValueDay          time.Time       `db:"value_day"`
	TargetFiCode      string          `db:"target_fi_code"`
	TargetFiAccountID string          `db:"target_fi_account_id"`
	SelfFiCode        string          `db:"self_fi_code"`
	SelfFiAccountID   string          `db:"self_fi_account_id"`
	StatusType        string          `db:"status_type"`
	CashflowID        sql.NullString  `db:"cashflow_id"`
	AuditFields
}
