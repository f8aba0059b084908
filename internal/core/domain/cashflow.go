package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
)

// CashflowType classifies the origin of a money movement.
type CashflowType string

const (
	CashIn          CashflowType = "CASH_IN"
	CashOut         CashflowType = "CASH_OUT"
	CashTransferIn  CashflowType = "CASH_TRANSFER_IN"
	CashTransferOut CashflowType = "CASH_TRANSFER_OUT"
)

// Cashflow is a realized or unrealized money movement against an account.
// Rows are append-only except for status transitions; they are never deleted.
// Invariant: ValueDay >= EventDay.
type Cashflow struct {
	CashflowID   string           `json:"cashflowID"` // Primary Key (e.g., UUID)
	AccountID    string           `json:"accountID"`
	CurrencyCode string           `json:"currencyCode"`
	Amount       decimal.Decimal  `json:"amount"` // signed; negative for outflows
	CashflowType CashflowType     `json:"cashflowType"`
	Remark       string           `json:"remark"`
	EventDay     time.Time        `json:"eventDay"`
	EventAt      time.Time        `json:"eventAt"`
	ValueDay     time.Time        `json:"valueDay"`
	StatusType   ActionStatusType `json:"statusType"`
	AuditFields
}

// CanRealize reports whether the cashflow's value day has been reached.
func (c Cashflow) CanRealize(now TimePoint) bool {
	return now.AfterEqualsDay(c.ValueDay)
}

// Realized transitions the cashflow to PROCESSED.
// Fails with ErrRealizeDay before the value day and with ErrStatusType when the
// cashflow is already processed or cancelled.
func (c Cashflow) Realized(now TimePoint) (Cashflow, error) {
	if !c.CanRealize(now) {
		return c, apperrors.ErrRealizeDay
	}
	if !c.StatusType.IsUnprocessing() {
		return c, apperrors.ErrStatusType
	}
	c.StatusType = Processed
	return c, nil
}

// Errored transitions the cashflow to ERROR.
// Only non-terminal cashflows may be marked.
func (c Cashflow) Errored() (Cashflow, error) {
	if !c.StatusType.IsUnprocessed() {
		return c, apperrors.ErrActionUnprocessing
	}
	c.StatusType = StatusError
	return c, nil
}
