package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
)

// CashInOut is a customer-facing cash transfer request. Counterparty and own
// financial-institution details are denormalized at request time. Once
// processed it is linked to exactly one Cashflow.
type CashInOut struct {
	CashInOutID  string          `json:"cashInOutID"` // Primary Key (e.g., UUID)
	AccountID    string          `json:"accountID"`
	CurrencyCode string          `json:"currencyCode"`
	AbsAmount    decimal.Decimal `json:"absAmount"` // always positive
	Withdrawal   bool            `json:"withdrawal"`
	RequestDay   time.Time       `json:"requestDay"`
	RequestAt    time.Time       `json:"requestAt"`
	EventDay     time.Time       `json:"eventDay"`
	ValueDay     time.Time       `json:"valueDay"`
	// Snapshot of the counterparty institution at request time.
	TargetFiCode      string `json:"targetFiCode"`
	TargetFiAccountID string `json:"targetFiAccountID"`
	// Snapshot of our own institution account at request time.
	SelfFiCode      string `json:"selfFiCode"`
	SelfFiAccountID string `json:"selfFiAccountID"`

	StatusType ActionStatusType `json:"statusType"`
	CashflowID string           `json:"cashflowID"` // set when processed, empty until then
	AuditFields
}

// CanProcess checks the preconditions for processing without transitioning:
// the request must still be actionable and its event day must be reached.
func (c CashInOut) CanProcess(now TimePoint) error {
	if !c.StatusType.IsUnprocessed() {
		return apperrors.ErrActionUnprocessing
	}
	if !now.AfterEqualsDay(c.EventDay) {
		return apperrors.ErrBeforeEventDay
	}
	return nil
}

// Processed transitions the request to PROCESSED and links the cashflow that
// the processing step created. Fails with ErrActionUnprocessing from a terminal
// status and with ErrBeforeEventDay before the event day.
func (c CashInOut) Processed(now TimePoint, cashflowID string) (CashInOut, error) {
	if err := c.CanProcess(now); err != nil {
		return c, err
	}
	c.StatusType = Processed
	c.CashflowID = cashflowID
	return c, nil
}

// Cancelled transitions the request to CANCELLED. Allowed only while the
// request is still actionable and strictly before its event day.
func (c CashInOut) Cancelled(now TimePoint) (CashInOut, error) {
	if !c.StatusType.IsUnprocessing() {
		return c, apperrors.ErrActionUnprocessing
	}
	if !now.BeforeDay(c.EventDay) {
		return c, apperrors.ErrAfterEqualsEventDay
	}
	c.StatusType = Cancelled
	return c, nil
}

// Errored transitions the request to ERROR. Only non-terminal requests may be marked.
func (c CashInOut) Errored() (CashInOut, error) {
	if !c.StatusType.IsUnprocessed() {
		return c, apperrors.ErrActionUnprocessing
	}
	c.StatusType = StatusError
	return c, nil
}

// CashflowAmount is the signed amount the request contributes once processed.
func (c CashInOut) CashflowAmount() decimal.Decimal {
	if c.Withdrawal {
		return c.AbsAmount.Neg()
	}
	return c.AbsAmount
}

// CashflowKind is the cashflow classification the request produces.
func (c CashInOut) CashflowKind() CashflowType {
	if c.Withdrawal {
		return CashOut
	}
	return CashIn
}
