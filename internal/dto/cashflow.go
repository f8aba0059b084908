package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
)

// RegisterCashflowRequest carries everything needed to register a money movement.
// EventDay defaults to the current business day when nil.
type RegisterCashflowRequest struct {
	AccountID    string              `validate:"required"`
	CurrencyCode string              `validate:"required,len=3"`
	Amount       decimal.Decimal     `validate:"required"`
	CashflowType domain.CashflowType `validate:"required"`
	Remark       string              `validate:"max=30"`
	EventDay     *time.Time
	ValueDay     time.Time `validate:"required"`
}

// Validate checks the request shape. Amount must be non-zero; its sign carries
// the direction of the movement.
func (r RegisterCashflowRequest) Validate() error {
	if err := runValidation(r); err != nil {
		return err
	}
	if r.Amount.IsZero() {
		return apperrors.NewValidationError("error.Cashflow.amountZero", "amount")
	}
	if r.EventDay != nil && r.ValueDay.Before(domain.NormalizeDay(*r.EventDay)) {
		return apperrors.NewValidationError("error.Cashflow.valueDayBeforeEventDay", "valueDay")
	}
	return nil
}
