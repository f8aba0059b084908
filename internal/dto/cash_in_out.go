package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
)

// WithdrawRequest asks for a cash withdrawal from an account.
type WithdrawRequest struct {
	AccountID    string          `validate:"required"`
	CurrencyCode string          `validate:"required,len=3"`
	AbsAmount    decimal.Decimal `validate:"required"`
}

// Validate checks the request shape and that the amount is strictly positive.
func (r WithdrawRequest) Validate() error {
	if err := runValidation(r); err != nil {
		return err
	}
	if r.AbsAmount.LessThanOrEqual(decimal.Zero) {
		return apperrors.ErrAbsAmountZero
	}
	return nil
}

// DepositRequest asks for a cash deposit into an account.
type DepositRequest struct {
	AccountID    string          `validate:"required"`
	CurrencyCode string          `validate:"required,len=3"`
	AbsAmount    decimal.Decimal `validate:"required"`
}

// Validate checks the request shape and that the amount is strictly positive.
func (r DepositRequest) Validate() error {
	if err := runValidation(r); err != nil {
		return err
	}
	if r.AbsAmount.LessThanOrEqual(decimal.Zero) {
		return apperrors.ErrAbsAmountZero
	}
	return nil
}
