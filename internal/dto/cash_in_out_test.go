package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/dto"
)

func TestWithdrawRequest_Validate(t *testing.T) {
	valid := dto.WithdrawRequest{
		AccountID:    "acc-1",
		CurrencyCode: "JPY",
		AbsAmount:    decimal.NewFromInt(300),
	}

	tests := []struct {
		name    string
		mutate  func(r *dto.WithdrawRequest)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(r *dto.WithdrawRequest) {},
		},
		{
			name:    "missing account",
			mutate:  func(r *dto.WithdrawRequest) { r.AccountID = "" },
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "currency code must be three letters",
			mutate:  func(r *dto.WithdrawRequest) { r.CurrencyCode = "YEN2" },
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "zero amount",
			mutate:  func(r *dto.WithdrawRequest) { r.AbsAmount = decimal.Zero },
			wantErr: apperrors.ErrAbsAmountZero,
		},
		{
			name:    "negative amount",
			mutate:  func(r *dto.WithdrawRequest) { r.AbsAmount = decimal.NewFromInt(-10) },
			wantErr: apperrors.ErrAbsAmountZero,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
