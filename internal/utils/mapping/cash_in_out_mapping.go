package mapping

import (
	"database/sql"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	"github.com/fincore-dev/asset_ledger_app/internal/models"
)

// ToModelCashInOut converts a domain CashInOut to a model CashInOut
func ToModelCashInOut(d domain.CashInOut) models.CashInOut {
	return models.CashInOut{
		CashInOutID:       d.CashInOutID,
		AccountID:         d.AccountID,
		CurrencyCode:      d.CurrencyCode,
		AbsAmount:         d.AbsAmount,
		Withdrawal:        d.Withdrawal,
		RequestDay:        d.RequestDay,
		RequestAt:         d.RequestAt,
		EventDay:          d.EventDay,
		ValueDay:          d.ValueDay,
		TargetFiCode:      d.TargetFiCode,
		TargetFiAccountID: d.TargetFiAccountID,
		SelfFiCode:        d.SelfFiCode,
		SelfFiAccountID:   d.SelfFiAccountID,
		StatusType:        string(d.StatusType),
		CashflowID:        sql.NullString{String: d.CashflowID, Valid: d.CashflowID != ""},
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashInOut converts a model CashInOut to a domain CashInOut
func ToDomainCashInOut(m models.CashInOut) domain.CashInOut {
	return domain.CashInOut{
		CashInOutID:       m.CashInOutID,
		AccountID:         m.AccountID,
		CurrencyCode:      m.CurrencyCode,
		AbsAmount:         m.AbsAmount,
		Withdrawal:        m.Withdrawal,
		RequestDay:        m.RequestDay,
		RequestAt:         m.RequestAt,
		EventDay:          m.EventDay,
		ValueDay:          m.ValueDay,
		TargetFiCode:      m.TargetFiCode,
		TargetFiAccountID: m.TargetFiAccountID,
		SelfFiCode:        m.SelfFiCode,
		SelfFiAccountID:   m.SelfFiAccountID,
		StatusType:        domain.ActionStatusType(m.StatusType),
		CashflowID:        m.CashflowID.String,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCashInOutSlice converts a slice of model CashInOuts to domain CashInOuts
func ToDomainCashInOutSlice(ms []models.CashInOut) []domain.CashInOut {
	ds := make([]domain.CashInOut, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashInOut(m)
	}
	return ds
}
