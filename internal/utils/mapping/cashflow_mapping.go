package mapping

import (
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	"github.com/fincore-dev/asset_ledger_app/internal/models"
)

// ToModelCashflow converts a domain Cashflow to a model Cashflow
func ToModelCashflow(d domain.Cashflow) models.Cashflow {
	return models.Cashflow{
		CashflowID:   d.CashflowID,
		AccountID:    d.AccountID,
		CurrencyCode: d.CurrencyCode,
		Amount:       d.Amount,
		CashflowType: string(d.CashflowType),
		Remark:       d.Remark,
		EventDay:     d.EventDay,
		EventAt:      d.EventAt,
		ValueDay:     d.ValueDay,
		StatusType:   string(d.StatusType),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashflow converts a model Cashflow to a domain Cashflow
func ToDomainCashflow(m models.Cashflow) domain.Cashflow {
	return domain.Cashflow{
		CashflowID:   m.CashflowID,
		AccountID:    m.AccountID,
		CurrencyCode: m.CurrencyCode,
		Amount:       m.Amount,
		CashflowType: domain.CashflowType(m.CashflowType),
		Remark:       m.Remark,
		EventDay:     m.EventDay,
		EventAt:      m.EventAt,
		ValueDay:     m.ValueDay,
		StatusType:   domain.ActionStatusType(m.StatusType),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCashflowSlice converts a slice of model Cashflows to domain Cashflows
func ToDomainCashflowSlice(ms []models.Cashflow) []domain.Cashflow {
	ds := make([]domain.Cashflow, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashflow(m)
	}
	return ds
}
