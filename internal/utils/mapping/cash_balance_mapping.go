package mapping

import (
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	"github.com/fincore-dev/asset_ledger_app/internal/models"
)

// ToModelCashBalance converts a domain CashBalance to a model CashBalance
func ToModelCashBalance(d domain.CashBalance) models.CashBalance {
	return models.CashBalance{
		BalanceID:    d.BalanceID,
		AccountID:    d.AccountID,
		CurrencyCode: d.CurrencyCode,
		BaseDay:      d.BaseDay,
		Amount:       d.Amount,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashBalance converts a model CashBalance to a domain CashBalance
func ToDomainCashBalance(m models.CashBalance) domain.CashBalance {
	return domain.CashBalance{
		BalanceID:    m.BalanceID,
		AccountID:    m.AccountID,
		CurrencyCode: m.CurrencyCode,
		BaseDay:      m.BaseDay,
		Amount:       m.Amount,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
