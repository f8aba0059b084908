package services

import (
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/fincore-dev/asset_ledger_app/internal/core/ports/services"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/config"
	"github.com/fincore-dev/asset_ledger_app/internal/platform/lock"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locks *lock.IdLockManager) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	coordinator := NewTxCoordinator(repos.TxManager, locks)

	// Business day first since nearly everything depends on it
	container.BusinessDay = NewBusinessDayService(repos.AppSettingRepo, repos.HolidayRepo)

	container.CashBalance = NewCashBalanceService(repos.CashBalanceRepo, repos.CurrencyRepo, container.BusinessDay)
	container.Cashflow = NewCashflowService(repos.CashflowRepo, container.CashBalance, container.BusinessDay, coordinator)
	container.Asset = NewAssetService(container.CashBalance, repos.CashflowRepo, repos.CashInOutRepo)
	container.CashInOut = NewCashInOutService(repos.CashInOutRepo, repos.FiAccountRepo, container.Asset, container.Cashflow, container.BusinessDay, coordinator)
	container.Batch = NewBatchService(container.CashInOut, container.Cashflow, repos.CashflowRepo, container.BusinessDay, cfg.BatchActorID)

	return container
}
