package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all PostgreSQL-backed repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CashBalanceRepo: newPgxCashBalanceRepository(pool),
		CashflowRepo:    newPgxCashflowRepository(pool),
		CashInOutRepo:   newPgxCashInOutRepository(pool),
		CurrencyRepo:    newPgxCurrencyRepository(pool),
		HolidayRepo:     newPgxHolidayRepository(pool),
		FiAccountRepo:   newPgxFiAccountRepository(pool),
		AppSettingRepo:  newPgxAppSettingRepository(pool),
		TxManager:       &BaseRepository{Pool: pool},
	}
}
