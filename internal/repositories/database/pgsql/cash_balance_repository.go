package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	"github.com/fincore-dev/asset_ledger_app/internal/models"
	"github.com/fincore-dev/asset_ledger_app/internal/utils/mapping"
	"github.com/fincore-dev/asset_ledger_app/internal/utils/stamping"
)

type PgxCashBalanceRepository struct {
	BaseRepository
}

// newPgxCashBalanceRepository creates a new repository for cash balances.
func newPgxCashBalanceRepository(pool *pgxpool.Pool) portsrepo.CashBalanceRepositoryFacade {
	return &PgxCashBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashBalanceRepositoryFacade = (*PgxCashBalanceRepository)(nil)

const cashBalanceColumns = `balance_id, account_id, currency_code, base_day, amount,
	created_at, created_by, last_updated_at, last_updated_by, version`

func scanCashBalance(row pgx.Row) (models.CashBalance, error) {
	var m models.CashBalance
	err := row.Scan(
		&m.BalanceID,
		&m.AccountID,
		&m.CurrencyCode,
		&m.BaseDay,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	return m, err
}

// FindCashBalanceByDay retrieves the balance row for exactly the given base day.
func (r *PgxCashBalanceRepository) FindCashBalanceByDay(ctx context.Context, accountID, currencyCode string, baseDay time.Time) (*domain.CashBalance, error) {
	query := `
		SELECT ` + cashBalanceColumns + `
		FROM cash_balances
		WHERE account_id = $1 AND currency_code = $2 AND base_day = $3;
	`
	m, err := scanCashBalance(r.q(ctx).QueryRow(ctx, query, accountID, currencyCode, domain.NormalizeDay(baseDay)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash balance: %w", err)
	}
	balance := mapping.ToDomainCashBalance(m)
	return &balance, nil
}

// FindLatestCashBalanceBefore retrieves the most recent balance row strictly
// before the given base day.
func (r *PgxCashBalanceRepository) FindLatestCashBalanceBefore(ctx context.Context, accountID, currencyCode string, baseDay time.Time) (*domain.CashBalance, error) {
	query := `
		SELECT ` + cashBalanceColumns + `
		FROM cash_balances
		WHERE account_id = $1 AND currency_code = $2 AND base_day < $3
		ORDER BY base_day DESC
		LIMIT 1;
	`
	m, err := scanCashBalance(r.q(ctx).QueryRow(ctx, query, accountID, currencyCode, domain.NormalizeDay(baseDay)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest cash balance: %w", err)
	}
	balance := mapping.ToDomainCashBalance(m)
	return &balance, nil
}

// SaveCashBalance inserts a new balance row.
func (r *PgxCashBalanceRepository) SaveCashBalance(ctx context.Context, balance domain.CashBalance, actorID string, now time.Time) error {
	balance.AuditFields = stamping.ForCreate(balance.AuditFields, actorID, now)
	m := mapping.ToModelCashBalance(balance)

	query := `
		INSERT INTO cash_balances (balance_id, account_id, currency_code, base_day, amount,
			created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.q(ctx).Exec(ctx, query,
		m.BalanceID,
		m.AccountID,
		m.CurrencyCode,
		domain.NormalizeDay(m.BaseDay),
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to save cash balance %s: %w", m.BalanceID, err)
	}
	return nil
}

// UpdateCashBalanceAmount replaces the amount of an existing balance row.
func (r *PgxCashBalanceRepository) UpdateCashBalanceAmount(ctx context.Context, balanceID string, amount decimal.Decimal, actorID string, now time.Time) error {
	query := `
		UPDATE cash_balances
		SET amount = $2, last_updated_at = $3, last_updated_by = $4, version = version + 1
		WHERE balance_id = $1;
	`
	tag, err := r.q(ctx).Exec(ctx, query, balanceID, amount, now, actorID)
	if err != nil {
		return fmt.Errorf("failed to update cash balance %s: %w", balanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
