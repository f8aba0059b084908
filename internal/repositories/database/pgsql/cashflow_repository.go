package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	"github.com/fincore-dev/asset_ledger_app/internal/models"
	"github.com/fincore-dev/asset_ledger_app/internal/utils/mapping"
	"github.com/fincore-dev/asset_ledger_app/internal/utils/stamping"
)

type PgxCashflowRepository struct {
	BaseRepository
}

// newPgxCashflowRepository creates a new repository for cashflows.
func newPgxCashflowRepository(pool *pgxpool.Pool) portsrepo.CashflowRepositoryFacade {
	return &PgxCashflowRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashflowRepositoryFacade = (*PgxCashflowRepository)(nil)

const cashflowColumns = `cashflow_id, account_id, currency_code, amount, cashflow_type, remark,
	event_day, event_at, value_day, status_type,
	created_at, created_by, last_updated_at, last_updated_by, version`

func scanCashflow(row pgx.Row) (models.Cashflow, error) {
	var m models.Cashflow
	err := row.Scan(
		&m.CashflowID,
		&m.AccountID,
		&m.CurrencyCode,
		&m.Amount,
		&m.CashflowType,
		&m.Remark,
		&m.EventDay,
		&m.EventAt,
		&m.ValueDay,
		&m.StatusType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	return m, err
}

func collectCashflows(rows pgx.Rows) ([]domain.Cashflow, error) {
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Cashflow, error) {
		return scanCashflow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect cashflows: %w", err)
	}
	return mapping.ToDomainCashflowSlice(ms), nil
}

func statusTypeStrings(statuses []domain.ActionStatusType) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// FindCashflowByID retrieves a cashflow by its ID.
func (r *PgxCashflowRepository) FindCashflowByID(ctx context.Context, cashflowID string) (*domain.Cashflow, error) {
	query := `
		SELECT ` + cashflowColumns + `
		FROM cashflows
		WHERE cashflow_id = $1;
	`
	m, err := scanCashflow(r.q(ctx).QueryRow(ctx, query, cashflowID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cashflow %s: %w", cashflowID, err)
	}
	cashflow := mapping.ToDomainCashflow(m)
	return &cashflow, nil
}

// FindUnrealizedCashflows retrieves the account's cashflows that are not yet
// reflected in a balance and whose value day is on or before asOfDay.
func (r *PgxCashflowRepository) FindUnrealizedCashflows(ctx context.Context, accountID, currencyCode string, asOfDay time.Time) ([]domain.Cashflow, error) {
	query := `
		SELECT ` + cashflowColumns + `
		FROM cashflows
		WHERE account_id = $1 AND currency_code = $2 AND value_day <= $3 AND status_type = ANY($4)
		ORDER BY value_day, cashflow_id;
	`
	rows, err := r.q(ctx).Query(ctx, query,
		accountID, currencyCode, domain.NormalizeDay(asOfDay), statusTypeStrings(domain.UnprocessingStatuses()))
	if err != nil {
		return nil, fmt.Errorf("failed to query unrealized cashflows: %w", err)
	}
	defer rows.Close()
	return collectCashflows(rows)
}

// FindCashflowsToRealize retrieves all cashflows due on or before valueDay
// that have not reached a terminal status.
func (r *PgxCashflowRepository) FindCashflowsToRealize(ctx context.Context, valueDay time.Time) ([]domain.Cashflow, error) {
	query := `
		SELECT ` + cashflowColumns + `
		FROM cashflows
		WHERE value_day <= $1 AND status_type = ANY($2)
		ORDER BY value_day, cashflow_id;
	`
	rows, err := r.q(ctx).Query(ctx, query,
		domain.NormalizeDay(valueDay), statusTypeStrings(domain.UnprocessedStatuses()))
	if err != nil {
		return nil, fmt.Errorf("failed to query cashflows to realize: %w", err)
	}
	defer rows.Close()
	return collectCashflows(rows)
}

// SaveCashflow inserts a new cashflow row.
func (r *PgxCashflowRepository) SaveCashflow(ctx context.Context, cashflow domain.Cashflow, actorID string, now time.Time) error {
	cashflow.AuditFields = stamping.ForCreate(cashflow.AuditFields, actorID, now)
	m := mapping.ToModelCashflow(cashflow)

	query := `
		INSERT INTO cashflows (cashflow_id, account_id, currency_code, amount, cashflow_type, remark,
			event_day, event_at, value_day, status_type,
			created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.q(ctx).Exec(ctx, query,
		m.CashflowID,
		m.AccountID,
		m.CurrencyCode,
		m.Amount,
		m.CashflowType,
		m.Remark,
		domain.NormalizeDay(m.EventDay),
		m.EventAt,
		domain.NormalizeDay(m.ValueDay),
		m.StatusType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to save cashflow %s: %w", m.CashflowID, err)
	}
	return nil
}

// UpdateCashflowStatus moves a cashflow to a new status.
func (r *PgxCashflowRepository) UpdateCashflowStatus(ctx context.Context, cashflowID string, status domain.ActionStatusType, actorID string, now time.Time) error {
	query := `
		UPDATE cashflows
		SET status_type = $2, last_updated_at = $3, last_updated_by = $4, version = version + 1
		WHERE cashflow_id = $1;
	`
	tag, err := r.q(ctx).Exec(ctx, query, cashflowID, string(status), now, actorID)
	if err != nil {
		return fmt.Errorf("failed to update cashflow %s: %w", cashflowID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
