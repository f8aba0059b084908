package pgsql

import (
	"context"
	"database/sql"
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

type PgxCashInOutRepository struct {
	BaseRepository
}

// newPgxCashInOutRepository creates a new repository for cash in/out requests.
func newPgxCashInOutRepository(pool *pgxpool.Pool) portsrepo.CashInOutRepositoryFacade {
	return &PgxCashInOutRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashInOutRepositoryFacade = (*PgxCashInOutRepository)(nil)

const cashInOutColumns = `cash_in_out_id, account_id, currency_code, abs_amount, withdrawal,
	request_day, request_at, event_day, value_day,
	target_fi_code, target_fi_account_id, self_fi_code, self_fi_account_id,
	status_type, cashflow_id,
	created_at, created_by, last_updated_at, last_updated_by, version`

func scanCashInOut(row pgx.Row) (models.CashInOut, error) {
	var m models.CashInOut
	err := row.Scan(
		&m.CashInOutID,
		&m.AccountID,
		&m.CurrencyCode,
		&m.AbsAmount,
		&m.Withdrawal,
		&m.RequestDay,
		&m.RequestAt,
		&m.EventDay,
		&m.ValueDay,
		&m.TargetFiCode,
		&m.TargetFiAccountID,
		&m.SelfFiCode,
		&m.SelfFiAccountID,
		&m.StatusType,
		&m.CashflowID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	return m, err
}

func collectCashInOuts(rows pgx.Rows) ([]domain.CashInOut, error) {
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CashInOut, error) {
		return scanCashInOut(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect cash in/outs: %w", err)
	}
	return mapping.ToDomainCashInOutSlice(ms), nil
}

// FindCashInOutByID retrieves a cash in/out request by its ID.
func (r *PgxCashInOutRepository) FindCashInOutByID(ctx context.Context, cashInOutID string) (*domain.CashInOut, error) {
	query := `
		SELECT ` + cashInOutColumns + `
		FROM cash_in_outs
		WHERE cash_in_out_id = $1;
	`
	m, err := scanCashInOut(r.q(ctx).QueryRow(ctx, query, cashInOutID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash in/out %s: %w", cashInOutID, err)
	}
	cio := mapping.ToDomainCashInOut(m)
	return &cio, nil
}

// FindUnprocessedCashInOutsByEventDay retrieves requests due exactly on the
// given event day that still await processing or ended in error. The window is
// a single day so a stale errored request whose value day has passed is not
// re-fed to every closing run.
func (r *PgxCashInOutRepository) FindUnprocessedCashInOutsByEventDay(ctx context.Context, eventDay time.Time) ([]domain.CashInOut, error) {
	query := `
		SELECT ` + cashInOutColumns + `
		FROM cash_in_outs
		WHERE event_day = $1 AND status_type = ANY($2)
		ORDER BY cash_in_out_id;
	`
	rows, err := r.q(ctx).Query(ctx, query,
		domain.NormalizeDay(eventDay), statusTypeStrings(domain.UnprocessingStatuses()))
	if err != nil {
		return nil, fmt.Errorf("failed to query unprocessed cash in/outs: %w", err)
	}
	defer rows.Close()
	return collectCashInOuts(rows)
}

// FindUnprocessedCashInOutsByAccount retrieves the account's non-terminal
// requests in one direction.
func (r *PgxCashInOutRepository) FindUnprocessedCashInOutsByAccount(ctx context.Context, accountID, currencyCode string, withdrawal bool) ([]domain.CashInOut, error) {
	query := `
		SELECT ` + cashInOutColumns + `
		FROM cash_in_outs
		WHERE account_id = $1 AND currency_code = $2 AND withdrawal = $3 AND status_type = ANY($4)
		ORDER BY request_at, cash_in_out_id;
	`
	rows, err := r.q(ctx).Query(ctx, query,
		accountID, currencyCode, withdrawal, statusTypeStrings(domain.UnprocessedStatuses()))
	if err != nil {
		return nil, fmt.Errorf("failed to query cash in/outs by account: %w", err)
	}
	defer rows.Close()
	return collectCashInOuts(rows)
}

// FindCashInOuts retrieves requests matching the search criteria.
func (r *PgxCashInOutRepository) FindCashInOuts(ctx context.Context, criteria portsrepo.FindCashInOutCriteria) ([]domain.CashInOut, error) {
	query := `
		SELECT ` + cashInOutColumns + `
		FROM cash_in_outs
		WHERE ($1 = '' OR currency_code = $1)
		  AND (cardinality($2::text[]) = 0 OR status_type = ANY($2))
		  AND ($3::timestamptz IS NULL OR last_updated_at >= $3)
		  AND ($4::timestamptz IS NULL OR last_updated_at < $4)
		ORDER BY request_at, cash_in_out_id;
	`
	var fromDay, toDay *time.Time
	if !criteria.UpdFromDay.IsZero() {
		d := domain.NormalizeDay(criteria.UpdFromDay)
		fromDay = &d
	}
	if !criteria.UpdToDay.IsZero() {
		// Upper bound is exclusive at the start of the following day.
		d := domain.NormalizeDay(criteria.UpdToDay).AddDate(0, 0, 1)
		toDay = &d
	}
	rows, err := r.q(ctx).Query(ctx, query,
		criteria.CurrencyCode, statusTypeStrings(criteria.StatusTypes), fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash in/outs: %w", err)
	}
	defer rows.Close()
	return collectCashInOuts(rows)
}

// SaveCashInOut inserts a new request row.
func (r *PgxCashInOutRepository) SaveCashInOut(ctx context.Context, cashInOut domain.CashInOut, actorID string, now time.Time) error {
	cashInOut.AuditFields = stamping.ForCreate(cashInOut.AuditFields, actorID, now)
	m := mapping.ToModelCashInOut(cashInOut)

	query := `
		INSERT INTO cash_in_outs (cash_in_out_id, account_id, currency_code, abs_amount, withdrawal,
			request_day, request_at, event_day, value_day,
			target_fi_code, target_fi_account_id, self_fi_code, self_fi_account_id,
			status_type, cashflow_id,
			created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.q(ctx).Exec(ctx, query,
		m.CashInOutID,
		m.AccountID,
		m.CurrencyCode,
		m.AbsAmount,
		m.Withdrawal,
		domain.NormalizeDay(m.RequestDay),
		m.RequestAt,
		domain.NormalizeDay(m.EventDay),
		domain.NormalizeDay(m.ValueDay),
		m.TargetFiCode,
		m.TargetFiAccountID,
		m.SelfFiCode,
		m.SelfFiAccountID,
		m.StatusType,
		m.CashflowID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to save cash in/out %s: %w", m.CashInOutID, err)
	}
	return nil
}

// UpdateCashInOut moves a request to a new status, attaching the produced
// cashflow when one exists.
func (r *PgxCashInOutRepository) UpdateCashInOut(ctx context.Context, cashInOutID string, status domain.ActionStatusType, cashflowID string, actorID string, now time.Time) error {
	query := `
		UPDATE cash_in_outs
		SET status_type = $2, cashflow_id = $3, last_updated_at = $4, last_updated_by = $5, version = version + 1
		WHERE cash_in_out_id = $1;
	`
	cfID := sql.NullString{String: cashflowID, Valid: cashflowID != ""}
	tag, err := r.q(ctx).Exec(ctx, query, cashInOutID, string(status), cfID, now, actorID)
	if err != nil {
		return fmt.Errorf("failed to update cash in/out %s: %w", cashInOutID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
