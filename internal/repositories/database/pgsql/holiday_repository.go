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
	"github.com/fincore-dev/asset_ledger_app/internal/utils/stamping"
)

type PgxHolidayRepository struct {
	BaseRepository
	clock func() time.Time
}

// newPgxHolidayRepository creates a new repository for the holiday calendar.
func newPgxHolidayRepository(pool *pgxpool.Pool) portsrepo.HolidayRepositoryFacade {
	return &PgxHolidayRepository{BaseRepository: BaseRepository{Pool: pool}, clock: time.Now}
}

var _ portsrepo.HolidayRepositoryFacade = (*PgxHolidayRepository)(nil)

func toDomainHoliday(m models.Holiday) domain.Holiday {
	h := domain.Holiday{
		HolidayID: m.HolidayID,
		Category:  m.Category,
		Day:       domain.NormalizeDay(m.Day),
		Name:      m.Name,
	}
	h.CreatedAt = m.CreatedAt
	h.CreatedBy = m.CreatedBy
	h.LastUpdatedAt = m.LastUpdatedAt
	h.LastUpdatedBy = m.LastUpdatedBy
	h.Version = m.Version
	return h
}

// FindHoliday retrieves the holiday on the given day, or ErrNotFound.
func (r *PgxHolidayRepository) FindHoliday(ctx context.Context, day time.Time) (*domain.Holiday, error) {
	query := `
		SELECT holiday_id, category, day, name, created_at, created_by, last_updated_at, last_updated_by, version
		FROM holidays
		WHERE day = $1;
	`
	var m models.Holiday
	err := r.q(ctx).QueryRow(ctx, query, domain.NormalizeDay(day)).Scan(
		&m.HolidayID,
		&m.Category,
		&m.Day,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find holiday: %w", err)
	}
	holiday := toDomainHoliday(m)
	return &holiday, nil
}

// FindHolidaysInRange retrieves all holidays between from and to inclusive.
func (r *PgxHolidayRepository) FindHolidaysInRange(ctx context.Context, from, to time.Time) ([]domain.Holiday, error) {
	query := `
		SELECT holiday_id, category, day, name, created_at, created_by, last_updated_at, last_updated_by, version
		FROM holidays
		WHERE day BETWEEN $1 AND $2
		ORDER BY day;
	`
	rows, err := r.q(ctx).Query(ctx, query, domain.NormalizeDay(from), domain.NormalizeDay(to))
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Holiday, error) {
		var m models.Holiday
		err := row.Scan(
			&m.HolidayID,
			&m.Category,
			&m.Day,
			&m.Name,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.Version,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect holidays: %w", err)
	}

	holidays := make([]domain.Holiday, len(ms))
	for i, m := range ms {
		holidays[i] = toDomainHoliday(m)
	}
	return holidays, nil
}

// SaveHolidays registers holidays, replacing existing rows on the same days.
func (r *PgxHolidayRepository) SaveHolidays(ctx context.Context, holidays []domain.Holiday, actorID string) error {
	now := r.clock()
	query := `
		INSERT INTO holidays (holiday_id, category, day, name, created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (day) DO UPDATE SET
			category = EXCLUDED.category,
			name = EXCLUDED.name,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by,
			version = holidays.version + 1;
	`
	for _, holiday := range holidays {
		audit := stamping.ForCreate(holiday.AuditFields, actorID, now)
		_, err := r.q(ctx).Exec(ctx, query,
			holiday.HolidayID,
			holiday.Category,
			domain.NormalizeDay(holiday.Day),
			holiday.Name,
			audit.CreatedAt,
			audit.CreatedBy,
			audit.LastUpdatedAt,
			audit.LastUpdatedBy,
			audit.Version,
		)
		if err != nil {
			return fmt.Errorf("failed to save holiday on %s: %w", holiday.Day.Format("2006-01-02"), err)
		}
	}
	return nil
}
