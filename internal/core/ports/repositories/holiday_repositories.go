package repositories

import (
	"context"
	"time"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
)

// HolidayReader defines read operations for the holiday calendar
type HolidayReader interface {
	// FindHoliday retrieves the holiday registered on the given day, or
	// apperrors.ErrNotFound when the day is a business day.
	FindHoliday(ctx context.Context, day time.Time) (*domain.Holiday, error)

	// FindHolidaysInRange retrieves all holidays with from <= day <= to, ordered by day.
	FindHolidaysInRange(ctx context.Context, from, to time.Time) ([]domain.Holiday, error)
}

// HolidayWriter defines write operations for the holiday calendar
type HolidayWriter interface {
	// SaveHolidays registers holidays, replacing any existing rows on the same days.
	SaveHolidays(ctx context.Context, holidays []domain.Holiday, actorID string) error
}

// HolidayRepositoryFacade combines all holiday repository interfaces
type HolidayRepositoryFacade interface {
	HolidayReader
	HolidayWriter
}
