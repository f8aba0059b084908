package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
)

const holidayCacheYears = 8

type CachedHolidayRepository struct {
	inner portsrepo.HolidayRepositoryFacade
	years *expirable.LRU[int, map[time.Time]domain.Holiday]
}

// NewCachedHolidayRepository decorates a holiday repository with a per-year
// read-through cache. Business day walking probes one day at a time, so the
// whole year is loaded on the first miss and the negative lookups become
// in-memory map misses.
func NewCachedHolidayRepository(inner portsrepo.HolidayRepositoryFacade, ttl time.Duration) *CachedHolidayRepository {
	return &CachedHolidayRepository{
		inner: inner,
		years: expirable.NewLRU[int, map[time.Time]domain.Holiday](holidayCacheYears, nil, ttl),
	}
}

var _ portsrepo.HolidayRepositoryFacade = (*CachedHolidayRepository)(nil)

func (r *CachedHolidayRepository) yearHolidays(ctx context.Context, year int) (map[time.Time]domain.Holiday, error) {
	if byDay, ok := r.years.Get(year); ok {
		return byDay, nil
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	holidays, err := r.inner.FindHolidaysInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byDay := make(map[time.Time]domain.Holiday, len(holidays))
	for _, holiday := range holidays {
		byDay[domain.NormalizeDay(holiday.Day)] = holiday
	}
	r.years.Add(year, byDay)
	return byDay, nil
}

func (r *CachedHolidayRepository) FindHoliday(ctx context.Context, day time.Time) (*domain.Holiday, error) {
	normalized := domain.NormalizeDay(day)
	byDay, err := r.yearHolidays(ctx, normalized.Year())
	if err != nil {
		return nil, err
	}
	holiday, ok := byDay[normalized]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &holiday, nil
}

func (r *CachedHolidayRepository) FindHolidaysInRange(ctx context.Context, from, to time.Time) ([]domain.Holiday, error) {
	return r.inner.FindHolidaysInRange(ctx, from, to)
}

func (r *CachedHolidayRepository) SaveHolidays(ctx context.Context, holidays []domain.Holiday, actorID string) error {
	if err := r.inner.SaveHolidays(ctx, holidays, actorID); err != nil {
		return err
	}
	for _, holiday := range holidays {
		r.years.Remove(holiday.Day.Year())
	}
	return nil
}
