package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	"github.com/fincore-dev/asset_ledger_app/internal/repositories/cache"
)

// --- Mock HolidayRepository ---
type MockHolidayRepository struct {
	mock.Mock
}

func (m *MockHolidayRepository) FindHoliday(ctx context.Context, day time.Time) (*domain.Holiday, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Holiday), args.Error(1)
}

func (m *MockHolidayRepository) FindHolidaysInRange(ctx context.Context, from, to time.Time) ([]domain.Holiday, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holiday), args.Error(1)
}

func (m *MockHolidayRepository) SaveHolidays(ctx context.Context, holidays []domain.Holiday, actorID string) error {
	args := m.Called(ctx, holidays, actorID)
	return args.Error(0)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCachedHolidayRepository_LoadsYearOnce(t *testing.T) {
	inner := new(MockHolidayRepository)
	holiday := domain.Holiday{HolidayID: "h-1", Day: day(2024, time.May, 1), Name: "May Day"}
	inner.On("FindHolidaysInRange", mock.Anything, day(2024, time.January, 1), day(2024, time.December, 31)).
		Return([]domain.Holiday{holiday}, nil).Once()

	cached := cache.NewCachedHolidayRepository(inner, time.Minute)
	ctx := context.Background()

	got, err := cached.FindHoliday(ctx, day(2024, time.May, 1))
	assert.NoError(t, err)
	assert.Equal(t, "h-1", got.HolidayID)

	// Misses inside the loaded year never hit the database.
	_, err = cached.FindHoliday(ctx, day(2024, time.May, 2))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = cached.FindHoliday(ctx, day(2024, time.December, 25))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	inner.AssertExpectations(t)
	inner.AssertNumberOfCalls(t, "FindHolidaysInRange", 1)
}

func TestCachedHolidayRepository_SaveInvalidatesYear(t *testing.T) {
	inner := new(MockHolidayRepository)
	inner.On("FindHolidaysInRange", mock.Anything, day(2024, time.January, 1), day(2024, time.December, 31)).
		Return([]domain.Holiday{}, nil).Once()

	cached := cache.NewCachedHolidayRepository(inner, time.Minute)
	ctx := context.Background()

	_, err := cached.FindHoliday(ctx, day(2024, time.May, 1))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	newHoliday := domain.Holiday{HolidayID: "h-2", Day: day(2024, time.May, 1)}
	inner.On("SaveHolidays", mock.Anything, []domain.Holiday{newHoliday}, "admin").Return(nil).Once()
	assert.NoError(t, cached.SaveHolidays(ctx, []domain.Holiday{newHoliday}, "admin"))

	// The year is reloaded and the new holiday appears.
	inner.On("FindHolidaysInRange", mock.Anything, day(2024, time.January, 1), day(2024, time.December, 31)).
		Return([]domain.Holiday{newHoliday}, nil).Once()
	got, err := cached.FindHoliday(ctx, day(2024, time.May, 1))
	assert.NoError(t, err)
	assert.Equal(t, "h-2", got.HolidayID)

	inner.AssertExpectations(t)
}
