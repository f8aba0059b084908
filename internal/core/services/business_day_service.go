package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/fincore-dev/asset_ledger_app/internal/core/ports/services"
)

const businessDayLayout = "2006-01-02"

// businessDayService computes business days: calendar days that are neither
// weekends nor registered holidays. The current business day is read from the
// persisted app settings rather than the wall clock, so operations and batch
// runs share one consistent ledger day.
type businessDayService struct {
	settingRepo portsrepo.AppSettingRepositoryFacade
	holidayRepo portsrepo.HolidayReader // nil means weekends are the only non-business days
	clock       func() time.Time
}

// BusinessDayOption customizes the business day service.
type BusinessDayOption func(*businessDayService)

// WithClock overrides the wall clock, used by tests.
func WithClock(clock func() time.Time) BusinessDayOption {
	return func(s *businessDayService) { s.clock = clock }
}

// NewBusinessDayService creates the business day calendar.
func NewBusinessDayService(settingRepo portsrepo.AppSettingRepositoryFacade, holidayRepo portsrepo.HolidayReader, opts ...BusinessDayOption) portssvc.BusinessDaySvcFacade {
	s := &businessDayService{
		settingRepo: settingRepo,
		holidayRepo: holidayRepo,
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.BusinessDaySvcFacade = (*businessDayService)(nil)

// Day returns the current business day. When no day has been persisted yet the
// wall-clock date is used.
func (s *businessDayService) Day(ctx context.Context) (time.Time, error) {
	setting, err := s.settingRepo.FindAppSetting(ctx, domain.SettingBusinessDay)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.NormalizeDay(s.clock()), nil
		}
		return time.Time{}, fmt.Errorf("failed to read business day setting: %w", err)
	}
	day, err := time.Parse(businessDayLayout, setting.Value)
	if err != nil {
		return time.Time{}, apperrors.NewAppError(500, "malformed business day setting "+setting.Value, err)
	}
	return domain.NormalizeDay(day), nil
}

// Now returns the current business day paired with the system timestamp.
func (s *businessDayService) Now(ctx context.Context) (domain.TimePoint, error) {
	day, err := s.Day(ctx)
	if err != nil {
		return domain.TimePoint{}, err
	}
	return domain.NewTimePoint(day, s.clock()), nil
}

// DayN walks n business days from the current day.
func (s *businessDayService) DayN(ctx context.Context, n int) (time.Time, error) {
	day, err := s.Day(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return s.DayFrom(ctx, day, n)
}

// DayFrom walks n business days from base, advancing one calendar day at a
// time and skipping weekends and registered holidays. Negative n walks
// backward; n == 0 returns base unchanged.
func (s *businessDayService) DayFrom(ctx context.Context, base time.Time, n int) (time.Time, error) {
	day := domain.NormalizeDay(base)
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for i := 0; i < n; i++ {
		for {
			day = day.AddDate(0, 0, step)
			business, err := s.isBusinessDay(ctx, day)
			if err != nil {
				return time.Time{}, err
			}
			if business {
				break
			}
		}
	}
	return day, nil
}

// ForwardDay moves the persisted business day to the next business day.
func (s *businessDayService) ForwardDay(ctx context.Context, actorID string) (time.Time, error) {
	next, err := s.DayN(ctx, 1)
	if err != nil {
		return time.Time{}, err
	}
	setting := domain.AppSetting{
		SettingID: domain.SettingBusinessDay,
		Category:  "system",
		Value:     next.Format(businessDayLayout),
	}
	if err := s.settingRepo.SaveAppSetting(ctx, setting, actorID); err != nil {
		return time.Time{}, fmt.Errorf("failed to persist forwarded business day: %w", err)
	}
	return next, nil
}

func (s *businessDayService) isBusinessDay(ctx context.Context, day time.Time) (bool, error) {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return false, nil
	}
	if s.holidayRepo == nil {
		return true, nil
	}
	_, err := s.holidayRepo.FindHoliday(ctx, day)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("failed to look up holiday for %s: %w", day.Format(businessDayLayout), err)
	}
	return false, nil
}
