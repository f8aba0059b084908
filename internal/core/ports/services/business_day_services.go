package services

import (
	"context"
	"time"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
)

// BusinessDayReaderSvc supplies the current business day and derived days.
type BusinessDayReaderSvc interface {
	// Now returns the current business day paired with the system timestamp.
	Now(ctx context.Context) (domain.TimePoint, error)

	// Day returns the current business day.
	Day(ctx context.Context) (time.Time, error)

	// DayN walks n business days from the current day, skipping weekends and
	// registered holidays. n may be negative; n == 0 returns Day.
	DayN(ctx context.Context, n int) (time.Time, error)

	// DayFrom walks n business days from an arbitrary base day.
	DayFrom(ctx context.Context, base time.Time, n int) (time.Time, error)
}

// BusinessDayWriterSvc advances the persisted business day.
type BusinessDayWriterSvc interface {
	// ForwardDay moves the current business day to the next business day.
	ForwardDay(ctx context.Context, actorID string) (time.Time, error)
}

// BusinessDaySvcFacade combines business-day calendar interfaces
type BusinessDaySvcFacade interface {
	BusinessDayReaderSvc
	BusinessDayWriterSvc
}
