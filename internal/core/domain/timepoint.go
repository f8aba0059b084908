package domain

import "time"

// TimePoint pairs the current business day with the wall-clock timestamp at
// which an operation occurs. It is immutable; all comparisons are calendar-day
// comparisons against the business day.
type TimePoint struct {
	Day       time.Time // business day, normalized to midnight UTC
	Timestamp time.Time // system timestamp
}

// NewTimePoint builds a TimePoint, normalizing the business day.
func NewTimePoint(day time.Time, timestamp time.Time) TimePoint {
	return TimePoint{Day: NormalizeDay(day), Timestamp: timestamp}
}

// NormalizeDay truncates a time to its calendar day in UTC.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EqualsDay reports whether the business day is the same calendar day as target.
func (tp TimePoint) EqualsDay(target time.Time) bool {
	return tp.Day.Equal(NormalizeDay(target))
}

// BeforeDay reports whether the business day is strictly before target.
func (tp TimePoint) BeforeDay(target time.Time) bool {
	return tp.Day.Before(NormalizeDay(target))
}

// AfterDay reports whether the business day is strictly after target.
func (tp TimePoint) AfterDay(target time.Time) bool {
	return tp.Day.After(NormalizeDay(target))
}

// BeforeEqualsDay reports whether the business day is on or before target.
func (tp TimePoint) BeforeEqualsDay(target time.Time) bool {
	return !tp.AfterDay(target)
}

// AfterEqualsDay reports whether the business day is on or after target.
func (tp TimePoint) AfterEqualsDay(target time.Time) bool {
	return !tp.BeforeDay(target)
}
