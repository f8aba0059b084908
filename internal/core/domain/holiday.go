package domain

import "time"

// Holiday is a registered non-business day.
type Holiday struct {
	HolidayID string    `json:"holidayID"` // Primary Key (e.g., UUID)
	Category  string    `json:"category"`  // calendar category (default "holiday")
	Day       time.Time `json:"day"`       // the calendar day
	Name      string    `json:"name"`      // e.g., "New Year's Day"
	AuditFields
}
