package models

import "time"

// Holiday is a registered non-business day.
type Holiday struct {
	HolidayID string    `db:"holiday_id"`
	Category  string    `db:"category"`
	Day       time.Time `db:"day"`
	Name      string    `db:"name"`
	AuditFields
}
