package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// Stamping happens in the repository layer at save/update time, parameterized
// by the acting user and clock (no implicit interception).
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
	Version       int64     `json:"version"`
}
