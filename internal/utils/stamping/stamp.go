package stamping

import (
	"time"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
)

// ForCreate stamps audit fields on a newly persisted entity. It is invoked
// explicitly by the repository layer at save time, parameterized by the acting
// user and clock.
func ForCreate(audit domain.AuditFields, actorID string, now time.Time) domain.AuditFields {
	audit.CreatedAt = now
	audit.CreatedBy = actorID
	audit.LastUpdatedAt = now
	audit.LastUpdatedBy = actorID
	audit.Version = 1
	return audit
}

// ForUpdate stamps audit fields on an updated entity and bumps its version.
func ForUpdate(audit domain.AuditFields, actorID string, now time.Time) domain.AuditFields {
	audit.LastUpdatedAt = now
	audit.LastUpdatedBy = actorID
	audit.Version++
	return audit
}
