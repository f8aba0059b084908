package services

import "context"

// BatchSvcFacade exposes the externally scheduled batch entry points. Both are
// safe to re-run: entities already in a terminal status are skipped by their
// status guards. Per-entity failures are converted into persisted ERROR states;
// only a failure of the run itself (e.g. the due-entity query) is returned.
type BatchSvcFacade interface {
	// ClosingCashOut processes all transfer requests whose event day is today.
	ClosingCashOut(ctx context.Context) error

	// RealizeCashflow settles all cashflows whose value day is today.
	RealizeCashflow(ctx context.Context) error
}
