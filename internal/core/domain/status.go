package domain

// ActionStatusType is the shared processing status for ledger actions.
type ActionStatusType string

const (
	Unprocessed ActionStatusType = "UNPROCESSED"
	Processing  ActionStatusType = "PROCESSING"
	Processed   ActionStatusType = "PROCESSED"
	Cancelled   ActionStatusType = "CANCELLED"
	StatusError ActionStatusType = "ERROR"
)

// IsFinish reports whether the status is terminal.
func (s ActionStatusType) IsFinish() bool {
	return s == Processed || s == Cancelled
}

// IsUnprocessing reports whether the action may still be acted on.
// PROCESSING is excluded: an action being worked on cannot be transitioned.
func (s ActionStatusType) IsUnprocessing() bool {
	return s == Unprocessed || s == StatusError
}

// IsUnprocessed reports whether the action has not reached a terminal status.
func (s ActionStatusType) IsUnprocessed() bool {
	return s == Unprocessed || s == Processing || s == StatusError
}

// UnprocessedStatuses lists the statuses matched by IsUnprocessed, for queries.
func UnprocessedStatuses() []ActionStatusType {
	return []ActionStatusType{Unprocessed, Processing, StatusError}
}

// UnprocessingStatuses lists the statuses matched by IsUnprocessing, for queries.
func UnprocessingStatuses() []ActionStatusType {
	return []ActionStatusType{Unprocessed, StatusError}
}
