package apperrors

// ValidationError is a recoverable business-rule violation. It carries a message
// key (resolved to user-facing text by the delivery layer) and the field the rule
// applies to. ValidationError values are package-level sentinels so callers can
// match them with errors.Is.
type ValidationError struct {
	Key   string
	Field string
}

func (e *ValidationError) Error() string {
	return e.Key
}

// Unwrap lets errors.Is(err, ErrValidation) match any business-rule failure.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError with the given message key and field.
func NewValidationError(key, field string) *ValidationError {
	return &ValidationError{Key: key, Field: field}
}

// Business rule failures raised by the asset ledger core.
var (
	// ErrAbsAmountZero rejects a cash-in/out request whose absolute amount is not positive.
	ErrAbsAmountZero = NewValidationError("error.CashInOut.absAmountZero", "absAmount")
	// ErrWithdrawAmount rejects a withdrawal that exceeds the withdrawable position.
	ErrWithdrawAmount = NewValidationError("error.CashInOut.withdrawAmount", "absAmount")
	// ErrActionUnprocessing rejects a lifecycle transition from a status that does not allow it.
	ErrActionUnprocessing = NewValidationError("error.ActionStatusType.unprocessing", "statusType")
	// ErrBeforeEventDay rejects processing a request before its event day.
	ErrBeforeEventDay = NewValidationError("error.CashInOut.beforeEventDay", "eventDay")
	// ErrAfterEqualsEventDay rejects cancelling a request on or after its event day.
	ErrAfterEqualsEventDay = NewValidationError("error.CashInOut.afterEqualsEventDay", "eventDay")
	// ErrAfterValueDay rejects registering a cashflow whose value day is already past.
	ErrAfterValueDay = NewValidationError("error.Cashflow.afterValueDay", "valueDay")
	// ErrRealizeDay rejects realizing a cashflow before its value day.
	ErrRealizeDay = NewValidationError("error.Cashflow.realizeDay", "valueDay")
	// ErrStatusType rejects re-realizing a cashflow that is already processed or cancelled.
	ErrStatusType = NewValidationError("error.Cashflow.statusType", "statusType")
)
