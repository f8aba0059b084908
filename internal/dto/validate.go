package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
)

// validate is the shared validator instance. Requests are validated explicitly
// at construction time; there is no binding framework in front of the core.
var validate = validator.New(validator.WithRequiredStructEnabled())

// runValidation maps validator field errors onto the app's validation failure
// type so callers see one error taxonomy regardless of which check fired.
func runValidation(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		return apperrors.NewValidationError("error.request."+fe.Tag(), field)
	}
	return err
}
