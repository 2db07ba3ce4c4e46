package service

import (
	"errors"
	"fmt"

	"go-fichas-ws/pkg/validator"
)

// Shared error classes. Handlers map these onto the status-code convention:
// validation/bad input -> 400, auth -> 401, missing rows -> 404,
// duplicates -> 409, everything else -> 500.
var (
	ErrValidation = errors.New("validation failed")
	ErrBadDate    = errors.New("invalid date, expected YYYY-MM-DD")
)

func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
}
