package projection

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when no revenue streams are supplied.
var ErrEmptyInput = errors.New("no revenue streams supplied")

// InvalidInputError reports a numeric parameter that violates its constraint.
// It is detected before any computation; the caller never sees partial results.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...interface{}) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
