package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no activity exists for the requested id.
var ErrNotFound = errors.New("store: activity not found")

// ValidationError describes a rejected payload field. The prior state is
// left untouched whenever one of these is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("store: invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a payload validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
