package errs

import (
	"errors"
	"fmt"
	"strings"
)

// FieldViolation is a single range or constraint breach on a named field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every violation found, never just the first, so a
// caller can surface all problems at once.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrDomainValidation
}

// AsValidationError unwraps err into a *ValidationError if one is present.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// StateError reports an operation attempted against a request whose current
// status does not permit it, including the lost-race case where a concurrent
// transition won first.
type StateError struct {
	Op      string
	Current string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s: request is %s", e.Op, e.Current)
}

func (e *StateError) Is(target error) bool {
	return target == ErrRequestNotPending
}
