// Package apperr defines the error taxonomy shared by the store,
// repositories and lifecycle engine. Handlers map these onto HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by updates and lookups on an absent id.
var ErrNotFound = errors.New("not found")

// ErrNotApplicable is returned by lifecycle operations attempted on an
// ineligible record, e.g. converting something that is not a request.
var ErrNotApplicable = errors.New("not applicable")

// StorageError wraps a serialization or write failure at the store layer.
type StorageError struct {
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure on collection %q: %v", e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ValidationError reports malformed create/update input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorage reports whether err is a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
