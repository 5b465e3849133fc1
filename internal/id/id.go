// Package id generates and validates the opaque identifiers used for
// boards, messages and polls. UUIDv7 gives global uniqueness plus
// creation-time ordering, so message ids sort in append order.
package id

import (
	"github.com/google/uuid"

	internal_errors "github.com/brainiacs-dev/brainiacs/internal/errors"
)

// New returns a fresh identifier. UUIDv7 generation only fails if the
// system entropy source is broken, which is not recoverable anyway.
func New() string {
	return uuid.Must(uuid.NewV7()).String()
}

// IsValid reports whether s is a well-formed identifier.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Validate returns an InvalidArgument error naming the field when s is
// not a well-formed identifier.
func Validate(s, field string) error {
	if !IsValid(s) {
		return internal_errors.InvalidArgument("Invalid " + field)
	}
	return nil
}
