// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package contactmethod

import (
	"errors"
	"fmt"
)

// MalformedInputError reports input that is not structurally valid:
// bytes that do not parse, a top-level value of the wrong shape, or a
// field whose JSON type does not match (a string where a boolean
// belongs).
type MalformedInputError struct {
	// Err is the underlying parser error.
	Err error
}

func (err *MalformedInputError) Error() string {
	return fmt.Sprintf("contactmethod: malformed input: %v", err.Err)
}

func (err *MalformedInputError) Unwrap() error {
	return err.Err
}

// MissingFieldError reports that a field required by the resolved
// variant is absent.
type MissingFieldError struct {
	// Type is the discriminant of the record, or empty when "type"
	// itself is the missing field.
	Type string

	// Field is the wire name of the missing field. Fields inside the
	// sounds list are named with their index, e.g. "sounds[1].file".
	Field string
}

func (err *MissingFieldError) Error() string {
	if err.Type == "" {
		return fmt.Sprintf("contactmethod: missing required field %q", err.Field)
	}
	return fmt.Sprintf("contactmethod: %s: missing required field %q", err.Type, err.Field)
}

// UnknownDiscriminantError reports a "type" value that matches no
// known variant. This usually means the API added a contact method
// kind this package does not understand yet.
type UnknownDiscriminantError struct {
	Type string
}

func (err *UnknownDiscriminantError) Error() string {
	return fmt.Sprintf("contactmethod: unknown type %q", err.Type)
}

// IsMalformedInput reports whether err is or wraps a
// [MalformedInputError].
func IsMalformedInput(err error) bool {
	var malformed *MalformedInputError
	return errors.As(err, &malformed)
}

// IsMissingField reports whether err is or wraps a [MissingFieldError].
func IsMissingField(err error) bool {
	var missing *MissingFieldError
	return errors.As(err, &missing)
}

// IsUnknownDiscriminant reports whether err is or wraps an
// [UnknownDiscriminantError].
func IsUnknownDiscriminant(err error) bool {
	var unknown *UnknownDiscriminantError
	return errors.As(err, &unknown)
}

// elementError attaches a collection index to an element failure.
func elementError(index int, err error) error {
	return fmt.Errorf("contact method %d: %w", index, err)
}
