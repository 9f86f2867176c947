// Package validation defines the self-check contract for domain types that
// are loaded from external sources.
package validation

import "fmt"

// Validatable is implemented by data types that need validation after being
// loaded from an external source. Validate returns nil when the value is
// structurally valid and a *ValidationError otherwise.
//
// Implementing Validatable does not by itself mean a value gets meaningfully
// checked: a type may embed Unchecked and satisfy the interface with an
// always-valid default. Callers must not treat "implements Validatable" as
// "has real checks".
type Validatable interface {
	Validate() error
}

// Unchecked satisfies Validatable with a Validate that always succeeds.
// Types with no invariants of their own embed it to opt into the
// always-valid default explicitly, at the embed site.
type Unchecked struct{}

// Validate always reports success.
func (Unchecked) Validate() error { return nil }

// ValidationError reports a failed validation, optionally annotated with a
// human-readable message. The message is optional rather than defaulted: a
// ValidationError without one means "no detail available", which is distinct
// from an empty message.
type ValidationError struct {
	message *string
}

// Invalid returns a ValidationError carrying no message.
func Invalid() *ValidationError {
	return &ValidationError{}
}

// Invalidf returns a ValidationError annotated with the formatted message.
func Invalidf(format string, args ...any) *ValidationError {
	msg := fmt.Sprintf(format, args...)
	return &ValidationError{message: &msg}
}

// Message returns the annotation and whether one was set.
func (e *ValidationError) Message() (string, bool) {
	if e.message == nil {
		return "", false
	}
	return *e.message, true
}

func (e *ValidationError) Error() string {
	if e.message == nil {
		return "validation error"
	}
	return "validation error: " + *e.message
}
