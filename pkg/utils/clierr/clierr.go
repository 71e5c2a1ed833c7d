// Package clierr provides a fatal error type carrying a remediation hint.
//
// Fatal errors shown to users follow a two-part format: what went wrong, and a
// concrete step to fix it. The recommendation is rendered on its own line so
// command handlers can surface it without re-parsing the message.
package clierr

import "strings"

// Error is a user-facing error with an optional remediation recommendation.
type Error struct {
	message        string
	recommendation string
	cause          error
}

// New constructs an Error from a message and a recommendation.
// The recommendation may be empty.
func New(message, recommendation string) *Error {
	return &Error{message: message, recommendation: recommendation}
}

// Wrap constructs an Error that wraps an underlying cause, preserving
// errors.Is/errors.As semantics on the chain.
func Wrap(cause error, message, recommendation string) *Error {
	return &Error{message: message, recommendation: recommendation, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(e.message)

	if e.recommendation != "" {
		builder.WriteString("\nRecommendation: ")
		builder.WriteString(e.recommendation)
	}

	return builder.String()
}

// Unwrap exposes the underlying cause for errors.Is/errors.As consumers.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// Recommendation returns the remediation hint, if any.
func (e *Error) Recommendation() string {
	if e == nil {
		return ""
	}

	return e.recommendation
}
