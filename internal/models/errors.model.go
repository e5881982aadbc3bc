package models

import "errors"

// Error kinds for the domain layer. Callers classify failures with
// errors.Is rather than matching messages.
var (
	// ErrValidation marks malformed value-object input. Caller-fixable,
	// never retried.
	ErrValidation = errors.New("validation error")

	// ErrBusinessRule marks a domain rule violation such as a self-review
	// or a duplicate review.
	ErrBusinessRule = errors.New("business rule violation")

	// ErrNotFound marks a missing entity or review.
	ErrNotFound = errors.New("not found")
)
