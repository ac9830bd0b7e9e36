package core

import "errors"

// ErrEmptyInput is returned when a review is requested with no code. The UI
// surfaces guard against this before the pipeline runs; the pipeline checks
// again so the invariant does not depend on the caller.
var ErrEmptyInput = errors.New("no code provided for review")

// ErrInvalidFormat rejects a model response that is missing one of the
// required section markers. The message is user-visible and stable.
//
//nolint:staticcheck // ST1005: the error text doubles as the displayed message
var ErrInvalidFormat = errors.New("Invalid response format from AI model")

// APIError wraps a transport or service failure from the model backend.
type APIError struct {
	Err error
}

func (e *APIError) Error() string {
	return "API Error: " + e.Err.Error()
}

func (e *APIError) Unwrap() error {
	return e.Err
}
