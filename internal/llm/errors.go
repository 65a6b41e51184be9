package llm

import "errors"

var (
	// ErrUnavailable indicates the model server is unreachable.
	ErrUnavailable = errors.New("model server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("model request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed into
	// the expected structure.
	ErrInvalidOutput = errors.New("invalid model output")

	// ErrRetryExhausted indicates every attempt failed.
	ErrRetryExhausted = errors.New("model retry attempts exhausted")
)
