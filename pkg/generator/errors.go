package generator

import "errors"

var (
	// ErrBackendFailure wraps remote generation call failures
	ErrBackendFailure = errors.New("generation backend call failed")

	// ErrEmptyResponse indicates the backend returned no usable text
	ErrEmptyResponse = errors.New("generation backend returned empty response")

	// ErrInvalidConfig indicates a backend was constructed without a credential
	ErrInvalidConfig = errors.New("invalid generation backend config")
)
