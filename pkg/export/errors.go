package export

import "errors"

var (
	// ErrWriteFailed indicates the draft file could not be written
	ErrWriteFailed = errors.New("failed to write draft file")
)
