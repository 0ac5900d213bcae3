package analytics

import "errors"

var (
	// ErrInvalidEvent indicates the event data is invalid
	ErrInvalidEvent = errors.New("invalid usage event")

	// ErrSinkClosed is returned when recording to a closed async sink
	ErrSinkClosed = errors.New("usage event sink is closed")

	// ErrRecordFailed wraps storage-side failures while appending an event
	ErrRecordFailed = errors.New("failed to record usage event")
)
