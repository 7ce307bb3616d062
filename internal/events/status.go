package events

import "errors"

var (
	// ErrNotFound is returned when no catalog entry has the requested id
	ErrNotFound = errors.New("events: event not found")

	// ErrSoldOut is returned when a reservation exceeds the remaining
	// availability snapshot
	ErrSoldOut = errors.New("events: not enough tickets available")
)
