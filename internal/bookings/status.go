package bookings

import "errors"

// Status tracks a booking through its lifecycle. Only terminal states
// are ever persisted: an in-flight booking that dies with the process
// leaves no record.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusFailed    Status = "FAILED"
)

// IsValid checks if the status is a known value
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether the booking can no longer change state
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// ErrInvalidTicketCount is returned when the requested ticket count is
// outside the allowed 1..5 range
var ErrInvalidTicketCount = errors.New("bookings: ticket count must be between 1 and 5")

// ErrMissingContact is returned when the buyer's name, email or phone
// is empty
var ErrMissingContact = errors.New("bookings: name, email and phone are required")
