package notifications

import (
	"context"
	"time"
)

// Sink delivers user-facing notifications. Delivery is fire-and-forget:
// implementations log failures and never surface an error to the
// caller — a booking must not fail because a notification could not be
// shown.
type Sink interface {
	Notify(ctx context.Context, title, body, tag string)
}

// Notification is the document published for each dispatch.
type Notification struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	Tag    string    `json:"tag"`
	SentAt time.Time `json:"sent_at"`
}
