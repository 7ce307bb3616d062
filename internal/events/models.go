package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a catalog entry a booking can be made against. Availability
// is a snapshot: bookings validate against it at submit time and
// decrement it on confirmation, nothing re-validates concurrently.
type Event struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Date        time.Time       `json:"date"`
	Location    string          `json:"location"`
	Price       decimal.Decimal `json:"price"`
	Available   int             `json:"available"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url,omitempty"`
	Description string          `json:"description,omitempty"`
}

// IsFree reports whether booking this event requires no charge
func (e *Event) IsFree() bool {
	return e.Price.IsZero()
}
