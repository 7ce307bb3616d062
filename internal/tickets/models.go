package tickets

import (
	"encoding/json"
	"strings"
	"time"

	"eventx/pkg/checksum"

	"github.com/google/uuid"
)

// Ticket is the issuable artifact produced after a booking confirms.
// Tickets are append-only: never mutated or deleted except by a full
// data wipe.
type Ticket struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"booking_id"`
	EventID       string    `json:"event_id"`
	EventTitle    string    `json:"event_title"`
	EventDate     time.Time `json:"event_date"`
	EventLocation string    `json:"event_location"`
	QRPayload     string    `json:"qr_payload"`
	Barcode       string    `json:"barcode"`
	Checksum      string    `json:"checksum"`
	CreatedAt     time.Time `json:"created_at"`
}

// IssueInput carries the booking fields a new ticket is derived from.
type IssueInput struct {
	BookingID     string
	EventID       string
	EventTitle    string
	EventDate     time.Time
	EventLocation string

	// BuyerID identifies the buyer in the checksum; "guest" when the
	// booking carries no identity.
	BuyerID string
}

// Issue creates a ticket for a confirmed booking: a fresh id, the
// tamper checksum over the identity fields, the QR payload and the
// display barcode.
func Issue(in IssueInput, now time.Time) (Ticket, error) {
	buyer := in.BuyerID
	if buyer == "" {
		buyer = "guest"
	}

	id := uuid.New().String()
	sum := checksum.Hash(id, in.EventID, buyer)

	payload, err := json.Marshal(QRPayload{
		TicketID:  id,
		EventID:   in.EventID,
		UserID:    buyer,
		Timestamp: now.UnixMilli(),
		Checksum:  sum,
	})
	if err != nil {
		return Ticket{}, err
	}

	return Ticket{
		ID:            id,
		BookingID:     in.BookingID,
		EventID:       in.EventID,
		EventTitle:    in.EventTitle,
		EventDate:     in.EventDate,
		EventLocation: in.EventLocation,
		QRPayload:     string(payload),
		Barcode:       barcodeFor(id),
		Checksum:      sum,
		CreatedAt:     now.UTC(),
	}, nil
}

// barcodeFor derives the human-visible barcode string from a ticket id.
func barcodeFor(id string) string {
	short := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(short) > 10 {
		short = short[:10]
	}
	for len(short) < 10 {
		short = "0" + short
	}
	return "EVX" + short
}
