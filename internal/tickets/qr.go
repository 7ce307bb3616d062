package tickets

import (
	"encoding/json"
	"time"

	"eventx/pkg/checksum"

	qrcode "github.com/skip2/go-qrcode"
)

// QRPayload is the machine-readable content of a ticket's QR code. The
// field names stay camelCase for compatibility with payloads produced
// by JavaScript clients.
type QRPayload struct {
	TicketID  string `json:"ticketId"`
	EventID   string `json:"eventId"`
	UserID    string `json:"userId"`
	Timestamp int64  `json:"timestamp"` // ms since epoch
	Checksum  string `json:"checksum"`
}

// qrMaxAge is how long a rendered QR payload stays accepted.
const qrMaxAge = 24 * time.Hour

// ValidationResult reports whether a scanned QR payload is acceptable.
type ValidationResult struct {
	Valid   bool       `json:"valid"`
	Reason  string     `json:"reason,omitempty"`
	Payload *QRPayload `json:"payload,omitempty"`
}

// ValidateQRPayload parses a scanned payload and checks its shape, age
// and checksum. The checksum is recomputed from the payload's identity
// fields; a mismatch means the payload was altered.
func ValidateQRPayload(raw string, now time.Time) ValidationResult {
	var p QRPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return ValidationResult{Valid: false, Reason: "invalid QR code data"}
	}

	if p.TicketID == "" || p.EventID == "" || p.Checksum == "" {
		return ValidationResult{Valid: false, Reason: "invalid QR code format"}
	}

	if now.UnixMilli()-p.Timestamp > qrMaxAge.Milliseconds() {
		return ValidationResult{Valid: false, Reason: "QR code expired"}
	}

	if checksum.Hash(p.TicketID, p.EventID, p.UserID) != p.Checksum {
		return ValidationResult{Valid: false, Reason: "checksum mismatch"}
	}

	return ValidationResult{Valid: true, Payload: &p}
}

// RenderQRPNG renders the ticket's QR payload as a scannable PNG.
func RenderQRPNG(t *Ticket, size int) ([]byte, error) {
	return qrcode.Encode(t.QRPayload, qrcode.Medium, size)
}
