package bookings

import (
	"time"

	"eventx/internal/tickets"

	"github.com/shopspring/decimal"
)

// Booking records one purchase attempt against a catalog event. The
// event fields are denormalized at booking time so the record stays
// readable even if the catalog changes later.
type Booking struct {
	ID            string          `json:"id"`
	EventID       string          `json:"event_id"`
	EventTitle    string          `json:"event_title"`
	EventDate     time.Time       `json:"event_date"`
	EventLocation string          `json:"event_location"`
	BuyerName     string          `json:"buyer_name"`
	BuyerEmail    string          `json:"buyer_email"`
	BuyerPhone    string          `json:"buyer_phone"`
	TicketCount   int             `json:"ticket_count"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BookingRequest represents the request body for creating a booking
type BookingRequest struct {
	EventID     string `json:"event_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	TicketCount int    `json:"ticket_count" binding:"required,min=1,max=5"`
}

// BookingResponse carries a confirmed booking together with its issued
// ticket. Ticket is nil for failed bookings.
type BookingResponse struct {
	Booking Booking         `json:"booking"`
	Ticket  *tickets.Ticket `json:"ticket,omitempty"`
}
