package bookings

import (
	"errors"
	"net/http"

	"eventx/internal/events"
	"eventx/internal/payments"
	"eventx/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateBooking handles POST /api/v1/bookings
func (c *Controller) CreateBooking(ctx *gin.Context) {
	var req BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	result, err := c.service.BookEvent(ctx.Request.Context(), req)
	if err != nil {
		c.handleBookingError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Booking confirmed successfully", result)
}

// ListBookings handles GET /api/v1/bookings
func (c *Controller) ListBookings(ctx *gin.Context) {
	list, err := c.service.ListBookings(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to load bookings", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Bookings retrieved successfully", list)
}

func (c *Controller) handleBookingError(ctx *gin.Context, err error) {
	var paymentErr *payments.PaymentError

	switch {
	case errors.Is(err, events.ErrNotFound):
		response.Error(ctx, http.StatusNotFound, "Event not found", nil)
	case errors.Is(err, events.ErrSoldOut):
		response.Error(ctx, http.StatusConflict, "Not enough tickets available", nil)
	case errors.Is(err, ErrInvalidTicketCount):
		response.Error(ctx, http.StatusBadRequest, "Invalid ticket count", err.Error())
	case errors.Is(err, ErrMissingContact):
		response.Error(ctx, http.StatusBadRequest, "Missing contact details", err.Error())
	case errors.As(err, &paymentErr):
		response.Error(ctx, http.StatusPaymentRequired, "Payment failed", paymentErr.Reason)
	default:
		response.Error(ctx, http.StatusInternalServerError, "Failed to create booking", err.Error())
	}
}
