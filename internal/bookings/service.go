package bookings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventx/internal/events"
	"eventx/internal/notifications"
	"eventx/internal/payments"
	"eventx/internal/profile"
	"eventx/internal/tickets"
	"eventx/internal/wallet"
	"eventx/pkg/logger"
	"eventx/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Options tunes the issuance pipeline.
type Options struct {
	// Currency is the charge currency passed to the payment gateway.
	Currency string

	// ChargeTimeout bounds how long a single charge may take before the
	// booking fails.
	ChargeTimeout time.Duration
}

// Service interface defines the contract for booking business logic
type Service interface {
	// BookEvent runs the full issuance pipeline: validate, charge when
	// the event is paid, persist the booking, issue the ticket, offer
	// the wallet pass and dispatch the notification. The returned error
	// is *payments.PaymentError when the charge was declined or timed
	// out; the failed booking is still persisted in that case.
	BookEvent(ctx context.Context, req BookingRequest) (*BookingResponse, error)

	ListBookings(ctx context.Context) ([]Booking, error)
}

type service struct {
	opts     Options
	events   events.Service
	gateway  payments.Gateway
	repo     Repository
	tickets  tickets.Repository
	passes   *tickets.PassEncoder
	wallet   wallet.Sink
	notify   notifications.Sink
	profiles profile.Service
	log      *logger.Logger

	// now is injected so issuance timestamps are testable.
	now func() time.Time
}

// NewService wires the issuance pipeline together.
func NewService(
	opts Options,
	eventSvc events.Service,
	gateway payments.Gateway,
	repo Repository,
	ticketRepo tickets.Repository,
	passes *tickets.PassEncoder,
	walletSink wallet.Sink,
	notifySink notifications.Sink,
	profiles profile.Service,
	log *logger.Logger,
) Service {
	if opts.ChargeTimeout <= 0 {
		opts.ChargeTimeout = 10 * time.Second
	}
	return &service{
		opts:     opts,
		events:   eventSvc,
		gateway:  gateway,
		repo:     repo,
		tickets:  ticketRepo,
		passes:   passes,
		wallet:   walletSink,
		notify:   notifySink,
		profiles: profiles,
		log:      log,
		now:      time.Now,
	}
}

func (s *service) BookEvent(ctx context.Context, req BookingRequest) (*BookingResponse, error) {
	if req.TicketCount < 1 || req.TicketCount > 5 {
		return nil, ErrInvalidTicketCount
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return nil, ErrMissingContact
	}

	event, err := s.events.GetEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event.Available < req.TicketCount {
		return nil, events.ErrSoldOut
	}

	now := s.now().UTC()
	booking := Booking{
		ID:            uuid.New().String(),
		EventID:       event.ID,
		EventTitle:    event.Title,
		EventDate:     event.Date,
		EventLocation: event.Location,
		BuyerName:     req.Name,
		BuyerEmail:    req.Email,
		BuyerPhone:    req.Phone,
		TicketCount:   req.TicketCount,
		TotalPrice:    event.Price.Mul(decimal.NewFromInt(int64(req.TicketCount))),
		Status:        StatusPending,
		CreatedAt:     now,
	}

	// Free events skip the gateway entirely.
	if !event.IsFree() {
		if err := s.charge(ctx, &booking); err != nil {
			return nil, err
		}
	}

	booking.Status = StatusConfirmed

	// Ticket first: a confirmed booking must always have its ticket, so
	// the booking record only commits once the ticket did.
	ticket, err := s.issueTicket(ctx, booking)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Append(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.offerWalletPass(ctx, ticket)
	s.dispatchNotification(ctx, booking)

	if err := s.events.ReserveTickets(ctx, booking.EventID, booking.TicketCount); err != nil {
		// Booking is already committed; a stale availability snapshot is
		// the lesser problem.
		s.log.Warn("failed to decrement event availability",
			slog.String("event_id", booking.EventID),
			slog.Any("error", err),
		)
	}

	metrics.TrackBooking(booking.EventID, StatusConfirmed.String())
	s.log.LogBookingConfirmed(ctx, booking.ID, booking.EventID, booking.TicketCount)

	return &BookingResponse{Booking: booking, Ticket: ticket}, nil
}

func (s *service) ListBookings(ctx context.Context) ([]Booking, error) {
	return s.repo.List(ctx)
}

// charge runs the payment under its own deadline. A declined or timed
// out charge persists the booking in its failed state before returning.
func (s *service) charge(ctx context.Context, booking *Booking) error {
	chargeCtx, cancel := context.WithTimeout(ctx, s.opts.ChargeTimeout)
	defer cancel()

	description := fmt.Sprintf("%d ticket(s) for %s", booking.TicketCount, booking.EventTitle)
	err := s.gateway.Charge(chargeCtx, booking.TotalPrice, s.opts.Currency, description)
	if err == nil {
		return nil
	}

	booking.Status = StatusFailed

	// The request context may itself be the reason the charge aborted
	// (caller gone). The failure record must still commit.
	appendCtx := context.WithoutCancel(ctx)
	if appendErr := s.repo.Append(appendCtx, *booking); appendErr != nil {
		s.log.Warn("failed to persist failed booking",
			slog.String("booking_id", booking.ID),
			slog.Any("error", appendErr),
		)
	}

	metrics.TrackBooking(booking.EventID, StatusFailed.String())
	s.log.LogBookingFailed(ctx, booking.ID, booking.EventID, err.Error())
	return err
}

// issueTicket creates and persists exactly one ticket for the booking.
func (s *service) issueTicket(ctx context.Context, booking Booking) (*tickets.Ticket, error) {
	ticket, err := tickets.Issue(tickets.IssueInput{
		BookingID:     booking.ID,
		EventID:       booking.EventID,
		EventTitle:    booking.EventTitle,
		EventDate:     booking.EventDate,
		EventLocation: booking.EventLocation,
		BuyerID:       booking.BuyerEmail,
	}, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to issue ticket: %w", err)
	}

	if err := s.tickets.Append(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to persist ticket: %w", err)
	}

	metrics.TrackTicketIssued()
	s.log.LogTicketIssued(ctx, ticket.ID, booking.ID)
	return &ticket, nil
}

// offerWalletPass encodes and hands the pass to the wallet sink. Never
// fatal: the ticket already committed.
func (s *service) offerWalletPass(ctx context.Context, ticket *tickets.Ticket) {
	pass := s.passes.Encode(ticket)
	if err := s.wallet.AddPass(ctx, pass); err != nil {
		metrics.TrackWalletPassFailure()
		s.log.Warn("failed to add wallet pass",
			slog.String("ticket_id", ticket.ID),
			slog.Any("error", err),
		)
	}
}

// dispatchNotification notifies the user, gated on their preference.
func (s *service) dispatchNotification(ctx context.Context, booking Booking) {
	if !s.profiles.NotificationsEnabled(ctx) {
		return
	}
	s.notify.Notify(ctx,
		"Booking confirmed!",
		fmt.Sprintf("Your tickets for %s are ready", booking.EventTitle),
		"booking-"+booking.ID,
	)
}
