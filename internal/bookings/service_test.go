package bookings

import (
	"context"
	"testing"
	"time"

	"eventx/internal/events"
	"eventx/internal/payments"
	"eventx/internal/profile"
	"eventx/internal/shared/storage"
	"eventx/internal/tickets"
	"eventx/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGateway records charges and returns a scripted result.
type stubGateway struct {
	charges []decimal.Decimal
	err     error
}

func (g *stubGateway) Charge(_ context.Context, amount decimal.Decimal, _, _ string) error {
	g.charges = append(g.charges, amount)
	return g.err
}

// stubWallet records passes; fails when broken.
type stubWallet struct {
	passes []tickets.WalletPass
	broken bool
}

func (w *stubWallet) AddPass(_ context.Context, pass tickets.WalletPass) error {
	if w.broken {
		return assert.AnError
	}
	w.passes = append(w.passes, pass)
	return nil
}

// stubSink records dispatched notifications.
type stubSink struct {
	titles []string
	tags   []string
}

func (s *stubSink) Notify(_ context.Context, title, _, tag string) {
	s.titles = append(s.titles, title)
	s.tags = append(s.tags, tag)
}

type fixture struct {
	svc      Service
	gateway  *stubGateway
	wallet   *stubWallet
	sink     *stubSink
	events   events.Service
	bookings Repository
	tickets  tickets.Repository
	profiles profile.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	kv := storage.NewMemoryKV()
	log := logger.New()

	eventSvc := events.NewService(events.NewRepository(kv))
	require.NoError(t, eventSvc.EnsureSeeded(context.Background()))

	f := &fixture{
		gateway:  &stubGateway{},
		wallet:   &stubWallet{},
		sink:     &stubSink{},
		events:   eventSvc,
		bookings: NewRepository(kv, log),
		tickets:  tickets.NewRepository(kv, log),
		profiles: profile.NewService(profile.NewRepository(kv), kv),
	}
	f.svc = NewService(
		Options{Currency: "RUB", ChargeTimeout: time.Second},
		f.events,
		f.gateway,
		f.bookings,
		f.tickets,
		tickets.NewPassEncoder("pass.com.eventx.ticket", "EVENTX", "EventX"),
		f.wallet,
		f.sink,
		f.profiles,
		log,
	)
	return f
}

func validRequest(eventID string, count int) BookingRequest {
	return BookingRequest{
		EventID:     eventID,
		Name:        "Anna Karlsson",
		Email:       "anna@example.com",
		Phone:       "+7 (900) 000-00-01",
		TicketCount: count,
	}
}

func TestBookEventFreeEventSkipsGateway(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Event 2 is the free technology conference.
	result, err := f.svc.BookEvent(ctx, validRequest("2", 2))
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, result.Booking.Status)
	assert.True(t, result.Booking.TotalPrice.IsZero())
	assert.Empty(t, f.gateway.charges, "free events must never hit the gateway")
	require.NotNil(t, result.Ticket)
	assert.Equal(t, result.Booking.ID, result.Ticket.BookingID)
}

func TestBookEventPaidEventChargesExactTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Event 1 costs 2500 per ticket.
	result, err := f.svc.BookEvent(ctx, validRequest("1", 3))
	require.NoError(t, err)

	require.Len(t, f.gateway.charges, 1)
	assert.True(t, f.gateway.charges[0].Equal(decimal.NewFromInt(7500)),
		"charged %s, want 7500", f.gateway.charges[0])
	assert.True(t, result.Booking.TotalPrice.Equal(decimal.NewFromInt(7500)))
	assert.Equal(t, StatusConfirmed, result.Booking.Status)
}

func TestBookEventDeclinedChargePersistsFailedBooking(t *testing.T) {
	f := newFixture(t)
	f.gateway.err = &payments.PaymentError{Reason: "card declined by issuing bank"}
	ctx := context.Background()

	_, err := f.svc.BookEvent(ctx, validRequest("1", 1))

	var paymentErr *payments.PaymentError
	require.ErrorAs(t, err, &paymentErr)

	list, listErr := f.bookings.List(ctx)
	require.NoError(t, listErr)
	require.Len(t, list, 1)
	assert.Equal(t, StatusFailed, list[0].Status)
	assert.Equal(t, "1", list[0].EventID)

	// No ticket for a failed booking.
	ticketList, ticketErr := f.tickets.List(ctx)
	require.NoError(t, ticketErr)
	assert.Empty(t, ticketList)
}

func TestBookEventIssuesExactlyOneTicket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.svc.BookEvent(ctx, validRequest("2", 5))
	require.NoError(t, err)

	list, listErr := f.tickets.List(ctx)
	require.NoError(t, listErr)
	require.Len(t, list, 1, "one ticket per booking regardless of ticket count")
	assert.Equal(t, result.Booking.ID, list[0].BookingID)
	assert.Equal(t, "2", list[0].EventID)
	assert.NotEmpty(t, list[0].QRPayload)
	assert.NotEmpty(t, list[0].Barcode)
}

func TestBookEventDecrementsAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before, err := f.events.GetEvent(ctx, "4")
	require.NoError(t, err)

	_, err = f.svc.BookEvent(ctx, validRequest("4", 3))
	require.NoError(t, err)

	after, err := f.events.GetEvent(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, before.Available-3, after.Available)
}

func TestBookEventUnknownEvent(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.BookEvent(context.Background(), validRequest("999", 1))
	assert.ErrorIs(t, err, events.ErrNotFound)
}

func TestBookEventInsufficientAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Drain event 5 (80 seats) to below the requested count.
	require.NoError(t, f.events.ReserveTickets(ctx, "5", 79))

	_, err := f.svc.BookEvent(ctx, validRequest("5", 2))
	assert.ErrorIs(t, err, events.ErrSoldOut)

	list, listErr := f.bookings.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, list, "rejected bookings are not persisted")
}

func TestBookEventRequiresContactDetails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	missing := []BookingRequest{
		{EventID: "2", Email: "anna@example.com", Phone: "+7 (900) 000-00-01", TicketCount: 1},
		{EventID: "2", Name: "Anna Karlsson", Phone: "+7 (900) 000-00-01", TicketCount: 1},
		{EventID: "2", Name: "Anna Karlsson", Email: "anna@example.com", TicketCount: 1},
	}
	for _, req := range missing {
		_, err := f.svc.BookEvent(ctx, req)
		assert.ErrorIs(t, err, ErrMissingContact, "%+v", req)
	}

	// Nothing reaches the store for a rejected request.
	bookingList, err := f.bookings.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookingList)
	ticketList, err := f.tickets.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ticketList)
}

func TestBookEventInvalidTicketCount(t *testing.T) {
	f := newFixture(t)

	for _, count := range []int{0, -1, 6} {
		_, err := f.svc.BookEvent(context.Background(), validRequest("1", count))
		assert.ErrorIs(t, err, ErrInvalidTicketCount, "count=%d", count)
	}
}

func TestBookEventNotificationGatedOnProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.svc.BookEvent(ctx, validRequest("2", 1))
	require.NoError(t, err)
	require.Len(t, f.sink.titles, 1, "default profile has notifications enabled")
	assert.Equal(t, "Booking confirmed!", f.sink.titles[0])
	assert.Equal(t, "booking-"+result.Booking.ID, f.sink.tags[0])

	p := profile.DefaultProfile()
	p.NotificationsEnabled = false
	_, err = f.profiles.UpdateProfile(ctx, p)
	require.NoError(t, err)

	_, err = f.svc.BookEvent(ctx, validRequest("2", 1))
	require.NoError(t, err)
	assert.Len(t, f.sink.titles, 1, "no notification when disabled")
}

func TestBookEventWalletFailureIsNonFatal(t *testing.T) {
	f := newFixture(t)
	f.wallet.broken = true

	result, err := f.svc.BookEvent(context.Background(), validRequest("2", 1))
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, result.Booking.Status)
	require.NotNil(t, result.Ticket)
}

func TestBookEventWalletPassMatchesTicket(t *testing.T) {
	f := newFixture(t)

	result, err := f.svc.BookEvent(context.Background(), validRequest("1", 1))
	require.NoError(t, err)

	require.Len(t, f.wallet.passes, 1)
	pass := f.wallet.passes[0]
	assert.Equal(t, result.Ticket.ID, pass.SerialNumber)
	assert.Equal(t, "Ticket for Concert at Gorky Park", pass.Description)

	msg, err := tickets.DecodeBarcodeMessage(pass.Barcode.Message)
	require.NoError(t, err)
	assert.Equal(t, result.Ticket.Checksum, msg.Checksum)
}

// failingTicketRepo refuses every ticket write.
type failingTicketRepo struct{}

func (failingTicketRepo) Append(context.Context, tickets.Ticket) error { return assert.AnError }
func (failingTicketRepo) List(context.Context) ([]tickets.Ticket, error) { return nil, nil }
func (failingTicketRepo) GetByID(context.Context, string) (*tickets.Ticket, error) {
	return nil, tickets.ErrNotFound
}
func (failingTicketRepo) Clear(context.Context) error { return nil }

func TestBookEventTicketPersistFailureLeavesNoConfirmedBooking(t *testing.T) {
	kv := storage.NewMemoryKV()
	log := logger.New()
	eventSvc := events.NewService(events.NewRepository(kv))
	require.NoError(t, eventSvc.EnsureSeeded(context.Background()))

	bookingRepo := NewRepository(kv, log)
	svc := NewService(
		Options{Currency: "RUB", ChargeTimeout: time.Second},
		eventSvc,
		&stubGateway{},
		bookingRepo,
		failingTicketRepo{},
		tickets.NewPassEncoder("pass.com.eventx.ticket", "EVENTX", "EventX"),
		&stubWallet{},
		&stubSink{},
		profile.NewService(profile.NewRepository(kv), kv),
		log,
	)

	_, err := svc.BookEvent(context.Background(), validRequest("2", 1))
	require.Error(t, err)

	// A confirmed booking only commits together with its ticket.
	list, listErr := bookingRepo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, list)
}

// ctxCheckedKV rejects operations once the caller's context is done,
// the way a real backend would.
type ctxCheckedKV struct {
	inner storage.KV
}

func (k *ctxCheckedKV) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return k.inner.Get(ctx, key)
}

func (k *ctxCheckedKV) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return k.inner.Set(ctx, key, value)
}

func (k *ctxCheckedKV) Del(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return k.inner.Del(ctx, keys...)
}

// abortingGateway cancels the request mid-charge, like a caller closing
// the booking dialog.
type abortingGateway struct {
	cancel context.CancelFunc
}

func (g *abortingGateway) Charge(ctx context.Context, _ decimal.Decimal, _, _ string) error {
	g.cancel()
	<-ctx.Done()
	return &payments.PaymentError{Reason: "charge aborted: " + ctx.Err().Error()}
}

func TestBookEventAbortedChargeStillPersistsFailedBooking(t *testing.T) {
	kv := &ctxCheckedKV{inner: storage.NewMemoryKV()}
	log := logger.New()
	eventSvc := events.NewService(events.NewRepository(kv))
	require.NoError(t, eventSvc.EnsureSeeded(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bookingRepo := NewRepository(kv, log)
	svc := NewService(
		Options{Currency: "RUB", ChargeTimeout: time.Second},
		eventSvc,
		&abortingGateway{cancel: cancel},
		bookingRepo,
		tickets.NewRepository(kv, log),
		tickets.NewPassEncoder("pass.com.eventx.ticket", "EVENTX", "EventX"),
		&stubWallet{},
		&stubSink{},
		profile.NewService(profile.NewRepository(kv), kv),
		log,
	)

	_, err := svc.BookEvent(ctx, validRequest("1", 1))
	var paymentErr *payments.PaymentError
	require.ErrorAs(t, err, &paymentErr)

	// The failure record commits even though the request context died.
	list, listErr := bookingRepo.List(context.Background())
	require.NoError(t, listErr)
	require.Len(t, list, 1)
	assert.Equal(t, StatusFailed, list[0].Status)
	assert.Equal(t, "1", list[0].EventID)
}

func TestListBookingsInsertionOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.BookEvent(ctx, validRequest("2", 1))
	require.NoError(t, err)
	second, err := f.svc.BookEvent(ctx, validRequest("4", 1))
	require.NoError(t, err)

	list, err := f.svc.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.Booking.ID, list[0].ID)
	assert.Equal(t, second.Booking.ID, list[1].ID)
}
