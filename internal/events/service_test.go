package events

import (
	"context"
	"testing"

	"eventx/internal/shared/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc := NewService(NewRepository(storage.NewMemoryKV()))
	require.NoError(t, svc.EnsureSeeded(context.Background()))
	return svc
}

func TestEnsureSeededWritesSampleCatalogOnce(t *testing.T) {
	kv := storage.NewMemoryKV()
	svc := NewService(NewRepository(kv))
	ctx := context.Background()

	require.NoError(t, svc.EnsureSeeded(ctx))
	list, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)

	// Seeding again must not duplicate or reset the catalog.
	require.NoError(t, svc.ReserveTickets(ctx, "1", 10))
	require.NoError(t, svc.EnsureSeeded(ctx))

	event, err := svc.GetEvent(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 140, event.Available)
}

func TestGetEventUnknownID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetEvent(context.Background(), "999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSampleCatalogPricing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	paid, err := svc.GetEvent(ctx, "1")
	require.NoError(t, err)
	assert.True(t, paid.Price.Equal(decimal.NewFromInt(2500)))
	assert.False(t, paid.IsFree())

	free, err := svc.GetEvent(ctx, "2")
	require.NoError(t, err)
	assert.True(t, free.IsFree())
}

func TestReserveTickets(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.ReserveTickets(ctx, "5", 30))

	event, err := svc.GetEvent(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, 50, event.Available)
}

func TestReserveTicketsInsufficientAvailability(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	err := svc.ReserveTickets(ctx, "5", 81)
	assert.ErrorIs(t, err, ErrSoldOut)

	// Availability is untouched after a rejected reservation.
	event, getErr := svc.GetEvent(ctx, "5")
	require.NoError(t, getErr)
	assert.Equal(t, 80, event.Available)
}

func TestReserveTicketsUnknownEvent(t *testing.T) {
	svc := newTestService(t)

	err := svc.ReserveTickets(context.Background(), "999", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
