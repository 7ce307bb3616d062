package bookings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventx/internal/shared/constants"
	"eventx/internal/shared/storage"
	"eventx/pkg/logger"
)

// Repository is the append-only booking log.
type Repository interface {
	Append(ctx context.Context, b Booking) error
	List(ctx context.Context) ([]Booking, error)
	Clear(ctx context.Context) error
}

type repository struct {
	kv  storage.KV
	log *logger.Logger
}

// NewRepository creates a booking repository over the given store.
func NewRepository(kv storage.KV, log *logger.Logger) Repository {
	return &repository{kv: kv, log: log}
}

// Append adds the booking to the end of the log.
func (r *repository) Append(ctx context.Context, b Booking) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	list = append(list, b)
	if err := storage.SetJSON(ctx, r.kv, constants.StorageKeyBookings, list); err != nil {
		return fmt.Errorf("failed to append booking: %w", err)
	}
	return nil
}

// List returns the full snapshot in insertion order. Fail-soft: an
// unreadable log yields an empty slice, not an error.
func (r *repository) List(ctx context.Context) ([]Booking, error) {
	list, err := r.load(ctx)
	if err != nil {
		r.log.Warn("booking log unreadable, returning empty snapshot", slog.Any("error", err))
		return nil, nil
	}
	return list, nil
}

func (r *repository) Clear(ctx context.Context) error {
	return r.kv.Del(ctx, constants.StorageKeyBookings)
}

func (r *repository) load(ctx context.Context) ([]Booking, error) {
	var list []Booking
	err := storage.GetJSON(ctx, r.kv, constants.StorageKeyBookings, &list)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}
