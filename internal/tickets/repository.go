package tickets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventx/internal/shared/constants"
	"eventx/internal/shared/storage"
	"eventx/pkg/logger"
)

// ErrNotFound is returned when no stored ticket has the requested id
var ErrNotFound = errors.New("tickets: ticket not found")

// Repository is the append-only ticket log.
type Repository interface {
	Append(ctx context.Context, t Ticket) error
	List(ctx context.Context) ([]Ticket, error)
	GetByID(ctx context.Context, id string) (*Ticket, error)
	Clear(ctx context.Context) error
}

type repository struct {
	kv  storage.KV
	log *logger.Logger
}

// NewRepository creates a ticket repository over the given store.
func NewRepository(kv storage.KV, log *logger.Logger) Repository {
	return &repository{kv: kv, log: log}
}

// Append adds the ticket to the end of the log. Storage failures are
// returned so the caller never reports success for an uncommitted write.
func (r *repository) Append(ctx context.Context, t Ticket) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	list = append(list, t)
	if err := storage.SetJSON(ctx, r.kv, constants.StorageKeyTickets, list); err != nil {
		return fmt.Errorf("failed to append ticket: %w", err)
	}
	return nil
}

// List returns the full snapshot in insertion order. Fail-soft: an
// unreadable log yields an empty slice, not an error.
func (r *repository) List(ctx context.Context) ([]Ticket, error) {
	list, err := r.load(ctx)
	if err != nil {
		r.log.Warn("ticket log unreadable, returning empty snapshot", slog.Any("error", err))
		return nil, nil
	}
	return list, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Ticket, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *repository) Clear(ctx context.Context) error {
	return r.kv.Del(ctx, constants.StorageKeyTickets)
}

func (r *repository) load(ctx context.Context) ([]Ticket, error) {
	var list []Ticket
	err := storage.GetJSON(ctx, r.kv, constants.StorageKeyTickets, &list)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}
