package events

import (
	"context"
	"errors"
	"fmt"

	"eventx/internal/shared/constants"
	"eventx/internal/shared/storage"
)

// Repository persists the event catalog in the local record store under
// a single fixed key.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	SaveAll(ctx context.Context, list []Event) error
}

type repository struct {
	kv storage.KV
}

// NewRepository creates a catalog repository over the given store.
func NewRepository(kv storage.KV) Repository {
	return &repository{kv: kv}
}

func (r *repository) List(ctx context.Context) ([]Event, error) {
	var list []Event
	err := storage.GetJSON(ctx, r.kv, constants.StorageKeyEvents, &list)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load event catalog: %w", err)
	}
	return list, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Event, error) {
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

func (r *repository) SaveAll(ctx context.Context, list []Event) error {
	if err := storage.SetJSON(ctx, r.kv, constants.StorageKeyEvents, list); err != nil {
		return fmt.Errorf("failed to save event catalog: %w", err)
	}
	return nil
}
