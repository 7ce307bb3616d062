package profile

import (
	"context"
	"fmt"

	"eventx/internal/shared/constants"
	"eventx/internal/shared/storage"
)

// Repository persists the profile singleton.
type Repository interface {
	Save(ctx context.Context, p UserProfile) error

	// Load returns the stored profile, or storage.ErrNotFound when the
	// user has never saved one.
	Load(ctx context.Context) (UserProfile, error)
}

type repository struct {
	kv storage.KV
}

// NewRepository creates a profile repository over the given store.
func NewRepository(kv storage.KV) Repository {
	return &repository{kv: kv}
}

func (r *repository) Save(ctx context.Context, p UserProfile) error {
	if err := storage.SetJSON(ctx, r.kv, constants.StorageKeyProfile, p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *repository) Load(ctx context.Context) (UserProfile, error) {
	var p UserProfile
	if err := storage.GetJSON(ctx, r.kv, constants.StorageKeyProfile, &p); err != nil {
		return UserProfile{}, err
	}
	return p, nil
}
