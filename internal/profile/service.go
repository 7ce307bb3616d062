package profile

import (
	"context"
	"errors"

	"eventx/internal/shared/constants"
	"eventx/internal/shared/storage"
)

// Service interface defines the contract for profile business logic
type Service interface {
	// GetProfile returns the stored profile, or the defaults when the
	// user has never saved one.
	GetProfile(ctx context.Context) (UserProfile, error)

	UpdateProfile(ctx context.Context, p UserProfile) (UserProfile, error)

	// NotificationsEnabled reports whether the user wants booking
	// notifications. Missing profile means the default (enabled).
	NotificationsEnabled(ctx context.Context) bool

	// WipeData removes all user data: bookings, tickets and the profile.
	// The event catalog stays.
	WipeData(ctx context.Context) error
}

type service struct {
	repo Repository
	kv   storage.KV
}

// NewService creates a new profile service instance
func NewService(repo Repository, kv storage.KV) Service {
	return &service{repo: repo, kv: kv}
}

func (s *service) GetProfile(ctx context.Context) (UserProfile, error) {
	p, err := s.repo.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return DefaultProfile(), nil
	}
	if err != nil {
		return UserProfile{}, err
	}
	return p, nil
}

func (s *service) UpdateProfile(ctx context.Context, p UserProfile) (UserProfile, error) {
	if err := s.repo.Save(ctx, p); err != nil {
		return UserProfile{}, err
	}
	return p, nil
}

func (s *service) NotificationsEnabled(ctx context.Context) bool {
	p, err := s.GetProfile(ctx)
	if err != nil {
		return DefaultProfile().NotificationsEnabled
	}
	return p.NotificationsEnabled
}

func (s *service) WipeData(ctx context.Context) error {
	return s.kv.Del(ctx, constants.WipeKeys...)
}
