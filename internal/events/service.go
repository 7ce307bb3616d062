package events

import (
	"context"
	"fmt"
)

// Service interface defines the contract for catalog business logic
type Service interface {
	ListEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)

	// ReserveTickets decrements the availability snapshot after a
	// booking is confirmed.
	ReserveTickets(ctx context.Context, id string, count int) error

	// EnsureSeeded writes the sample catalog if none exists yet.
	EnsureSeeded(ctx context.Context) error
}

type service struct {
	repo Repository
}

// NewService creates a new catalog service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListEvents(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

func (s *service) GetEvent(ctx context.Context, id string) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ReserveTickets(ctx context.Context, id string, count int) error {
	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if list[i].Available < count {
			return ErrSoldOut
		}
		list[i].Available -= count
		return s.repo.SaveAll(ctx, list)
	}
	return ErrNotFound
}

func (s *service) EnsureSeeded(ctx context.Context) error {
	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(list) > 0 {
		return nil
	}
	if err := s.repo.SaveAll(ctx, SampleEvents()); err != nil {
		return fmt.Errorf("failed to seed event catalog: %w", err)
	}
	return nil
}
