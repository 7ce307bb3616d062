package gallery

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service interface defines the contract for gallery business logic
type Service interface {
	ListAttendedEvents(ctx context.Context) ([]AttendedEvent, error)
	AddAttendedEvent(ctx context.Context, req AttendedEventRequest) (*AttendedEvent, error)

	// EnsureSeeded writes the sample galleries if the store is empty.
	EnsureSeeded(ctx context.Context) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new gallery service instance
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ListAttendedEvents(ctx context.Context) ([]AttendedEvent, error) {
	return s.repo.List(ctx)
}

func (s *service) AddAttendedEvent(ctx context.Context, req AttendedEventRequest) (*AttendedEvent, error) {
	event := AttendedEvent{
		ID:        "attended_" + uuid.New().String(),
		Title:     req.Title,
		Date:      req.Date,
		Location:  req.Location,
		CreatedAt: s.now().UTC(),
	}
	for _, p := range req.Photos {
		event.Photos = append(event.Photos, Photo{
			AttendedEventID: event.ID,
			URL:             p.URL,
			Caption:         p.Caption,
		})
	}

	if err := s.repo.Create(ctx, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *service) EnsureSeeded(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, sample := range SampleAttendedEvents() {
		event := sample
		for i := range event.Photos {
			event.Photos[i].AttendedEventID = event.ID
		}
		event.CreatedAt = s.now().UTC()
		if err := s.repo.Create(ctx, &event); err != nil {
			return err
		}
	}
	return nil
}
