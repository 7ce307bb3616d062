package gallery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository backs service tests without a database.
type memoryRepository struct {
	events []AttendedEvent
}

func (r *memoryRepository) List(_ context.Context) ([]AttendedEvent, error) {
	return r.events, nil
}

func (r *memoryRepository) Create(_ context.Context, event *AttendedEvent) error {
	r.events = append(r.events, *event)
	return nil
}

func (r *memoryRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.events)), nil
}

func TestEnsureSeededWritesSamplesOnce(t *testing.T) {
	repo := &memoryRepository{}
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.EnsureSeeded(ctx))
	require.Len(t, repo.events, 3)
	assert.Equal(t, "Konsert i Gamla Stan", repo.events[0].Title)
	assert.Len(t, repo.events[0].Photos, 3)

	// Second call is a no-op.
	require.NoError(t, svc.EnsureSeeded(ctx))
	assert.Len(t, repo.events, 3)
}

func TestEnsureSeededLinksPhotosToParent(t *testing.T) {
	repo := &memoryRepository{}
	svc := NewService(repo)

	require.NoError(t, svc.EnsureSeeded(context.Background()))
	for _, event := range repo.events {
		for _, photo := range event.Photos {
			assert.Equal(t, event.ID, photo.AttendedEventID)
		}
	}
}

func TestAddAttendedEvent(t *testing.T) {
	repo := &memoryRepository{}
	svc := NewService(repo)

	event, err := svc.AddAttendedEvent(context.Background(), AttendedEventRequest{
		Title:    "Sommarfestival",
		Date:     time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC),
		Location: "Djurgården, Stockholm",
		Photos: []PhotoRequest{
			{URL: "https://example.com/photo.jpg", Caption: "Midsommar"},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Contains(t, event.ID, "attended_")
	require.Len(t, event.Photos, 1)
	assert.Equal(t, event.ID, event.Photos[0].AttendedEventID)
	assert.Len(t, repo.events, 1)
}
