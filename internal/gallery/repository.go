package gallery

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository persists attended-event galleries.
type Repository interface {
	List(ctx context.Context) ([]AttendedEvent, error)
	Create(ctx context.Context, event *AttendedEvent) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a gallery repository over the given database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]AttendedEvent, error) {
	var list []AttendedEvent
	err := r.db.WithContext(ctx).
		Preload("Photos").
		Order("date DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attended events: %w", err)
	}
	return list, nil
}

func (r *repository) Create(ctx context.Context, event *AttendedEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create attended event: %w", err)
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&AttendedEvent{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count attended events: %w", err)
	}
	return count, nil
}
