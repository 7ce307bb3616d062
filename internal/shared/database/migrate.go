package database

import (
	"eventx/internal/gallery"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&gallery.AttendedEvent{},
		&gallery.Photo{},
	)
}
