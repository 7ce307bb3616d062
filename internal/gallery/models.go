package gallery

import "time"

// AttendedEvent is a past event the user kept a photo gallery for.
// Unlike the ticket and booking logs these are structured records in
// postgres: galleries grow unbounded and get queried with relations.
type AttendedEvent struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location"`
	Photos    []Photo   `json:"photos" gorm:"foreignKey:AttendedEventID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}

// Photo is a single gallery entry.
type Photo struct {
	ID              uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	AttendedEventID string `json:"-" gorm:"index;not null"`
	URL             string `json:"url" gorm:"not null"`
	Caption         string `json:"caption"`
}

// AttendedEventRequest represents the request body for adding a gallery
type AttendedEventRequest struct {
	Title    string         `json:"title" binding:"required"`
	Date     time.Time      `json:"date" binding:"required"`
	Location string         `json:"location"`
	Photos   []PhotoRequest `json:"photos"`
}

// PhotoRequest is a single photo in an AttendedEventRequest
type PhotoRequest struct {
	URL     string `json:"url" binding:"required,url"`
	Caption string `json:"caption"`
}
