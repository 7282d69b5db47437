package models

import (
	"time"
)

// Event is a single photo in the public event gallery. The image itself
// lives in blob storage; ObjectKey is the storage key used for deletion.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ImageURL  string    `gorm:"size:500;not null" json:"image_url"`
	ObjectKey string    `gorm:"size:255" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
