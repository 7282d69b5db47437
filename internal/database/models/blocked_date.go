package models

import (
	"time"
)

// BlockedDate marks a calendar date (optionally a time window within it)
// as unavailable for new bookings.
type BlockedDate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	StartTime string    `gorm:"size:20" json:"start_time,omitempty"`
	EndTime   string    `gorm:"size:20" json:"end_time,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
