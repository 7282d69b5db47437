package models

import (
	"time"
)

// Card is a product card shown on the public website.
type Card struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"size:20;index" json:"code"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:500" json:"image"`
	ObjectKey   string    `gorm:"size:255" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	CardDetails []CardDetail `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"carddetails"`
}

// CardDetail is an additional image/description pair attached to a card.
type CardDetail struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CardID      uint      `gorm:"index;not null" json:"card_id"`
	Image       string    `gorm:"size:500;not null" json:"image"`
	ObjectKey   string    `gorm:"size:255" json:"-"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
