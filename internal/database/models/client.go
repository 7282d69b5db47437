package models

import (
	"time"
)

// ClientStatus controls whether a client logo appears on the public site.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// Client is a business client whose logo is displayed on the website.
type Client struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null;index" json:"name"`
	Logo         string    `gorm:"size:500;not null" json:"logo"`
	ObjectKey    string    `gorm:"size:255" json:"-"`
	Status       string    `gorm:"size:20;default:'active';index" json:"status"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	Website      string    `gorm:"size:255" json:"website,omitempty"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
