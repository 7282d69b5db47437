package models

import (
	"time"
)

// EmailService identifies the SMTP provider an EmailConfig sends through.
type EmailService string

const (
	EmailServiceGmail   EmailService = "gmail"
	EmailServiceOutlook EmailService = "outlook"
	EmailServiceYahoo   EmailService = "yahoo"
	EmailServiceCustom  EmailService = "custom"
)

// EmailConfig represents a sender identity configured by a user for
// outbound marketing email. The sender password is stored encrypted and
// is never serialized.
type EmailConfig struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            uint       `gorm:"index;not null" json:"user_id"`
	SenderEmail       string     `gorm:"size:255;not null" json:"sender_email"`
	PasswordEncrypted string     `gorm:"size:500;not null" json:"-"`
	SenderName        string     `gorm:"size:100;not null" json:"sender_name"`
	EmailService      string     `gorm:"size:20;default:'gmail'" json:"email_service"`
	CustomHost        string     `gorm:"size:255" json:"custom_host,omitempty"`
	CustomPort        int        `json:"custom_port,omitempty"`
	IsVerified        bool       `gorm:"default:false" json:"is_verified"`
	LastVerified      *time.Time `json:"last_verified,omitempty"`
	IsDefault         bool       `gorm:"default:false" json:"is_default"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
