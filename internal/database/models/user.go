package models

import (
	"time"
)

// Role determines what a dashboard account may do.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents a dashboard account (admin or staff member)
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:100" json:"name"`
	Role         string    `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	EmailConfigs   []EmailConfig   `gorm:"foreignKey:UserID" json:"email_configs,omitempty"`
	EmailTemplates []EmailTemplate `gorm:"foreignKey:CreatedBy" json:"email_templates,omitempty"`
}
