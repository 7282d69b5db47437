package models

import (
	"time"
)

// ContactStatus tracks the follow-up state of an inquiry.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusConverted ContactStatus = "converted"
	ContactStatusClosed    ContactStatus = "closed"
)

// ContactPriority ranks an inquiry for the sales workflow.
type ContactPriority string

const (
	ContactPriorityLow    ContactPriority = "low"
	ContactPriorityMedium ContactPriority = "medium"
	ContactPriorityHigh   ContactPriority = "high"
)

// Contact is a sales inquiry submitted from the public website.
type Contact struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Email       string     `gorm:"size:255;not null" json:"email"`
	PhoneNumber string     `gorm:"size:30" json:"phone_number,omitempty"`
	CompanyName string     `gorm:"size:100;not null" json:"company_name"`
	Subject     string     `gorm:"size:255" json:"subject,omitempty"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	Status      string     `gorm:"size:20;default:'new';index" json:"status"`
	Priority    string     `gorm:"size:20;default:'medium';index" json:"priority"`
	Notes       string     `gorm:"type:text" json:"notes"`
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
