package models

import (
	"time"
)

// Report is an issue report submitted from the public website.
type Report struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:255" json:"email"`
	MobileNumber1 string    `gorm:"size:30;not null" json:"mobile_number1"`
	MobileNumber2 string    `gorm:"size:30" json:"mobile_number2"`
	Subject       string    `gorm:"size:255" json:"subject"`
	Message       string    `gorm:"type:text" json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}
