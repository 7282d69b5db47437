package models

import (
	"time"
)

// Booking represents an event booking submitted from the public website.
type Booking struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	Email            string    `gorm:"size:255" json:"email"`
	MobileNumber1    string    `gorm:"size:30;not null" json:"mobile_number1"`
	MobileNumber2    string    `gorm:"size:30" json:"mobile_number2"`
	State            string    `gorm:"size:100;not null" json:"state"`
	EventType        string    `gorm:"size:100;not null" json:"event_type"`
	OtherEventType   string    `gorm:"size:100" json:"other_event_type"`
	Location         string    `gorm:"size:255;not null" json:"location"`
	Subject          string    `gorm:"size:255" json:"subject"`
	Message          string    `gorm:"type:text" json:"message"`
	SelectedDate     string    `gorm:"size:30;not null" json:"selected_date"`
	StartTime        string    `gorm:"size:20;not null" json:"start_time"`
	TotalPrice       float64   `gorm:"not null" json:"total_price"`
	MaxHours         int       `gorm:"not null" json:"max_hours"`
	SelectedPackages string    `gorm:"size:500;not null" json:"selected_packages"`
	Confirmed        bool      `gorm:"default:false;index" json:"confirmed"`
	Declined         bool      `gorm:"default:false" json:"declined"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
