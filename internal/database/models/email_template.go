package models

import (
	"time"
)

// EmailTemplate is a named, reusable subject/body pair owned by a user.
// Names are unique per owner, enforced at write time by the service.
type EmailTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedBy uint      `gorm:"index;not null" json:"created_by"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	IsHTML    bool      `gorm:"default:false" json:"is_html"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
