package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"gorm.io/gorm"
)

var (
	// ErrContactNotFound indicates the inquiry was not found
	ErrContactNotFound = errors.New("contact not found")
	// ErrInvalidContactData indicates missing or malformed fields
	ErrInvalidContactData = errors.New("invalid contact data")
)

// ContactService manages sales inquiries from the public website
type ContactService struct {
	db *gorm.DB
}

// NewContactService creates a new ContactService instance
func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// CreateContactInput contains the fields accepted from the public form
type CreateContactInput struct {
	Name        string
	Email       string
	PhoneNumber string
	CompanyName string
	Subject     string
	Message     string
}

// CreateContact validates and persists a new inquiry
func (s *ContactService) CreateContact(input CreateContactInput) (*models.Contact, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidContactData)
	}
	if strings.TrimSpace(input.Email) == "" || !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidContactData)
	}
	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, fmt.Errorf("%w: company name is required", ErrInvalidContactData)
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidContactData)
	}

	contact := &models.Contact{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(strings.ToLower(input.Email)),
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		CompanyName: strings.TrimSpace(input.CompanyName),
		Subject:     strings.TrimSpace(input.Subject),
		Message:     input.Message,
		Status:      string(models.ContactStatusNew),
		Priority:    string(models.ContactPriorityMedium),
	}
	if err := s.db.Create(contact).Error; err != nil {
		return nil, err
	}

	return contact, nil
}

// ContactListOptions filters and paginates the inquiry listing
type ContactListOptions struct {
	Status   string
	Priority string
	Search   string
	Page     int
	Limit    int
}

// ListContacts retrieves inquiries matching the given filters, newest first
func (s *ContactService) ListContacts(opts ContactListOptions) ([]models.Contact, int64, error) {
	query := s.db.Model(&models.Contact{})

	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}
	if opts.Priority != "" {
		query = query.Where("priority = ?", opts.Priority)
	}
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR company_name LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 10
	}

	var contacts []models.Contact
	err := query.
		Order("created_at DESC").
		Offset((opts.Page - 1) * opts.Limit).
		Limit(opts.Limit).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// GetContactByID retrieves a single inquiry
func (s *ContactService) GetContactByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// UpdateContactPatch contains optional fields for the follow-up workflow
type UpdateContactPatch struct {
	Status   *string
	Priority *string
	Notes    *string
}

func validContactStatus(status string) bool {
	switch models.ContactStatus(status) {
	case models.ContactStatusNew, models.ContactStatusContacted,
		models.ContactStatusConverted, models.ContactStatusClosed:
		return true
	}
	return false
}

func validContactPriority(priority string) bool {
	switch models.ContactPriority(priority) {
	case models.ContactPriorityLow, models.ContactPriorityMedium, models.ContactPriorityHigh:
		return true
	}
	return false
}

// UpdateContact applies a partial update. Moving an inquiry out of the
// new status stamps ContactedAt the first time.
func (s *ContactService) UpdateContact(id uint, patch UpdateContactPatch) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}

	if patch.Status != nil {
		if !validContactStatus(*patch.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidContactData, *patch.Status)
		}
		if *patch.Status != string(models.ContactStatusNew) && contact.ContactedAt == nil {
			now := time.Now()
			contact.ContactedAt = &now
		}
		contact.Status = *patch.Status
	}
	if patch.Priority != nil {
		if !validContactPriority(*patch.Priority) {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidContactData, *patch.Priority)
		}
		contact.Priority = *patch.Priority
	}
	if patch.Notes != nil {
		contact.Notes = *patch.Notes
	}

	if err := s.db.Save(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// DeleteContact removes an inquiry
func (s *ContactService) DeleteContact(id uint) error {
	result := s.db.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// ContactStats summarizes the inquiry pipeline
type ContactStats struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Contacted int64 `json:"contacted"`
	Converted int64 `json:"converted"`
	Closed    int64 `json:"closed"`
}

// GetContactStats returns counts by status
func (s *ContactService) GetContactStats() (*ContactStats, error) {
	stats := &ContactStats{}
	if err := s.db.Model(&models.Contact{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	counts := []struct {
		status string
		target *int64
	}{
		{string(models.ContactStatusNew), &stats.New},
		{string(models.ContactStatusContacted), &stats.Contacted},
		{string(models.ContactStatusConverted), &stats.Converted},
		{string(models.ContactStatusClosed), &stats.Closed},
	}
	for _, c := range counts {
		if err := s.db.Model(&models.Contact{}).Where("status = ?", c.status).Count(c.target).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}
