package services

import (
	"errors"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"gorm.io/gorm"
)

var (
	// ErrTemplateNotFound indicates the template was not found
	ErrTemplateNotFound = errors.New("template not found")
	// ErrTemplateNameTaken indicates the template name already exists for this user
	ErrTemplateNameTaken = errors.New("template name already exists")
	// ErrInvalidTemplateData indicates required template fields are missing
	ErrInvalidTemplateData = errors.New("name, subject, and content are required")
)

// TemplateService manages reusable email templates, scoped per owner.
type TemplateService struct {
	db *gorm.DB
}

// NewTemplateService creates a new TemplateService instance
func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

// CreateTemplateInput represents the input for creating a template
type CreateTemplateInput struct {
	CreatedBy uint
	Name      string
	Subject   string
	Content   string
	IsHTML    bool
}

// CreateTemplate creates a template, rejecting duplicate names per owner
func (s *TemplateService) CreateTemplate(input CreateTemplateInput) (*models.EmailTemplate, error) {
	if input.Name == "" || input.Subject == "" || input.Content == "" {
		return nil, ErrInvalidTemplateData
	}

	var existing models.EmailTemplate
	if err := s.db.Where("created_by = ? AND name = ?", input.CreatedBy, input.Name).First(&existing).Error; err == nil {
		return nil, ErrTemplateNameTaken
	}

	template := &models.EmailTemplate{
		CreatedBy: input.CreatedBy,
		Name:      input.Name,
		Subject:   input.Subject,
		Content:   input.Content,
		IsHTML:    input.IsHTML,
	}

	if err := s.db.Create(template).Error; err != nil {
		return nil, err
	}

	return template, nil
}

// GetTemplatesByOwner retrieves all templates for a user, newest first
func (s *TemplateService) GetTemplatesByOwner(createdBy uint) ([]models.EmailTemplate, error) {
	var templates []models.EmailTemplate
	if err := s.db.Where("created_by = ?", createdBy).Order("created_at DESC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplateByIDAndOwner retrieves a template scoped to its owner
func (s *TemplateService) GetTemplateByIDAndOwner(id, createdBy uint) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	if err := s.db.Where("id = ? AND created_by = ?", id, createdBy).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return &template, nil
}

// UpdateTemplatePatch represents a partial template update
type UpdateTemplatePatch struct {
	Name    *string
	Subject *string
	Content *string
	IsHTML  *bool
}

// UpdateTemplate applies a partial update, keeping names unique per owner
func (s *TemplateService) UpdateTemplate(id, createdBy uint, patch UpdateTemplatePatch) (*models.EmailTemplate, error) {
	template, err := s.GetTemplateByIDAndOwner(id, createdBy)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && *patch.Name != template.Name {
		var existing models.EmailTemplate
		if err := s.db.Where("created_by = ? AND name = ? AND id <> ?", createdBy, *patch.Name, id).
			First(&existing).Error; err == nil {
			return nil, ErrTemplateNameTaken
		}
		template.Name = *patch.Name
	}
	if patch.Subject != nil {
		template.Subject = *patch.Subject
	}
	if patch.Content != nil {
		template.Content = *patch.Content
	}
	if patch.IsHTML != nil {
		template.IsHTML = *patch.IsHTML
	}

	if err := s.db.Save(template).Error; err != nil {
		return nil, err
	}

	return template, nil
}

// DeleteTemplate removes a template owned by the user
func (s *TemplateService) DeleteTemplate(id, createdBy uint) error {
	template, err := s.GetTemplateByIDAndOwner(id, createdBy)
	if err != nil {
		return err
	}
	return s.db.Delete(template).Error
}
