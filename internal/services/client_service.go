package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/Marco-XM/arixyDashboardBack/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrClientNotFound indicates the client was not found
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidClientData indicates missing or malformed fields
	ErrInvalidClientData = errors.New("invalid client data")
)

// ClientService manages the client logo wall
type ClientService struct {
	db    *gorm.DB
	blobs storage.BlobStore
}

// NewClientService creates a new ClientService instance
func NewClientService(db *gorm.DB, blobs storage.BlobStore) *ClientService {
	return &ClientService{db: db, blobs: blobs}
}

// CreateClientInput contains the fields accepted when creating a client
type CreateClientInput struct {
	Name         string
	Website      string
	Description  string
	DisplayOrder int
	ContentType  string
	Logo         io.Reader
}

// CreateClient stores the logo image and persists the client
func (s *ClientService) CreateClient(ctx context.Context, input CreateClientInput) (*models.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidClientData)
	}
	if input.Logo == nil {
		return nil, fmt.Errorf("%w: logo is required", ErrInvalidClientData)
	}

	key := fmt.Sprintf("clients/%s", uuid.NewString())
	url, err := s.blobs.Upload(ctx, key, input.ContentType, input.Logo)
	if err != nil {
		return nil, err
	}

	client := &models.Client{
		Name:         strings.TrimSpace(input.Name),
		Logo:         url,
		ObjectKey:    key,
		Status:       string(models.ClientStatusActive),
		DisplayOrder: input.DisplayOrder,
		Website:      strings.TrimSpace(input.Website),
		Description:  input.Description,
	}
	if err := s.db.Create(client).Error; err != nil {
		_ = s.blobs.Delete(ctx, key)
		return nil, err
	}

	return client, nil
}

// ClientListOptions filters and paginates the client listing
type ClientListOptions struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// ListClients retrieves clients matching the given filters, ordered by
// display order then creation time
func (s *ClientService) ListClients(opts ClientListOptions) ([]models.Client, int64, error) {
	query := s.db.Model(&models.Client{})

	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
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

	var clients []models.Client
	err := query.
		Order("display_order ASC, created_at DESC").
		Offset((opts.Page - 1) * opts.Limit).
		Limit(opts.Limit).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// GetActiveClients retrieves active clients for the public site
func (s *ClientService) GetActiveClients() ([]models.Client, error) {
	var clients []models.Client
	err := s.db.
		Where("status = ?", models.ClientStatusActive).
		Order("display_order ASC, created_at DESC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

// GetClientByID retrieves a single client
func (s *ClientService) GetClientByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

// UpdateClientPatch contains optional fields for a partial client update
type UpdateClientPatch struct {
	Name         *string
	Status       *string
	DisplayOrder *int
	Website      *string
	Description  *string
	ContentType  string
	Logo         io.Reader
}

// UpdateClient applies a partial update. A new logo replaces the stored one.
func (s *ClientService) UpdateClient(ctx context.Context, id uint, patch UpdateClientPatch) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidClientData)
		}
		client.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Status != nil {
		status := models.ClientStatus(*patch.Status)
		if status != models.ClientStatusActive && status != models.ClientStatusInactive {
			return nil, fmt.Errorf("%w: status must be active or inactive", ErrInvalidClientData)
		}
		client.Status = string(status)
	}
	if patch.DisplayOrder != nil {
		client.DisplayOrder = *patch.DisplayOrder
	}
	if patch.Website != nil {
		client.Website = strings.TrimSpace(*patch.Website)
	}
	if patch.Description != nil {
		client.Description = *patch.Description
	}

	oldKey := ""
	if patch.Logo != nil {
		key := fmt.Sprintf("clients/%s", uuid.NewString())
		url, err := s.blobs.Upload(ctx, key, patch.ContentType, patch.Logo)
		if err != nil {
			return nil, err
		}
		oldKey = client.ObjectKey
		client.Logo = url
		client.ObjectKey = key
	}

	if err := s.db.Save(&client).Error; err != nil {
		return nil, err
	}

	if oldKey != "" {
		_ = s.blobs.Delete(ctx, oldKey)
	}

	return &client, nil
}

// ToggleClientStatus flips a client between active and inactive
func (s *ClientService) ToggleClientStatus(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	if client.Status == string(models.ClientStatusActive) {
		client.Status = string(models.ClientStatusInactive)
	} else {
		client.Status = string(models.ClientStatusActive)
	}

	if err := s.db.Save(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// DeleteClient removes a client and its stored logo
func (s *ClientService) DeleteClient(ctx context.Context, id uint) error {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	if client.ObjectKey != "" {
		if err := s.blobs.Delete(ctx, client.ObjectKey); err != nil {
			return err
		}
	}

	return s.db.Delete(&client).Error
}

// ClientStats summarizes the client collection
type ClientStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

// GetClientStats returns counts by status
func (s *ClientService) GetClientStats() (*ClientStats, error) {
	stats := &ClientStats{}
	if err := s.db.Model(&models.Client{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Client{}).Where("status = ?", models.ClientStatusActive).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	stats.Inactive = stats.Total - stats.Active
	return stats, nil
}
