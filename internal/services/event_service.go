package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/Marco-XM/arixyDashboardBack/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrEventNotFound indicates the gallery event was not found
var ErrEventNotFound = errors.New("event not found")

// EventService manages the public photo gallery. Image bytes live in
// blob storage; the database keeps URL and key.
type EventService struct {
	db    *gorm.DB
	blobs storage.BlobStore
}

// NewEventService creates a new EventService instance
func NewEventService(db *gorm.DB, blobs storage.BlobStore) *EventService {
	return &EventService{db: db, blobs: blobs}
}

// UploadEvent stores the image and persists its gallery entry
func (s *EventService) UploadEvent(ctx context.Context, contentType string, body io.Reader) (*models.Event, error) {
	key := fmt.Sprintf("events/%s", uuid.NewString())

	url, err := s.blobs.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ImageURL:  url,
		ObjectKey: key,
	}
	if err := s.db.Create(event).Error; err != nil {
		// Best effort cleanup of the orphaned blob
		_ = s.blobs.Delete(ctx, key)
		return nil, err
	}

	return event, nil
}

// GetEvents retrieves all gallery entries
func (s *EventService) GetEvents() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteEvent removes a gallery entry and its stored image
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	var event models.Event
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	if event.ObjectKey != "" {
		if err := s.blobs.Delete(ctx, event.ObjectKey); err != nil {
			return err
		}
	}

	return s.db.Delete(&event).Error
}

// CountEvents returns the number of gallery entries
func (s *EventService) CountEvents() (int64, error) {
	var count int64
	err := s.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}
