package services

import (
	"errors"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"gorm.io/gorm"
)

// ErrBlockedDateNotFound indicates the blocked date was not found
var ErrBlockedDateNotFound = errors.New("blocked date not found")

// BlockedDateService manages dates unavailable for booking.
type BlockedDateService struct {
	db *gorm.DB
}

// NewBlockedDateService creates a new BlockedDateService instance
func NewBlockedDateService(db *gorm.DB) *BlockedDateService {
	return &BlockedDateService{db: db}
}

// GetBlockedDates retrieves all blocked dates
func (s *BlockedDateService) GetBlockedDates() ([]models.BlockedDate, error) {
	var dates []models.BlockedDate
	if err := s.db.Find(&dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

// AddBlockedDate persists a new blocked date
func (s *BlockedDateService) AddBlockedDate(date *models.BlockedDate) error {
	return s.db.Create(date).Error
}

// RemoveBlockedDate deletes a blocked date and returns the removed record
func (s *BlockedDateService) RemoveBlockedDate(id uint) (*models.BlockedDate, error) {
	var date models.BlockedDate
	if err := s.db.First(&date, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockedDateNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&date).Error; err != nil {
		return nil, err
	}
	return &date, nil
}

// CountBlockedDates returns the number of blocked dates
func (s *BlockedDateService) CountBlockedDates() (int64, error) {
	var count int64
	err := s.db.Model(&models.BlockedDate{}).Count(&count).Error
	return count, err
}
