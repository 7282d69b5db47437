package services

import (
	"errors"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"gorm.io/gorm"
)

var (
	// ErrBookingNotFound indicates the booking was not found
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidBookingData indicates required booking fields are missing
	ErrInvalidBookingData = errors.New("invalid booking data")
)

// BookingService handles event bookings submitted from the website.
type BookingService struct {
	db *gorm.DB
}

// NewBookingService creates a new BookingService instance
func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// CreateBooking persists a new booking request
func (s *BookingService) CreateBooking(booking *models.Booking) error {
	if booking.Name == "" || booking.MobileNumber1 == "" || booking.State == "" ||
		booking.EventType == "" || booking.Location == "" || booking.SelectedDate == "" ||
		booking.StartTime == "" || booking.SelectedPackages == "" {
		return ErrInvalidBookingData
	}
	return s.db.Create(booking).Error
}

// GetBookings retrieves all bookings
func (s *BookingService) GetBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetConfirmedBookings retrieves all confirmed bookings
func (s *BookingService) GetConfirmedBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("confirmed = ?", true).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountBookings returns the total number of bookings
func (s *BookingService) CountBookings() (int64, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).Count(&count).Error
	return count, err
}

// CountBookingsByConfirmed counts bookings filtered on the confirmed flag
func (s *BookingService) CountBookingsByConfirmed(confirmed bool) (int64, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).Where("confirmed = ?", confirmed).Count(&count).Error
	return count, err
}

// ConfirmBooking marks a booking as confirmed
func (s *BookingService) ConfirmBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	booking.Confirmed = true
	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// DeclineBooking deletes a booking and returns the removed record
func (s *BookingService) DeclineBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}
