package services

import (
	"testing"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBooking() *models.Booking {
	return &models.Booking{
		Name:             "Jane Doe",
		Email:            "jane@example.com",
		MobileNumber1:    "0100000000",
		State:            "Cairo",
		EventType:        "Wedding",
		Location:         "Nile Hall",
		SelectedDate:     "2025-10-01",
		StartTime:        "18:00",
		TotalPrice:       1500,
		MaxHours:         4,
		SelectedPackages: "gold",
	}
}

func TestCreateBooking_RequiredFields(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewBookingService(db)

	incomplete := validBooking()
	incomplete.Location = ""
	assert.ErrorIs(t, service.CreateBooking(incomplete), ErrInvalidBookingData)

	require.NoError(t, service.CreateBooking(validBooking()))

	count, err := service.CountBookings()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestConfirmBooking(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewBookingService(db)

	booking := validBooking()
	require.NoError(t, service.CreateBooking(booking))

	confirmed, err := service.ConfirmBooking(booking.ID)
	require.NoError(t, err)
	assert.True(t, confirmed.Confirmed)

	confirmedList, err := service.GetConfirmedBookings()
	require.NoError(t, err)
	assert.Len(t, confirmedList, 1)

	confirmedCount, err := service.CountBookingsByConfirmed(true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), confirmedCount)

	_, err = service.ConfirmBooking(9999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDeclineBooking_RemovesRecord(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewBookingService(db)

	booking := validBooking()
	require.NoError(t, service.CreateBooking(booking))

	declined, err := service.DeclineBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, declined.ID)

	count, err := service.CountBookings()
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = service.DeclineBooking(booking.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
