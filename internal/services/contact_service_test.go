package services

import (
	"testing"
	"time"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactInput() CreateContactInput {
	return CreateContactInput{
		Name:        "John Smith",
		Email:       "John.Smith@Example.com",
		PhoneNumber: "0123456789",
		CompanyName: "Smith & Co",
		Subject:     "Partnership",
		Message:     "We would like to work together.",
	}
}

func TestCreateContact_ValidationAndDefaults(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewContactService(db)

	missing := validContactInput()
	missing.Message = ""
	_, err := service.CreateContact(missing)
	assert.ErrorIs(t, err, ErrInvalidContactData)

	badEmail := validContactInput()
	badEmail.Email = "not-an-email"
	_, err = service.CreateContact(badEmail)
	assert.ErrorIs(t, err, ErrInvalidContactData)

	contact, err := service.CreateContact(validContactInput())
	require.NoError(t, err)

	assert.Equal(t, "john.smith@example.com", contact.Email)
	assert.Equal(t, string(models.ContactStatusNew), contact.Status)
	assert.Equal(t, string(models.ContactPriorityMedium), contact.Priority)
	assert.Nil(t, contact.ContactedAt)
}

func TestUpdateContact_StatusTransitionStampsContactedAt(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewContactService(db)

	contact, err := service.CreateContact(validContactInput())
	require.NoError(t, err)

	status := string(models.ContactStatusContacted)
	updated, err := service.UpdateContact(contact.ID, UpdateContactPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, status, updated.Status)
	require.NotNil(t, updated.ContactedAt)
	firstStamp := *updated.ContactedAt

	// Moving further along the pipeline keeps the original stamp
	converted := string(models.ContactStatusConverted)
	updated, err = service.UpdateContact(contact.ID, UpdateContactPatch{Status: &converted})
	require.NoError(t, err)
	require.NotNil(t, updated.ContactedAt)
	assert.WithinDuration(t, firstStamp, *updated.ContactedAt, time.Second)

	bogus := "archived"
	_, err = service.UpdateContact(contact.ID, UpdateContactPatch{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidContactData)
}

func TestListContacts_FiltersAndPagination(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewContactService(db)

	for i := 0; i < 3; i++ {
		input := validContactInput()
		input.Email = string(rune('a'+i)) + "@example.com"
		_, err := service.CreateContact(input)
		require.NoError(t, err)
	}

	special := validContactInput()
	special.Name = "Findable Person"
	special.Email = "findable@example.com"
	created, err := service.CreateContact(special)
	require.NoError(t, err)

	high := string(models.ContactPriorityHigh)
	_, err = service.UpdateContact(created.ID, UpdateContactPatch{Priority: &high})
	require.NoError(t, err)

	contacts, total, err := service.ListContacts(ContactListOptions{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, contacts, 2)

	contacts, total, err = service.ListContacts(ContactListOptions{Priority: high})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, contacts, 1)
	assert.Equal(t, created.ID, contacts[0].ID)

	contacts, _, err = service.ListContacts(ContactListOptions{Search: "Findable"})
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Findable Person", contacts[0].Name)
}

func TestContactStats(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewContactService(db)

	first, err := service.CreateContact(validContactInput())
	require.NoError(t, err)

	second := validContactInput()
	second.Email = "other@example.com"
	_, err = service.CreateContact(second)
	require.NoError(t, err)

	closed := string(models.ContactStatusClosed)
	_, err = service.UpdateContact(first.ID, UpdateContactPatch{Status: &closed})
	require.NoError(t, err)

	stats, err := service.GetContactStats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.New)
	assert.Equal(t, int64(1), stats.Closed)
}

func TestDeleteContact(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewContactService(db)

	contact, err := service.CreateContact(validContactInput())
	require.NoError(t, err)

	require.NoError(t, service.DeleteContact(contact.ID))
	assert.ErrorIs(t, service.DeleteContact(contact.ID), ErrContactNotFound)
}
