package services

import (
	"testing"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAccount(t *testing.T, service *UserService, username, email, role string) *models.User {
	user, err := service.CreateUser(CreateUserInput{
		Username: username,
		Password: "secret123",
		Name:     "Test Account",
		Email:    email,
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestCreateUser_Validation(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewUserService(db)

	_, err := service.CreateUser(CreateUserInput{
		Username: "short",
		Password: "abc",
		Email:    "short@example.com",
		Role:     "user",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = service.CreateUser(CreateUserInput{
		Username: "weirdo",
		Password: "secret123",
		Email:    "weirdo@example.com",
		Role:     "superadmin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)

	createAccount(t, service, "jane", "jane@example.com", "user")

	// Username and email are both unique
	_, err = service.CreateUser(CreateUserInput{
		Username: "jane",
		Password: "secret123",
		Email:    "other@example.com",
		Role:     "user",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = service.CreateUser(CreateUserInput{
		Username: "jane2",
		Password: "secret123",
		Email:    "jane@example.com",
		Role:     "user",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestVerifyPassword_ByUsernameOrEmail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewUserService(db)
	created := createAccount(t, service, "jane", "jane@example.com", "admin")

	// Password hash never stores the plaintext
	assert.NotEqual(t, "secret123", created.PasswordHash)

	user, err := service.VerifyPassword("jane", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	user, err = service.VerifyPassword("jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = service.VerifyPassword("jane", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.VerifyPassword("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestListAndDeleteUsers_RoleScoped(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewUserService(db)

	admin := createAccount(t, service, "boss", "boss@example.com", "admin")
	alice := createAccount(t, service, "alice", "alice@example.com", "user")
	createAccount(t, service, "bob", "bob@example.com", "user")

	users, err := service.ListUsersExcluding("user", alice.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].Username)

	count, err := service.CountUsersExcluding("user", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Deleting with the wrong role filter misses
	_, err = service.DeleteUser(admin.ID, "user")
	assert.ErrorIs(t, err, ErrUserNotFound)

	deleted, err := service.DeleteUser(alice.ID, "user")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, deleted.ID)
}
