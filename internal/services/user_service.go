package services

import (
	"errors"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrUserNotFound indicates the user was not found
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists indicates the username or email is already taken
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials indicates invalid login credentials
	ErrInvalidCredentials = errors.New("invalid login credentials")
	// ErrPasswordTooShort indicates the password is too short
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	// ErrInvalidRole indicates an unknown role value
	ErrInvalidRole = errors.New("role must be admin or user")
)

// UserService handles dashboard account management
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new UserService instance
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUserInput represents the input for creating a dashboard account
type CreateUserInput struct {
	Username string
	Password string
	Name     string
	Email    string
	Role     string
}

// CreateUser creates a new account with a bcrypt-hashed password
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	if len(input.Password) < 6 {
		return nil, ErrPasswordTooShort
	}
	if input.Role != string(models.RoleAdmin) && input.Role != string(models.RoleUser) {
		return nil, ErrInvalidRole
	}

	var existing models.User
	if err := s.db.Where("username = ? OR email = ?", input.Username, input.Email).First(&existing).Error; err == nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newUser := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		Role:         input.Role,
	}

	if err := s.db.Create(newUser).Error; err != nil {
		return nil, err
	}

	return newUser, nil
}

// VerifyPassword checks credentials by username or email and returns the user
func (s *UserService) VerifyPassword(identifier, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsersExcluding retrieves all accounts with the given role except one
func (s *UserService) ListUsersExcluding(role string, excludeID uint) ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("role = ? AND id <> ?", role, excludeID).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes an account with the given role
func (s *UserService) DeleteUser(id uint, role string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ? AND role = ?", id, role).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CountUsersExcluding counts accounts with the given role except one
func (s *UserService) CountUsersExcluding(role string, excludeID uint) (int64, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("role = ? AND id <> ?", role, excludeID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
