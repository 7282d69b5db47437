package services

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"time"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"gorm.io/gorm"
)

var (
	// ErrConfigNotFound indicates the email configuration was not found
	ErrConfigNotFound = errors.New("email configuration not found")
	// ErrNoEmailConfig indicates the user has no email configuration at all
	ErrNoEmailConfig = errors.New("email configuration not found, please set up your email settings first")
	// ErrConfigAlreadyExists indicates a configuration with this sender email already exists
	ErrConfigAlreadyExists = errors.New("an email configuration with this sender email already exists")
	// ErrInvalidConfigData indicates required configuration fields are missing
	ErrInvalidConfigData = errors.New("sender email, password, and name are required")
	// ErrCustomHostRequired indicates the custom service is missing host or port
	ErrCustomHostRequired = errors.New("custom host and port are required for custom email service")
	// ErrEncryptionFailed indicates password encryption failed
	ErrEncryptionFailed = errors.New("password encryption failed")
	// ErrDecryptionFailed indicates password decryption failed
	ErrDecryptionFailed = errors.New("password decryption failed")
)

// EmailConfigService manages sender identities and their lifecycle:
// creation, partial updates, default selection and preflight verification.
type EmailConfigService struct {
	db            *gorm.DB
	encryptionKey []byte // 32 bytes for AES-256
	logService    *LogService
	newTransport  TransportFactory
}

// NewEmailConfigService creates a new EmailConfigService instance
func NewEmailConfigService(db *gorm.DB, encryptionKey []byte) *EmailConfigService {
	key := make([]byte, 32)
	copy(key, encryptionKey)
	return &EmailConfigService{
		db:            db,
		encryptionKey: key,
		logService:    NewLogService(db),
		newTransport:  NewSMTPTransport,
	}
}

// SetTransportFactory overrides how SMTP transports are built. Used by
// tests to avoid real network dials.
func (s *EmailConfigService) SetTransportFactory(f TransportFactory) {
	s.newTransport = f
}

// encryptPassword encrypts a password using AES-256-GCM
func (s *EmailConfigService) encryptPassword(password string) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", ErrEncryptionFailed
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", ErrEncryptionFailed
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", ErrEncryptionFailed
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(password), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// decryptPassword decrypts a password using AES-256-GCM
func (s *EmailConfigService) decryptPassword(encryptedPassword string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encryptedPassword)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", ErrDecryptionFailed
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// GetDecryptedPassword returns the plaintext sender password for a config
func (s *EmailConfigService) GetDecryptedPassword(cfg *models.EmailConfig) (string, error) {
	return s.decryptPassword(cfg.PasswordEncrypted)
}

// CreateConfigInput represents the input for creating an email configuration
type CreateConfigInput struct {
	UserID         uint
	SenderEmail    string
	SenderPassword string
	SenderName     string
	EmailService   string
	CustomHost     string
	CustomPort     int
	IsDefault      bool
}

// CreateConfig creates a new sender identity for a user. The first
// configuration a user creates always becomes the default. Verification
// is not attempted here; callers run VerifyConfig afterwards so a failed
// preflight never rejects the create.
func (s *EmailConfigService) CreateConfig(input CreateConfigInput) (*models.EmailConfig, error) {
	if input.SenderEmail == "" || input.SenderPassword == "" || input.SenderName == "" {
		return nil, ErrInvalidConfigData
	}

	if input.EmailService == "" {
		input.EmailService = string(models.EmailServiceGmail)
	}
	if input.EmailService == string(models.EmailServiceCustom) && (input.CustomHost == "" || input.CustomPort == 0) {
		return nil, ErrCustomHostRequired
	}

	// Sender email must be unique among this user's configs
	var existing models.EmailConfig
	if err := s.db.Where("user_id = ? AND sender_email = ?", input.UserID, input.SenderEmail).First(&existing).Error; err == nil {
		return nil, ErrConfigAlreadyExists
	}

	encryptedPassword, err := s.encryptPassword(input.SenderPassword)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.EmailConfig{}).Where("user_id = ?", input.UserID).Count(&count).Error; err != nil {
		return nil, err
	}
	// The very first config is always the default
	isDefault := count == 0 || input.IsDefault

	if isDefault {
		if err := s.db.Model(&models.EmailConfig{}).Where("user_id = ?", input.UserID).
			Update("is_default", false).Error; err != nil {
			return nil, err
		}
	}

	cfg := &models.EmailConfig{
		UserID:            input.UserID,
		SenderEmail:       input.SenderEmail,
		PasswordEncrypted: encryptedPassword,
		SenderName:        input.SenderName,
		EmailService:      input.EmailService,
		IsDefault:         isDefault,
	}
	if input.EmailService == string(models.EmailServiceCustom) {
		cfg.CustomHost = input.CustomHost
		cfg.CustomPort = input.CustomPort
	}

	if err := s.db.Create(cfg).Error; err != nil {
		return nil, err
	}

	s.logService.LogInfo(input.UserID, models.LogModuleMarketing, "config_create", "Email configuration created", map[string]interface{}{
		"config_id":    cfg.ID,
		"sender_email": cfg.SenderEmail,
		"service":      cfg.EmailService,
	})

	return cfg, nil
}

// GetConfigByIDAndUserID retrieves a configuration scoped to its owner
func (s *EmailConfigService) GetConfigByIDAndUserID(id, userID uint) (*models.EmailConfig, error) {
	var cfg models.EmailConfig
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// GetConfigsByUserID retrieves all configurations for a user
func (s *EmailConfigService) GetConfigsByUserID(userID uint) ([]models.EmailConfig, error) {
	var configs []models.EmailConfig
	if err := s.db.Where("user_id = ?", userID).Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// ResolveConfig selects the configuration a send or verify operation
// should use. An explicit id is looked up scoped to the user; otherwise
// the default config is used, falling back to any config the user owns.
func (s *EmailConfigService) ResolveConfig(userID uint, configID *uint) (*models.EmailConfig, error) {
	if configID != nil {
		return s.GetConfigByIDAndUserID(*configID, userID)
	}

	var cfg models.EmailConfig
	err := s.db.Where("user_id = ? AND is_default = ?", userID, true).First(&cfg).Error
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// No default: fall back to any config this user owns
	err = s.db.Where("user_id = ?", userID).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEmailConfig
		}
		return nil, err
	}
	return &cfg, nil
}

// UpdateConfigPatch represents a partial update. Nil fields are left
// untouched.
type UpdateConfigPatch struct {
	SenderEmail    *string
	SenderPassword *string
	SenderName     *string
	EmailService   *string
	CustomHost     *string
	CustomPort     *int
	IsDefault      *bool
}

// ConnectionFieldsChanged reports whether the patch touches any field
// that affects how the transport connects or authenticates. Cosmetic
// fields (sender name, default flag) do not reset verification.
func (p UpdateConfigPatch) ConnectionFieldsChanged() bool {
	return p.SenderEmail != nil || p.SenderPassword != nil || p.EmailService != nil ||
		p.CustomHost != nil || p.CustomPort != nil
}

// UpdateConfig applies a partial update to a configuration. When a
// connection-relevant field is included the verified flag is reset;
// callers should then re-run VerifyConfig.
func (s *EmailConfigService) UpdateConfig(id, userID uint, patch UpdateConfigPatch) (*models.EmailConfig, error) {
	cfg, err := s.GetConfigByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	if patch.SenderEmail != nil {
		cfg.SenderEmail = *patch.SenderEmail
	}
	if patch.SenderPassword != nil {
		encrypted, err := s.encryptPassword(*patch.SenderPassword)
		if err != nil {
			return nil, err
		}
		cfg.PasswordEncrypted = encrypted
	}
	if patch.SenderName != nil {
		cfg.SenderName = *patch.SenderName
	}
	if patch.EmailService != nil {
		cfg.EmailService = *patch.EmailService
	}
	if patch.CustomHost != nil {
		cfg.CustomHost = *patch.CustomHost
	}
	if patch.CustomPort != nil {
		cfg.CustomPort = *patch.CustomPort
	}

	if patch.IsDefault != nil && *patch.IsDefault {
		// Self-heal the one-default invariant before flipping this one on
		if err := s.db.Model(&models.EmailConfig{}).
			Where("user_id = ? AND id <> ?", userID, cfg.ID).
			Update("is_default", false).Error; err != nil {
			return nil, err
		}
		cfg.IsDefault = true
	}

	if patch.ConnectionFieldsChanged() {
		cfg.IsVerified = false
	}

	if err := s.db.Save(cfg).Error; err != nil {
		return nil, err
	}

	s.logService.LogInfo(userID, models.LogModuleMarketing, "config_update", "Email configuration updated", map[string]interface{}{
		"config_id": cfg.ID,
	})

	return cfg, nil
}

// DeleteConfig removes a configuration. If the deleted entry was the
// default, the first remaining config is promoted.
func (s *EmailConfigService) DeleteConfig(id, userID uint) error {
	cfg, err := s.GetConfigByIDAndUserID(id, userID)
	if err != nil {
		return err
	}

	wasDefault := cfg.IsDefault

	if err := s.db.Delete(cfg).Error; err != nil {
		return err
	}

	if wasDefault {
		var next models.EmailConfig
		if err := s.db.Where("user_id = ?", userID).First(&next).Error; err == nil {
			next.IsDefault = true
			if err := s.db.Save(&next).Error; err != nil {
				return err
			}
		}
	}

	s.logService.LogInfo(userID, models.LogModuleMarketing, "config_delete", "Email configuration deleted", map[string]interface{}{
		"config_id":    id,
		"sender_email": cfg.SenderEmail,
	})

	return nil
}

// DeleteFirstConfig removes the first configuration a user owns
func (s *EmailConfigService) DeleteFirstConfig(userID uint) error {
	var cfg models.EmailConfig
	if err := s.db.Where("user_id = ?", userID).First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrConfigNotFound
		}
		return err
	}
	return s.DeleteConfig(cfg.ID, userID)
}

// SetDefaultConfig unsets the default flag on all of the user's configs
// and sets it on the requested one.
func (s *EmailConfigService) SetDefaultConfig(id, userID uint) (*models.EmailConfig, error) {
	cfg, err := s.GetConfigByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.EmailConfig{}).Where("user_id = ?", userID).
		Update("is_default", false).Error; err != nil {
		return nil, err
	}

	cfg.IsDefault = true
	if err := s.db.Save(cfg).Error; err != nil {
		return nil, err
	}

	return cfg, nil
}

// VerifyConfig runs a preflight connection check against the transport
// the configuration resolves to and persists the outcome. The returned
// error is the verification failure itself; the configuration record is
// saved either way.
func (s *EmailConfigService) VerifyConfig(cfg *models.EmailConfig) error {
	password, err := s.decryptPassword(cfg.PasswordEncrypted)
	if err != nil {
		return err
	}

	transport := s.newTransport(BuildTransport(cfg, password))
	verifyErr := transport.Verify()

	if verifyErr != nil {
		cfg.IsVerified = false
	} else {
		now := time.Now()
		cfg.IsVerified = true
		cfg.LastVerified = &now
	}

	if err := s.db.Save(cfg).Error; err != nil {
		return err
	}

	if verifyErr != nil {
		s.logService.LogWarn(cfg.UserID, models.LogModuleMarketing, "config_verify", "Email configuration verification failed", map[string]interface{}{
			"config_id": cfg.ID,
			"error":     verifyErr.Error(),
		})
	}

	return verifyErr
}
