package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	mail "github.com/go-mail/mail"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	// ErrNoRecipients indicates the send request had an empty recipient list
	ErrNoRecipients = errors.New("emails array is required")
	// ErrMissingContent indicates subject or message is missing
	ErrMissingContent = errors.New("subject and message are required")
	// ErrTransportVerification indicates the preflight check failed
	ErrTransportVerification = errors.New("email transport verification failed")
	// ErrSendFailed indicates at least one send operation failed
	ErrSendFailed = errors.New("failed to send emails")
)

// MailerService fans a campaign out to a list of recipients through a
// resolved sender configuration.
type MailerService struct {
	db            *gorm.DB
	configService *EmailConfigService
	logService    *LogService
	newTransport  TransportFactory
	now           func() time.Time
}

// NewMailerService creates a new MailerService instance
func NewMailerService(db *gorm.DB, configService *EmailConfigService) *MailerService {
	return &MailerService{
		db:            db,
		configService: configService,
		logService:    NewLogService(db),
		newTransport:  NewSMTPTransport,
		now:           time.Now,
	}
}

// SetTransportFactory overrides how SMTP transports are built. Used by
// tests to avoid real network dials.
func (s *MailerService) SetTransportFactory(f TransportFactory) {
	s.newTransport = f
}

// SendCampaignInput represents a bulk send request
type SendCampaignInput struct {
	Emails   []string
	Subject  string
	Message  string
	IsHTML   bool
	ConfigID *uint
}

// SendCampaign renders and sends one message per recipient through the
// user's resolved configuration. Sends run concurrently; the call fails
// as a whole if the transport cannot be verified or any send errors.
// Individual recipient outcomes are not reported separately.
func (s *MailerService) SendCampaign(userID uint, input SendCampaignInput) (int, error) {
	if len(input.Emails) == 0 {
		return 0, ErrNoRecipients
	}
	if input.Subject == "" || input.Message == "" {
		return 0, ErrMissingContent
	}

	cfg, err := s.configService.ResolveConfig(userID, input.ConfigID)
	if err != nil {
		return 0, err
	}

	password, err := s.configService.GetDecryptedPassword(cfg)
	if err != nil {
		return 0, err
	}

	transport := s.newTransport(BuildTransport(cfg, password))
	if err := transport.Verify(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTransportVerification, err)
	}

	sentAt := s.now()

	var g errgroup.Group
	for _, recipient := range input.Emails {
		recipient := recipient
		g.Go(func() error {
			ctx := RenderContext{
				RecipientEmail: recipient,
				SenderName:     cfg.SenderName,
				Date:           sentAt,
			}

			m := mail.NewMessage()
			m.SetAddressHeader("From", cfg.SenderEmail, cfg.SenderName)
			m.SetHeader("To", recipient)
			m.SetHeader("Subject", RenderTemplate(input.Subject, ctx))

			body := RenderTemplate(input.Message, ctx)
			if input.IsHTML {
				m.SetBody("text/html", body)
			} else {
				m.SetBody("text/plain", body)
			}

			return transport.Send(m)
		})
	}

	if err := g.Wait(); err != nil {
		s.logService.LogError(userID, models.LogModuleMarketing, "send", "Campaign send failed", map[string]interface{}{
			"config_id":  cfg.ID,
			"recipients": len(input.Emails),
			"error":      err.Error(),
		})
		return 0, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logService.LogInfo(userID, models.LogModuleMarketing, "send", "Campaign sent", map[string]interface{}{
		"config_id":  cfg.ID,
		"recipients": len(input.Emails),
	})

	return len(input.Emails), nil
}
