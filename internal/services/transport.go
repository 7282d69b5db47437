package services

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	mail "github.com/go-mail/mail"
)

const (
	connectionTimeout = 10 * time.Second

	// smtpsPort is the implicit-TLS SMTP submission port. Custom
	// configurations on this port are dialed with SSL.
	smtpsPort = 465
)

// TransportConfig is a fully resolved SMTP endpoint plus credentials.
type TransportConfig struct {
	Host     string
	Port     int
	SSL      bool
	Username string
	Password string
}

// Addr returns the host:port dial address
func (t TransportConfig) Addr() string {
	return fmt.Sprintf("%s:%d", t.Host, t.Port)
}

type smtpPreset struct {
	Host string
	Port int
	SSL  bool
}

// servicePresets maps a provider name to its SMTP endpoint. Adding a
// provider is a data change here, not a code change elsewhere.
var servicePresets = map[string]smtpPreset{
	string(models.EmailServiceGmail):   {Host: "smtp.gmail.com", Port: 465, SSL: true},
	string(models.EmailServiceOutlook): {Host: "smtp-mail.outlook.com", Port: 587, SSL: false},
	string(models.EmailServiceYahoo):   {Host: "smtp.mail.yahoo.com", Port: 465, SSL: true},
}

// BuildTransport resolves an email configuration into a dialable SMTP
// transport. Unknown service names fall back to the gmail preset; the
// custom service uses the stored host and port with implicit TLS only on
// the standard SMTPS port.
func BuildTransport(cfg *models.EmailConfig, password string) TransportConfig {
	tc := TransportConfig{
		Username: cfg.SenderEmail,
		Password: password,
	}

	if cfg.EmailService == string(models.EmailServiceCustom) {
		tc.Host = cfg.CustomHost
		tc.Port = cfg.CustomPort
		tc.SSL = cfg.CustomPort == smtpsPort
		return tc
	}

	preset, ok := servicePresets[cfg.EmailService]
	if !ok {
		preset = servicePresets[string(models.EmailServiceGmail)]
	}
	tc.Host = preset.Host
	tc.Port = preset.Port
	tc.SSL = preset.SSL
	return tc
}

// Transport delivers rendered messages through one SMTP endpoint.
type Transport interface {
	// Verify performs a preflight connection and authentication check
	// without sending a message.
	Verify() error

	// Send delivers a single message.
	Send(msg *mail.Message) error
}

// TransportFactory builds a Transport from a resolved configuration.
type TransportFactory func(TransportConfig) Transport

// smtpTransport is the production Transport backed by go-mail.
type smtpTransport struct {
	cfg    TransportConfig
	dialer *mail.Dialer
}

// NewSMTPTransport creates a Transport that dials a real SMTP server.
func NewSMTPTransport(tc TransportConfig) Transport {
	d := mail.NewDialer(tc.Host, tc.Port, tc.Username, tc.Password)
	d.SSL = tc.SSL
	d.Timeout = connectionTimeout
	d.TLSConfig = &tls.Config{ServerName: tc.Host}
	return &smtpTransport{cfg: tc, dialer: d}
}

func (t *smtpTransport) Send(msg *mail.Message) error {
	return t.dialer.DialAndSend(msg)
}

// Verify connects, negotiates TLS, and authenticates without sending.
func (t *smtpTransport) Verify() error {
	var client *smtp.Client

	if t.cfg.SSL {
		tlsConfig := &tls.Config{ServerName: t.cfg.Host}
		conn, err := tls.DialWithDialer(&net.Dialer{Timeout: connectionTimeout}, "tcp", t.cfg.Addr(), tlsConfig)
		if err != nil {
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}
		defer conn.Close()

		client, err = smtp.NewClient(conn, t.cfg.Host)
		if err != nil {
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
	} else {
		var err error
		client, err = smtp.Dial(t.cfg.Addr())
		if err != nil {
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}

		if ok, _ := client.Extension("STARTTLS"); ok {
			tlsConfig := &tls.Config{ServerName: t.cfg.Host}
			if err := client.StartTLS(tlsConfig); err != nil {
				return fmt.Errorf("STARTTLS failed: %w", err)
			}
		}
	}
	defer client.Close()

	auth := smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	return nil
}
