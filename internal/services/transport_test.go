package services

import (
	"testing"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildTransport_ProviderPresets(t *testing.T) {
	tests := []struct {
		service  string
		wantHost string
		wantPort int
		wantSSL  bool
	}{
		{string(models.EmailServiceGmail), "smtp.gmail.com", 465, true},
		{string(models.EmailServiceOutlook), "smtp-mail.outlook.com", 587, false},
		{string(models.EmailServiceYahoo), "smtp.mail.yahoo.com", 465, true},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			cfg := &models.EmailConfig{
				SenderEmail:  "sender@example.com",
				EmailService: tt.service,
			}

			tc := BuildTransport(cfg, "secret")
			assert.Equal(t, tt.wantHost, tc.Host)
			assert.Equal(t, tt.wantPort, tc.Port)
			assert.Equal(t, tt.wantSSL, tc.SSL)
			assert.Equal(t, "sender@example.com", tc.Username)
			assert.Equal(t, "secret", tc.Password)
		})
	}
}

func TestBuildTransport_UnknownServiceFallsBackToGmail(t *testing.T) {
	cfg := &models.EmailConfig{
		SenderEmail:  "sender@example.com",
		EmailService: "pigeon-post",
	}

	tc := BuildTransport(cfg, "secret")
	assert.Equal(t, "smtp.gmail.com", tc.Host)
	assert.Equal(t, 465, tc.Port)
	assert.True(t, tc.SSL)
}

func TestBuildTransport_CustomServiceUsesStoredEndpoint(t *testing.T) {
	cfg := &models.EmailConfig{
		SenderEmail:  "sender@corp.io",
		EmailService: string(models.EmailServiceCustom),
		CustomHost:   "mail.corp.io",
		CustomPort:   587,
	}

	tc := BuildTransport(cfg, "secret")
	assert.Equal(t, "mail.corp.io", tc.Host)
	assert.Equal(t, 587, tc.Port)
	assert.False(t, tc.SSL)

	// Implicit TLS only on the SMTPS port
	cfg.CustomPort = 465
	tc = BuildTransport(cfg, "secret")
	assert.True(t, tc.SSL)
}

func TestTransportConfig_Addr(t *testing.T) {
	tc := TransportConfig{Host: "mail.corp.io", Port: 2525}
	assert.Equal(t, "mail.corp.io:2525", tc.Addr())
}
