package services

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T, transport *fakeTransport) (*MailerService, *EmailConfigService, func()) {
	db, cleanup := setupTestDB(t)

	configService := newTestConfigService(db, transport)
	mailer := NewMailerService(db, configService)
	mailer.SetTransportFactory(fakeFactory(transport))

	return mailer, configService, cleanup
}

func TestSendCampaign_EmptyRecipientsRejectedBeforeTransport(t *testing.T) {
	transport := &fakeTransport{}
	mailer, _, cleanup := newTestMailer(t, transport)
	defer cleanup()

	_, err := mailer.SendCampaign(1, SendCampaignInput{
		Emails:  []string{},
		Subject: "Hi",
		Message: "Body",
	})

	assert.ErrorIs(t, err, ErrNoRecipients)
	assert.Zero(t, transport.verifyCalls, "transport must not be touched on validation failure")
	assert.Empty(t, transport.sentTo)
}

func TestSendCampaign_MissingContentRejected(t *testing.T) {
	transport := &fakeTransport{}
	mailer, _, cleanup := newTestMailer(t, transport)
	defer cleanup()

	_, err := mailer.SendCampaign(1, SendCampaignInput{
		Emails: []string{"a@x.com"},
	})

	assert.ErrorIs(t, err, ErrMissingContent)
	assert.Zero(t, transport.verifyCalls)
}

func TestSendCampaign_NoConfigForUser(t *testing.T) {
	transport := &fakeTransport{}
	mailer, _, cleanup := newTestMailer(t, transport)
	defer cleanup()

	_, err := mailer.SendCampaign(7, SendCampaignInput{
		Emails:  []string{"a@x.com"},
		Subject: "Hi",
		Message: "Body",
	})

	assert.ErrorIs(t, err, ErrNoEmailConfig)
}

func TestSendCampaign_VerifyFailureAbortsBeforeAnySend(t *testing.T) {
	transport := &fakeTransport{verifyErr: errors.New("connection refused")}
	mailer, configService, cleanup := newTestMailer(t, transport)
	defer cleanup()

	createTestConfig(t, configService, 1, "sender@example.com", false)

	_, err := mailer.SendCampaign(1, SendCampaignInput{
		Emails:  []string{"a@x.com", "b@x.com"},
		Subject: "Hi",
		Message: "Body",
	})

	assert.ErrorIs(t, err, ErrTransportVerification)
	assert.Empty(t, transport.sentTo)
}

func TestSendCampaign_SendsOneMessagePerRecipient(t *testing.T) {
	transport := &fakeTransport{}
	mailer, configService, cleanup := newTestMailer(t, transport)
	defer cleanup()

	createTestConfig(t, configService, 1, "sender@example.com", false)

	recipients := []string{"a@x.com", "b@x.com", "c@x.com"}
	count, err := mailer.SendCampaign(1, SendCampaignInput{
		Emails:  recipients,
		Subject: "Hello $userName",
		Message: "Sent on $date",
	})

	require.NoError(t, err)
	assert.Equal(t, len(recipients), count)

	sort.Strings(transport.sentTo)
	assert.Equal(t, recipients, transport.sentTo)
}

func TestSendCampaign_SendFailureFailsWholeBatch(t *testing.T) {
	transport := &fakeTransport{sendErr: errors.New("mailbox unavailable")}
	mailer, configService, cleanup := newTestMailer(t, transport)
	defer cleanup()

	createTestConfig(t, configService, 1, "sender@example.com", false)

	count, err := mailer.SendCampaign(1, SendCampaignInput{
		Emails:  []string{"a@x.com", "b@x.com"},
		Subject: "Hi",
		Message: "Body",
	})

	assert.ErrorIs(t, err, ErrSendFailed)
	assert.Zero(t, count)
}

func TestSendCampaign_ExplicitConfigSelection(t *testing.T) {
	transport := &fakeTransport{}
	mailer, configService, cleanup := newTestMailer(t, transport)
	defer cleanup()

	createTestConfig(t, configService, 1, "default@example.com", false)
	second := createTestConfig(t, configService, 1, "second@example.com", false)

	count, err := mailer.SendCampaign(1, SendCampaignInput{
		Emails:   []string{"a@x.com"},
		Subject:  "Hi",
		Message:  "Body",
		ConfigID: &second.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
