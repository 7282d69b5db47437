package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/Marco-XM/arixyDashboardBack/internal/services"
	"github.com/gin-gonic/gin"
	mail "github.com/go-mail/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubTransport struct {
	verifyErr error
	sendErr   error
	sent      int
}

func (s *stubTransport) Verify() error { return s.verifyErr }

func (s *stubTransport) Send(msg *mail.Message) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent++
	return nil
}

func setupMarketingRouter(t *testing.T, transport *stubTransport) (*gin.Engine, func()) {
	tmpFile, err := os.CreateTemp("", "test_*.db")
	require.NoError(t, err)
	tmpFile.Close()

	db, err := gorm.Open(sqlite.Open(tmpFile.Name()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.EmailConfig{},
		&models.EmailTemplate{},
		&models.Log{},
	))

	factory := func(services.TransportConfig) services.Transport { return transport }

	configService := services.NewEmailConfigService(db, []byte("0123456789abcdef0123456789abcdef"))
	configService.SetTransportFactory(factory)
	templateService := services.NewTemplateService(db)
	mailerService := services.NewMailerService(db, configService)
	mailerService.SetTransportFactory(factory)

	handler := NewMarketingHandler(configService, templateService, mailerService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Test routes run as a fixed authenticated user
	router.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Next()
	})

	marketing := router.Group("/api/marketing")
	{
		marketing.POST("/send-email", handler.SendEmail)
		marketing.GET("/templates", handler.GetTemplates)
		marketing.POST("/templates", handler.CreateTemplate)
		marketing.GET("/test-config", handler.TestEmailConfig)
		marketing.GET("/test-config/:id", handler.TestEmailConfig)
		marketing.GET("/email-config", handler.GetEmailConfigs)
		marketing.POST("/email-config", handler.SaveEmailConfig)
		marketing.PUT("/email-config/:id", handler.UpdateEmailConfig)
		marketing.DELETE("/email-config/:id", handler.DeleteEmailConfig)
		marketing.PUT("/email-config/:id/default", handler.SetDefaultEmailConfig)
	}

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		os.Remove(tmpFile.Name())
	}

	return router, cleanup
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSaveEmailConfig_CreateAndVerify(t *testing.T) {
	router, cleanup := setupMarketingRouter(t, &stubTransport{})
	defer cleanup()

	w := doJSON(router, http.MethodPost, "/api/marketing/email-config", gin.H{
		"senderEmail":    "sender@example.com",
		"senderPassword": "app-password",
		"senderName":     "Sender",
		"emailService":   "gmail",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "verified")

	cfg := resp["config"].(map[string]interface{})
	assert.Equal(t, true, cfg["is_verified"])
	assert.Equal(t, true, cfg["is_default"])
	// The secret never serializes
	_, leaked := cfg["password_encrypted"]
	assert.False(t, leaked)
}

func TestSaveEmailConfig_VerificationSoftFail(t *testing.T) {
	router, cleanup := setupMarketingRouter(t, &stubTransport{verifyErr: errors.New("bad credentials")})
	defer cleanup()

	w := doJSON(router, http.MethodPost, "/api/marketing/email-config", gin.H{
		"senderEmail":    "sender@example.com",
		"senderPassword": "wrong",
		"senderName":     "Sender",
	})

	// Verification failure is not a hard failure: the config persists
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])

	cfg := resp["config"].(map[string]interface{})
	assert.Equal(t, false, cfg["is_verified"])
}

func TestSaveEmailConfig_ValidationErrors(t *testing.T) {
	router, cleanup := setupMarketingRouter(t, &stubTransport{})
	defer cleanup()

	// Missing required fields
	w := doJSON(router, http.MethodPost, "/api/marketing/email-config", gin.H{
		"senderEmail": "sender@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Custom service without host/port
	w = doJSON(router, http.MethodPost, "/api/marketing/email-config", gin.H{
		"senderEmail":    "sender@example.com",
		"senderPassword": "pw",
		"senderName":     "Sender",
		"emailService":   "custom",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate sender for the same user
	w = doJSON(router, http.MethodPost, "/api/marketing/email-config", gin.H{
		"senderEmail":    "dup@example.com",
		"senderPassword": "pw",
		"senderName":     "Sender",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/marketing/email-config", gin.H{
		"senderEmail":    "dup@example.com",
		"senderPassword": "pw",
		"senderName":     "Sender",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendEmail_EmptyRecipients(t *testing.T) {
	transport := &stubTransport{}
	router, cleanup := setupMarketingRouter(t, transport)
	defer cleanup()

	w := doJSON(router, http.MethodPost, "/api/marketing/send-email", gin.H{
		"emails":  []string{},
		"subject": "Hi",
		"message": "Body",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, transport.sent)
}

func TestSendEmail_HappyPath(t *testing.T) {
	transport := &stubTransport{}
	router, cleanup := setupMarketingRouter(t, transport)
	defer cleanup()

	w := doJSON(router, http.MethodPost, "/api/marketing/email-config", gin.H{
		"senderEmail":    "sender@example.com",
		"senderPassword": "pw",
		"senderName":     "Sender",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/marketing/send-email", gin.H{
		"emails":  []string{"a@x.com", "b@x.com"},
		"subject": "Hello $userName",
		"message": "Sent $date",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["count"])
	assert.Equal(t, 2, transport.sent)
}

func TestSendEmail_WithoutConfig(t *testing.T) {
	router, cleanup := setupMarketingRouter(t, &stubTransport{})
	defer cleanup()

	w := doJSON(router, http.MethodPost, "/api/marketing/send-email", gin.H{
		"emails":  []string{"a@x.com"},
		"subject": "Hi",
		"message": "Body",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTestEmailConfig_DefaultAndExplicit(t *testing.T) {
	router, cleanup := setupMarketingRouter(t, &stubTransport{})
	defer cleanup()

	// No config yet
	w := doJSON(router, http.MethodGet, "/api/marketing/test-config", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPost, "/api/marketing/email-config", gin.H{
		"senderEmail":    "sender@example.com",
		"senderPassword": "pw",
		"senderName":     "Sender",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/marketing/test-config", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["verified"])
}

func TestSetDefaultEmailConfig(t *testing.T) {
	router, cleanup := setupMarketingRouter(t, &stubTransport{})
	defer cleanup()

	for _, email := range []string{"one@example.com", "two@example.com"} {
		w := doJSON(router, http.MethodPost, "/api/marketing/email-config", gin.H{
			"senderEmail":    email,
			"senderPassword": "pw",
			"senderName":     "Sender",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/marketing/email-config", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Configs []models.EmailConfig `json:"configs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Configs, 2)

	var second uint
	for _, cfg := range listResp.Configs {
		if !cfg.IsDefault {
			second = cfg.ID
		}
	}
	require.NotZero(t, second)

	w = doJSON(router, http.MethodPut, "/api/marketing/email-config/9999/default", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPut, "/api/marketing/email-config/"+strconv.FormatUint(uint64(second), 10)+"/default", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	cfg := resp["config"].(map[string]interface{})
	assert.Equal(t, true, cfg["is_default"])
}

func TestTemplateEndpoints(t *testing.T) {
	router, cleanup := setupMarketingRouter(t, &stubTransport{})
	defer cleanup()

	w := doJSON(router, http.MethodPost, "/api/marketing/templates", gin.H{
		"name":    "Welcome",
		"subject": "Hello $userName",
		"content": "Glad to have you.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate name
	w = doJSON(router, http.MethodPost, "/api/marketing/templates", gin.H{
		"name":    "Welcome",
		"subject": "Again",
		"content": "Body",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/marketing/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Templates []models.EmailTemplate `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Templates, 1)
}
