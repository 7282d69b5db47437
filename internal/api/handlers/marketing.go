package handlers

import (
	"errors"
	"net/http"

	"github.com/Marco-XM/arixyDashboardBack/internal/api/middleware"
	"github.com/Marco-XM/arixyDashboardBack/internal/services"
	"github.com/gin-gonic/gin"
)

// MarketingHandler handles email configuration, template, and bulk
// send requests.
type MarketingHandler struct {
	configService   *services.EmailConfigService
	templateService *services.TemplateService
	mailerService   *services.MailerService
}

// NewMarketingHandler creates a new MarketingHandler instance
func NewMarketingHandler(configService *services.EmailConfigService, templateService *services.TemplateService, mailerService *services.MailerService) *MarketingHandler {
	return &MarketingHandler{
		configService:   configService,
		templateService: templateService,
		mailerService:   mailerService,
	}
}

// SendEmailRequest represents the bulk send request body
type SendEmailRequest struct {
	Emails   []string `json:"emails"`
	Subject  string   `json:"subject"`
	Message  string   `json:"message"`
	IsHTML   bool     `json:"isHtml"`
	ConfigID *uint    `json:"configId"`
}

// SendEmail dispatches a campaign to a list of recipients
// POST /api/marketing/send-email
func (h *MarketingHandler) SendEmail(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	count, err := h.mailerService.SendCampaign(userID, services.SendCampaignInput{
		Emails:   req.Emails,
		Subject:  req.Subject,
		Message:  req.Message,
		IsHTML:   req.IsHTML,
		ConfigID: req.ConfigID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoRecipients), errors.Is(err, services.ErrMissingContent):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNoEmailConfig):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrConfigNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrTransportVerification):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to send emails",
				"details": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to send emails",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Emails sent successfully",
		"count":   count,
	})
}

// TemplateRequest represents the template create/update request body
type TemplateRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Content string `json:"content"`
	IsHTML  bool   `json:"isHtml"`
}

// GetTemplates returns the caller's templates, newest first
// GET /api/marketing/templates
func (h *MarketingHandler) GetTemplates(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	templates, err := h.templateService.GetTemplatesByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// CreateTemplate stores a new template for the caller
// POST /api/marketing/templates
func (h *MarketingHandler) CreateTemplate(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	template, err := h.templateService.CreateTemplate(services.CreateTemplateInput{
		CreatedBy: userID,
		Name:      req.Name,
		Subject:   req.Subject,
		Content:   req.Content,
		IsHTML:    req.IsHTML,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTemplateData):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrTemplateNameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Template created successfully",
		"template": template,
	})
}

// UpdateTemplateRequest represents a partial template update body
type UpdateTemplateRequest struct {
	Name    *string `json:"name"`
	Subject *string `json:"subject"`
	Content *string `json:"content"`
	IsHTML  *bool   `json:"isHtml"`
}

// UpdateTemplate applies a partial update to a caller-owned template
// PUT /api/marketing/templates/:id
func (h *MarketingHandler) UpdateTemplate(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	template, err := h.templateService.UpdateTemplate(id, userID, services.UpdateTemplatePatch{
		Name:    req.Name,
		Subject: req.Subject,
		Content: req.Content,
		IsHTML:  req.IsHTML,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTemplateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrTemplateNameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Template updated successfully",
		"template": template,
	})
}

// DeleteTemplate removes a caller-owned template
// DELETE /api/marketing/templates/:id
func (h *MarketingHandler) DeleteTemplate(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.templateService.DeleteTemplate(id, userID); err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}

// EmailConfigRequest represents the create-or-update request body. A
// present ConfigID turns the call into an update of that entry.
type EmailConfigRequest struct {
	ConfigID       *uint   `json:"configId"`
	SenderEmail    *string `json:"senderEmail"`
	SenderPassword *string `json:"senderPassword"`
	SenderName     *string `json:"senderName"`
	EmailService   *string `json:"emailService"`
	CustomHost     *string `json:"customHost"`
	CustomPort     *int    `json:"customPort"`
	IsDefault      *bool   `json:"isDefault"`
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// GetEmailConfigs returns the caller's sender configurations. Secret
// fields never serialize.
// GET /api/marketing/email-config
func (h *MarketingHandler) GetEmailConfigs(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	configs, err := h.configService.GetConfigsByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch email configurations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"configs": configs})
}

// SaveEmailConfig creates a configuration, or updates one when the body
// carries configId. A new or changed configuration gets an immediate
// preflight verification whose failure does not fail the request.
// POST /api/marketing/email-config
func (h *MarketingHandler) SaveEmailConfig(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req EmailConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if req.ConfigID != nil {
		h.updateConfig(c, userID, *req.ConfigID, req)
		return
	}

	customPort := 0
	if req.CustomPort != nil {
		customPort = *req.CustomPort
	}
	isDefault := false
	if req.IsDefault != nil {
		isDefault = *req.IsDefault
	}

	cfg, err := h.configService.CreateConfig(services.CreateConfigInput{
		UserID:         userID,
		SenderEmail:    strOrEmpty(req.SenderEmail),
		SenderPassword: strOrEmpty(req.SenderPassword),
		SenderName:     strOrEmpty(req.SenderName),
		EmailService:   strOrEmpty(req.EmailService),
		CustomHost:     strOrEmpty(req.CustomHost),
		CustomPort:     customPort,
		IsDefault:      isDefault,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidConfigData), errors.Is(err, services.ErrCustomHostRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrConfigAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save email configuration"})
		}
		return
	}

	// Best-effort preflight; a failed check still returns 200 with the
	// saved, unverified configuration.
	if verifyErr := h.configService.VerifyConfig(cfg); verifyErr != nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "Email configuration saved but verification failed",
			"error":   verifyErr.Error(),
			"config":  cfg,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email configuration saved and verified successfully",
		"config":  cfg,
	})
}

// UpdateEmailConfig applies a partial update to a configuration
// PUT /api/marketing/email-config/:id
func (h *MarketingHandler) UpdateEmailConfig(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req EmailConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	h.updateConfig(c, userID, id, req)
}

func (h *MarketingHandler) updateConfig(c *gin.Context, userID, id uint, req EmailConfigRequest) {
	patch := services.UpdateConfigPatch{
		SenderEmail:    req.SenderEmail,
		SenderPassword: req.SenderPassword,
		SenderName:     req.SenderName,
		EmailService:   req.EmailService,
		CustomHost:     req.CustomHost,
		CustomPort:     req.CustomPort,
		IsDefault:      req.IsDefault,
	}

	cfg, err := h.configService.UpdateConfig(id, userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConfigNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrCustomHostRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update email configuration"})
		}
		return
	}

	// Re-verify only when the transport-relevant fields moved
	if patch.ConnectionFieldsChanged() {
		if verifyErr := h.configService.VerifyConfig(cfg); verifyErr != nil {
			c.JSON(http.StatusOK, gin.H{
				"message": "Email configuration updated but verification failed",
				"error":   verifyErr.Error(),
				"config":  cfg,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email configuration updated successfully",
		"config":  cfg,
	})
}

// DeleteEmailConfig removes a configuration by id
// DELETE /api/marketing/email-config/:id
func (h *MarketingHandler) DeleteEmailConfig(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.configService.DeleteConfig(id, userID); err != nil {
		if errors.Is(err, services.ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete email configuration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email configuration deleted successfully"})
}

// DeleteFirstEmailConfig removes the caller's first configuration
// DELETE /api/marketing/email-config
func (h *MarketingHandler) DeleteFirstEmailConfig(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.configService.DeleteFirstConfig(userID); err != nil {
		if errors.Is(err, services.ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete email configuration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email configuration deleted successfully"})
}

// SetDefaultEmailConfig promotes a configuration to the caller's default
// PUT /api/marketing/email-config/:id/default
func (h *MarketingHandler) SetDefaultEmailConfig(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cfg, err := h.configService.SetDefaultConfig(id, userID)
	if err != nil {
		if errors.Is(err, services.ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default email configuration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Default email configuration updated successfully",
		"config":  cfg,
	})
}

// TestEmailConfig re-runs preflight verification for a configuration.
// Without an id the caller's default configuration is tested. The
// outcome is persisted; a failed check still returns 200 with an error
// field.
// GET /api/marketing/test-config, /api/marketing/test-config/:id
func (h *MarketingHandler) TestEmailConfig(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var configID *uint
	if raw := c.Param("id"); raw != "" {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		configID = &id
	}

	cfg, err := h.configService.ResolveConfig(userID, configID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConfigNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNoEmailConfig):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch email configuration"})
		}
		return
	}

	if verifyErr := h.configService.VerifyConfig(cfg); verifyErr != nil {
		c.JSON(http.StatusOK, gin.H{
			"message":  "Email configuration verification failed",
			"error":    verifyErr.Error(),
			"verified": false,
			"config":   cfg,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Email configuration verified successfully",
		"verified": true,
		"config":   cfg,
	})
}
