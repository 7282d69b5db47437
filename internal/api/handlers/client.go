package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Marco-XM/arixyDashboardBack/internal/services"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles client logo wall requests
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new ClientHandler instance
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClient stores a new client from a multipart form
// POST /api/clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	displayOrder, _ := strconv.Atoi(c.PostForm("display_order"))

	input := services.CreateClientInput{
		Name:         c.PostForm("name"),
		Website:      c.PostForm("website"),
		Description:  c.PostForm("description"),
		DisplayOrder: displayOrder,
	}

	if file, contentType, ok := openFormFile(c, "logo"); ok {
		defer file.Close()
		input.Logo = file
		input.ContentType = contentType
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidClientData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Client created successfully",
		"client":  client,
	})
}

// ListClients returns clients with filtering and pagination
// GET /api/clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	clients, total, err := h.clientService.ListClients(services.ClientListOptions{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clients": clients,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// GetActiveClients returns active clients for the public site
// GET /api/clients/active
func (h *ClientHandler) GetActiveClients(c *gin.Context) {
	clients, err := h.clientService.GetActiveClients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// GetClient returns a single client
// GET /api/clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.GetClientByID(id)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": client})
}

func formIntPtr(c *gin.Context, field string) *int {
	if value, ok := c.GetPostForm(field); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return &n
		}
	}
	return nil
}

// UpdateClient applies a partial update from a multipart form
// PUT /api/clients/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	patch := services.UpdateClientPatch{
		Name:         formStringPtr(c, "name"),
		Status:       formStringPtr(c, "status"),
		DisplayOrder: formIntPtr(c, "display_order"),
		Website:      formStringPtr(c, "website"),
		Description:  formStringPtr(c, "description"),
	}

	if file, contentType, hasFile := openFormFile(c, "logo"); hasFile {
		defer file.Close()
		patch.Logo = file
		patch.ContentType = contentType
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidClientData):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Client updated successfully",
		"client":  client,
	})
}

// ToggleClientStatus flips a client between active and inactive
// PUT /api/clients/:id/toggle
func (h *ClientHandler) ToggleClientStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.ToggleClientStatus(id)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Client status updated successfully",
		"client":  client,
	})
}

// DeleteClient removes a client and its logo
// DELETE /api/clients/:id
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

// GetClientStats returns counts by status
// GET /api/clients/stats
func (h *ClientHandler) GetClientStats(c *gin.Context) {
	stats, err := h.clientService.GetClientStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch client stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
