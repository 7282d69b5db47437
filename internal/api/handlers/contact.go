package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Marco-XM/arixyDashboardBack/internal/services"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles sales inquiry requests
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler instance
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents the public inquiry form body
type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	CompanyName string `json:"company_name"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

// CreateContact stores an inquiry submitted from the public website
// POST /api/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	contact, err := h.contactService.CreateContact(services.CreateContactInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		CompanyName: req.CompanyName,
		Subject:     req.Subject,
		Message:     req.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidContactData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inquiry submitted successfully",
		"contact": contact,
	})
}

// ListContacts returns inquiries with filtering and pagination
// GET /api/contacts
func (h *ContactHandler) ListContacts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	contacts, total, err := h.contactService.ListContacts(services.ContactListOptions{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": contacts,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// GetContact returns a single inquiry
// GET /api/contacts/:id
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	contact, err := h.contactService.GetContactByID(id)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

// UpdateContactRequest represents a partial follow-up update body
type UpdateContactRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	Notes    *string `json:"notes"`
}

// UpdateContact applies a partial update to an inquiry
// PUT /api/contacts/:id
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	contact, err := h.contactService.UpdateContact(id, services.UpdateContactPatch{
		Status:   req.Status,
		Priority: req.Priority,
		Notes:    req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContactNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidContactData):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact updated successfully",
		"contact": contact,
	})
}

// DeleteContact removes an inquiry
// DELETE /api/contacts/:id
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contactService.DeleteContact(id); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}

// GetContactStats returns counts by status
// GET /api/contacts/stats
func (h *ContactHandler) GetContactStats(c *gin.Context) {
	stats, err := h.contactService.GetContactStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
