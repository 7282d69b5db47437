package handlers

import (
	"errors"
	"net/http"

	"github.com/Marco-XM/arixyDashboardBack/internal/services"
	"github.com/Marco-XM/arixyDashboardBack/internal/storage"
	"github.com/gin-gonic/gin"
)

// EventHandler handles gallery image requests
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new EventHandler instance
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// UploadEvent stores an uploaded image in the gallery
// POST /api/events
func (h *EventHandler) UploadEvent(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
		return
	}
	defer file.Close()

	event, err := h.eventService.UploadEvent(c.Request.Context(), fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage is not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Image uploaded successfully",
		"event":   event,
	})
}

// GetEvents returns all gallery entries
// GET /api/events
func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.GetEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// DeleteEvent removes a gallery entry and its image
// DELETE /api/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// CountEvents returns the number of gallery entries
// GET /api/events/count
func (h *EventHandler) CountEvents(c *gin.Context) {
	count, err := h.eventService.CountEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
