package handlers

import (
	"errors"
	"net/http"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/Marco-XM/arixyDashboardBack/internal/services"
	"github.com/gin-gonic/gin"
)

// BlockedDateHandler handles calendar availability requests
type BlockedDateHandler struct {
	blockedDateService *services.BlockedDateService
}

// NewBlockedDateHandler creates a new BlockedDateHandler instance
func NewBlockedDateHandler(blockedDateService *services.BlockedDateService) *BlockedDateHandler {
	return &BlockedDateHandler{blockedDateService: blockedDateService}
}

// GetBlockedDates returns all blocked dates
// GET /api/blocked-dates
func (h *BlockedDateHandler) GetBlockedDates(c *gin.Context) {
	dates, err := h.blockedDateService.GetBlockedDates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blocked dates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocked_dates": dates})
}

// AddBlockedDate marks a date as unavailable
// POST /api/blocked-dates
func (h *BlockedDateHandler) AddBlockedDate(c *gin.Context) {
	var date models.BlockedDate
	if err := c.ShouldBindJSON(&date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.blockedDateService.AddBlockedDate(&date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add blocked date"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Date blocked successfully",
		"blocked_date": date,
	})
}

// CountBlockedDates returns the number of blocked dates
// GET /api/blocked-dates/count
func (h *BlockedDateHandler) CountBlockedDates(c *gin.Context) {
	count, err := h.blockedDateService.CountBlockedDates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count blocked dates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// RemoveBlockedDate makes a date available again
// DELETE /api/blocked-dates/:id
func (h *BlockedDateHandler) RemoveBlockedDate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	date, err := h.blockedDateService.RemoveBlockedDate(id)
	if err != nil {
		if errors.Is(err, services.ErrBlockedDateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove blocked date"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Date unblocked successfully",
		"blocked_date": date,
	})
}
