package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/Marco-XM/arixyDashboardBack/internal/services"
	"github.com/gin-gonic/gin"
)

// CardHandler handles product card requests
type CardHandler struct {
	cardService *services.CardService
}

// NewCardHandler creates a new CardHandler instance
func NewCardHandler(cardService *services.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

func openFormFile(c *gin.Context, field string) (multipart.File, string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, "", false
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", false
	}
	return file, fileHeader.Header.Get("Content-Type"), true
}

// CreateCard stores a new product card from a multipart form
// POST /api/cards
func (h *CardHandler) CreateCard(c *gin.Context) {
	input := services.CreateCardInput{
		Code:        c.PostForm("code"),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}

	if file, contentType, ok := openFormFile(c, "image"); ok {
		defer file.Close()
		input.Image = file
		input.ContentType = contentType
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCardData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Card created successfully",
		"card":    card,
	})
}

// GetCards returns all product cards with their details
// GET /api/cards
func (h *CardHandler) GetCards(c *gin.Context) {
	cards, err := h.cardService.GetCards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

// GetCard returns a single product card
// GET /api/cards/:id
func (h *CardHandler) GetCard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, err := h.cardService.GetCardByID(id)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": card})
}

func formStringPtr(c *gin.Context, field string) *string {
	if value, ok := c.GetPostForm(field); ok {
		return &value
	}
	return nil
}

// UpdateCard applies a partial update from a multipart form
// PUT /api/cards/:id
func (h *CardHandler) UpdateCard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	patch := services.UpdateCardPatch{
		Code:        formStringPtr(c, "code"),
		Title:       formStringPtr(c, "title"),
		Description: formStringPtr(c, "description"),
	}

	if file, contentType, hasFile := openFormFile(c, "image"); hasFile {
		defer file.Close()
		patch.Image = file
		patch.ContentType = contentType
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidCardData):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Card updated successfully",
		"card":    card,
	})
}

// DeleteCard removes a card, its details, and their images
// DELETE /api/cards/:id
func (h *CardHandler) DeleteCard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}

// AddCardDetail attaches an image/description pair to a card
// POST /api/cards/:id/details
func (h *CardHandler) AddCardDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, contentType, hasFile := openFormFile(c, "image")
	if !hasFile {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	defer file.Close()

	detail, err := h.cardService.AddCardDetail(c.Request.Context(), id, c.PostForm("description"), contentType, file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidCardData):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add card detail"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Card detail added successfully",
		"detail":  detail,
	})
}

// UpdateCardDetail applies a partial update to a detail entry
// PUT /api/cards/:id/details/:detailId
func (h *CardHandler) UpdateCardDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detailID, err := strconv.ParseUint(c.Param("detailId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	patch := services.UpdateCardDetailPatch{
		Description: formStringPtr(c, "description"),
	}

	if file, contentType, hasFile := openFormFile(c, "image"); hasFile {
		defer file.Close()
		patch.Image = file
		patch.ContentType = contentType
	}

	detail, err := h.cardService.UpdateCardDetail(c.Request.Context(), id, uint(detailID), patch)
	if err != nil {
		if errors.Is(err, services.ErrCardDetailNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card detail"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Card detail updated successfully",
		"detail":  detail,
	})
}

// DeleteCardDetail removes a single detail entry and its image
// DELETE /api/cards/:id/details/:detailId
func (h *CardHandler) DeleteCardDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detailID, err := strconv.ParseUint(c.Param("detailId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := h.cardService.DeleteCardDetail(c.Request.Context(), id, uint(detailID)); err != nil {
		if errors.Is(err, services.ErrCardDetailNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card detail"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card detail deleted successfully"})
}

// CountCards returns the number of product cards
// GET /api/cards/count
func (h *CardHandler) CountCards(c *gin.Context) {
	count, err := h.cardService.CountCards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
