package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/Marco-XM/arixyDashboardBack/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrCardNotFound indicates the product card was not found
	ErrCardNotFound = errors.New("card not found")
	// ErrCardDetailNotFound indicates the card detail was not found
	ErrCardDetailNotFound = errors.New("card detail not found")
	// ErrInvalidCardData indicates missing or malformed fields
	ErrInvalidCardData = errors.New("invalid card data")
)

// CardService manages product cards and their detail entries
type CardService struct {
	db    *gorm.DB
	blobs storage.BlobStore
}

// NewCardService creates a new CardService instance
func NewCardService(db *gorm.DB, blobs storage.BlobStore) *CardService {
	return &CardService{db: db, blobs: blobs}
}

// CreateCardInput contains the fields accepted when creating a card
type CreateCardInput struct {
	Code        string
	Title       string
	Description string
	ContentType string
	Image       io.Reader
}

// generateCardCode produces a short ARX reference code for cards created
// without an explicit one.
func generateCardCode() string {
	return fmt.Sprintf("ARX-%04d", rand.Intn(10000))
}

// CreateCard stores the card image and persists the card
func (s *CardService) CreateCard(ctx context.Context, input CreateCardInput) (*models.Card, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidCardData)
	}

	code := strings.TrimSpace(input.Code)
	if code == "" {
		code = generateCardCode()
	}

	card := &models.Card{
		Code:        code,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
	}

	if input.Image != nil {
		key := fmt.Sprintf("cards/%s", uuid.NewString())
		url, err := s.blobs.Upload(ctx, key, input.ContentType, input.Image)
		if err != nil {
			return nil, err
		}
		card.Image = url
		card.ObjectKey = key
	}

	if err := s.db.Create(card).Error; err != nil {
		if card.ObjectKey != "" {
			_ = s.blobs.Delete(ctx, card.ObjectKey)
		}
		return nil, err
	}

	return card, nil
}

// GetCards retrieves all cards with their detail entries preloaded
func (s *CardService) GetCards() ([]models.Card, error) {
	var cards []models.Card
	if err := s.db.Preload("CardDetails").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// GetCardByID retrieves a single card with its details
func (s *CardService) GetCardByID(id uint) (*models.Card, error) {
	var card models.Card
	if err := s.db.Preload("CardDetails").First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// UpdateCardPatch contains optional fields for a partial card update
type UpdateCardPatch struct {
	Code        *string
	Title       *string
	Description *string
	ContentType string
	Image       io.Reader
}

// UpdateCard applies a partial update to a card. A new image replaces
// the stored one.
func (s *CardService) UpdateCard(ctx context.Context, id uint, patch UpdateCardPatch) (*models.Card, error) {
	var card models.Card
	if err := s.db.First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	if patch.Code != nil {
		card.Code = strings.TrimSpace(*patch.Code)
	}
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title is required", ErrInvalidCardData)
		}
		card.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		card.Description = *patch.Description
	}

	oldKey := ""
	if patch.Image != nil {
		key := fmt.Sprintf("cards/%s", uuid.NewString())
		url, err := s.blobs.Upload(ctx, key, patch.ContentType, patch.Image)
		if err != nil {
			return nil, err
		}
		oldKey = card.ObjectKey
		card.Image = url
		card.ObjectKey = key
	}

	if err := s.db.Save(&card).Error; err != nil {
		return nil, err
	}

	if oldKey != "" {
		_ = s.blobs.Delete(ctx, oldKey)
	}

	return &card, nil
}

// DeleteCard removes a card, its detail entries and their images
func (s *CardService) DeleteCard(ctx context.Context, id uint) error {
	var card models.Card
	if err := s.db.Preload("CardDetails").First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCardNotFound
		}
		return err
	}

	for _, detail := range card.CardDetails {
		if detail.ObjectKey != "" {
			if err := s.blobs.Delete(ctx, detail.ObjectKey); err != nil {
				return err
			}
		}
	}
	if card.ObjectKey != "" {
		if err := s.blobs.Delete(ctx, card.ObjectKey); err != nil {
			return err
		}
	}

	if err := s.db.Where("card_id = ?", card.ID).Delete(&models.CardDetail{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&card).Error
}

// AddCardDetail attaches an image/description pair to a card
func (s *CardService) AddCardDetail(ctx context.Context, cardID uint, description, contentType string, image io.Reader) (*models.CardDetail, error) {
	var card models.Card
	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	if image == nil {
		return nil, fmt.Errorf("%w: image is required", ErrInvalidCardData)
	}

	key := fmt.Sprintf("cards/%d/%s", cardID, uuid.NewString())
	url, err := s.blobs.Upload(ctx, key, contentType, image)
	if err != nil {
		return nil, err
	}

	detail := &models.CardDetail{
		CardID:      cardID,
		Image:       url,
		ObjectKey:   key,
		Description: description,
	}
	if err := s.db.Create(detail).Error; err != nil {
		_ = s.blobs.Delete(ctx, key)
		return nil, err
	}

	return detail, nil
}

// UpdateCardDetailPatch contains optional fields for a partial detail update
type UpdateCardDetailPatch struct {
	Description *string
	ContentType string
	Image       io.Reader
}

// UpdateCardDetail applies a partial update to a detail entry. A new image
// replaces the stored one.
func (s *CardService) UpdateCardDetail(ctx context.Context, cardID, detailID uint, patch UpdateCardDetailPatch) (*models.CardDetail, error) {
	var detail models.CardDetail
	if err := s.db.Where("card_id = ?", cardID).First(&detail, detailID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardDetailNotFound
		}
		return nil, err
	}

	if patch.Description != nil {
		detail.Description = *patch.Description
	}

	oldKey := ""
	if patch.Image != nil {
		key := fmt.Sprintf("cards/%d/%s", cardID, uuid.NewString())
		url, err := s.blobs.Upload(ctx, key, patch.ContentType, patch.Image)
		if err != nil {
			return nil, err
		}
		oldKey = detail.ObjectKey
		detail.Image = url
		detail.ObjectKey = key
	}

	if err := s.db.Save(&detail).Error; err != nil {
		return nil, err
	}

	if oldKey != "" {
		_ = s.blobs.Delete(ctx, oldKey)
	}

	return &detail, nil
}

// DeleteCardDetail removes a single detail entry and its image
func (s *CardService) DeleteCardDetail(ctx context.Context, cardID, detailID uint) error {
	var detail models.CardDetail
	if err := s.db.Where("card_id = ?", cardID).First(&detail, detailID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCardDetailNotFound
		}
		return err
	}

	if detail.ObjectKey != "" {
		if err := s.blobs.Delete(ctx, detail.ObjectKey); err != nil {
			return err
		}
	}

	return s.db.Delete(&detail).Error
}

// CountCards returns the number of product cards
func (s *CardService) CountCards() (int64, error) {
	var count int64
	err := s.db.Model(&models.Card{}).Count(&count).Error
	return count, err
}
