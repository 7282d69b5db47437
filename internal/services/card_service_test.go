package services

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryBlobStore keeps uploaded objects in a map instead of hitting a
// real bucket.
type memoryBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{objects: map[string][]byte{}}
}

func (m *memoryBlobStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return m.URL(key), nil
}

func (m *memoryBlobStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memoryBlobStore) URL(key string) string {
	return "https://cdn.test/" + key
}

func (m *memoryBlobStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

func TestCreateCard_GeneratesCodeWhenMissing(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewCardService(db, newMemoryBlobStore())

	card, err := service.CreateCard(context.Background(), CreateCardInput{Title: "Wedding Package"})
	require.NoError(t, err)
	assert.Regexp(t, `^ARX-\d{4}$`, card.Code)

	explicit, err := service.CreateCard(context.Background(), CreateCardInput{Code: "ARX-0042", Title: "Corporate Package"})
	require.NoError(t, err)
	assert.Equal(t, "ARX-0042", explicit.Code)
}

func TestUpdateCardDetail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	blobs := newMemoryBlobStore()
	service := NewCardService(db, blobs)

	card, err := service.CreateCard(context.Background(), CreateCardInput{Title: "Gallery Card"})
	require.NoError(t, err)

	detail, err := service.AddCardDetail(context.Background(), card.ID, "first", "image/png", bytes.NewReader([]byte("img1")))
	require.NoError(t, err)
	require.True(t, blobs.has(detail.ObjectKey))

	// Description-only update keeps the stored image
	newDescription := "second"
	updated, err := service.UpdateCardDetail(context.Background(), card.ID, detail.ID, UpdateCardDetailPatch{Description: &newDescription})
	require.NoError(t, err)
	assert.Equal(t, "second", updated.Description)
	assert.Equal(t, detail.Image, updated.Image)
	assert.True(t, blobs.has(detail.ObjectKey))

	// A new image replaces the old object
	replaced, err := service.UpdateCardDetail(context.Background(), card.ID, detail.ID, UpdateCardDetailPatch{
		ContentType: "image/png",
		Image:       bytes.NewReader([]byte("img2")),
	})
	require.NoError(t, err)
	assert.NotEqual(t, detail.ObjectKey, replaced.ObjectKey)
	assert.True(t, blobs.has(replaced.ObjectKey))
	assert.False(t, blobs.has(detail.ObjectKey))

	// The detail must belong to the given card
	_, err = service.UpdateCardDetail(context.Background(), card.ID+1, detail.ID, UpdateCardDetailPatch{Description: &newDescription})
	assert.ErrorIs(t, err, ErrCardDetailNotFound)
}
