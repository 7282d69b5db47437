package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotConfigured indicates blob storage credentials are missing
	ErrNotConfigured = errors.New("blob storage is not configured")
	// ErrObjectNotFound indicates the requested object does not exist
	ErrObjectNotFound = errors.New("object not found")
)

// BlobStore abstracts the image hosting provider. Implementations must be
// safe for concurrent use.
type BlobStore interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete physically removes the object. Deleting a missing object is
	// not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for an already stored object.
	URL(key string) string
}

// disabledStore rejects every operation. Used when no storage
// credentials are present so the rest of the API still serves.
type disabledStore struct{}

// Disabled returns a BlobStore that fails every call with
// ErrNotConfigured.
func Disabled() BlobStore {
	return disabledStore{}
}

func (disabledStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	return "", ErrNotConfigured
}

func (disabledStore) Delete(ctx context.Context, key string) error {
	return ErrNotConfigured
}

func (disabledStore) URL(key string) string {
	return ""
}
