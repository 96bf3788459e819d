package service

import (
	"context"
	"io"
)

// BlobStore abstracts the media bucket holding university logos and gallery
// assets.
type BlobStore interface {
	// Upload writes the object under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes the object under key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}
