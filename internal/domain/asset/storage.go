// Package asset defines the storage contract for the public asset directory.
package asset

import (
	"context"
	"io"
	"time"
)

// Storage abstracts where uploaded and generated images are persisted.
// Keys are flat relative names such as "generated_<hex>.png".
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
	// PublicURL returns the externally reachable URL for a stored key.
	// Local storage builds it from the request's own base URL; S3 presigns.
	PublicURL(ctx context.Context, baseURL, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// PresignTTL is the validity window storage backends should use when the
// public URL has to be signed.
const PresignTTL = 720 * time.Hour
