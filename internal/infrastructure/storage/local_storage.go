package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"renova-server/internal/config"
	"renova-server/internal/domain/asset"
)

// LocalStorage persists assets to the public asset directory on disk.
type LocalStorage struct {
	basePath string
	log      zerolog.Logger
}

var _ asset.Storage = (*LocalStorage)(nil)

// NewLocalStorage creates a local filesystem storage backend rooted at the
// configured asset directory.
func NewLocalStorage(cfg *config.Config, log zerolog.Logger) (*LocalStorage, error) {
	logger := log.With().Str("component", "local-storage").Logger()

	basePath := strings.TrimSpace(cfg.AssetDir)
	if basePath == "" {
		basePath = "assets"
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("create asset directory: %w", err)
	}

	logger.Info().Str("path", basePath).Msg("local storage initialized")

	return &LocalStorage{
		basePath: basePath,
		log:      logger,
	}, nil
}

// Upload stores a file under the asset directory.
func (l *LocalStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	written, err := io.Copy(file, body)
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	l.log.Debug().
		Str("key", key).
		Int64("bytes", written).
		Msg("file stored in asset directory")

	return nil
}

// Download reads a stored file back.
func (l *LocalStorage) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))
	file, err := os.Open(fullPath)
	if err != nil {
		return nil, "", fmt.Errorf("open file: %w", err)
	}
	return file, "", nil
}

// PublicURL builds the asset URL from the request's own base URL. The asset
// directory is served statically under /assets.
func (l *LocalStorage) PublicURL(ctx context.Context, baseURL, key string) (string, error) {
	return fmt.Sprintf("%s/assets/%s", strings.TrimSuffix(baseURL, "/"), filepath.ToSlash(key)), nil
}

// Delete removes a stored file.
func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// Path returns the absolute location of a key inside the asset directory.
func (l *LocalStorage) Path(key string) string {
	return filepath.Join(l.basePath, filepath.FromSlash(key))
}

// BasePath returns the asset directory root for static serving.
func (l *LocalStorage) BasePath() string {
	return l.basePath
}
