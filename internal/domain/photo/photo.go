// Package photo provides the gallery photo domain model.
package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"renova-server/internal/domain/asset"
)

// Photo models a gallery entry backed by a stored image.
type Photo struct {
	ID          uint
	URL         string
	Title       string
	Description string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repository defines storage operations for photos.
type Repository interface {
	Create(ctx context.Context, p *Photo) (*Photo, error)
	List(ctx context.Context) ([]*Photo, error)
	FindByID(ctx context.Context, id uint) (*Photo, error)
	Update(ctx context.Context, p *Photo) (*Photo, error)
	Delete(ctx context.Context, id uint) error
}

// ErrNotFound indicates the requested photo does not exist.
var ErrNotFound = errors.New("photo not found")

// Service implements gallery management.
type Service struct {
	repo    Repository
	storage asset.Storage
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository, storage asset.Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// UploadInput carries a new gallery photo and its metadata.
type UploadInput struct {
	BaseURL     string
	Title       string
	Description string
	Category    string
	Data        []byte
	ContentType string
}

// Upload persists the image bytes under the title-derived key and records
// the gallery entry.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*Photo, error) {
	key := fmt.Sprintf("%s.png", input.Title)
	contentType := input.ContentType
	if contentType == "" {
		contentType = "image/png"
	}

	if err := s.storage.Upload(ctx, key, bytes.NewReader(input.Data), int64(len(input.Data)), contentType); err != nil {
		return nil, fmt.Errorf("store photo: %w", err)
	}

	url, err := s.storage.PublicURL(ctx, input.BaseURL, key)
	if err != nil {
		return nil, fmt.Errorf("resolve photo url: %w", err)
	}

	return s.repo.Create(ctx, &Photo{
		URL:         url,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
	})
}

// List returns every gallery photo.
func (s *Service) List(ctx context.Context) ([]*Photo, error) {
	return s.repo.List(ctx)
}

// GetByID resolves a photo by primary key.
func (s *Service) GetByID(ctx context.Context, id uint) (*Photo, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// UpdateInput carries replacement metadata for an existing photo.
type UpdateInput struct {
	URL         string
	Title       string
	Description string
	Category    string
}

// Update replaces a photo's metadata.
func (s *Service) Update(ctx context.Context, id uint, input UpdateInput) (*Photo, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.URL = input.URL
	p.Title = input.Title
	p.Description = input.Description
	p.Category = input.Category
	return s.repo.Update(ctx, p)
}

// Delete removes a photo record. The stored image is left in place; gallery
// URLs may still be referenced by published content.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
