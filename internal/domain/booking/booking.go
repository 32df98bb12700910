// Package booking provides the renovation booking domain model.
package booking

import (
	"context"
	"errors"
	"time"
)

// Booking models a scheduled renovation service appointment.
type Booking struct {
	ID          uint
	UserID      uint
	Date        string
	ServiceType string
	Status      int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repository defines storage operations for bookings.
type Repository interface {
	Create(ctx context.Context, b *Booking) (*Booking, error)
	List(ctx context.Context) ([]*Booking, error)
	FindByID(ctx context.Context, id uint) (*Booking, error)
	FindByUserID(ctx context.Context, userID uint) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id uint, status int) error
	Delete(ctx context.Context, id uint) error
}

// ErrNotFound indicates the requested booking does not exist.
var ErrNotFound = errors.New("booking not found")

// Service implements booking management.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the attributes for a new booking.
type CreateInput struct {
	UserID      uint
	Date        string
	ServiceType string
	Status      int
}

// Create persists a new booking.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Booking, error) {
	return s.repo.Create(ctx, &Booking{
		UserID:      input.UserID,
		Date:        input.Date,
		ServiceType: input.ServiceType,
		Status:      input.Status,
	})
}

// List returns every booking.
func (s *Service) List(ctx context.Context) ([]*Booking, error) {
	return s.repo.List(ctx)
}

// GetByID resolves a booking by primary key.
func (s *Service) GetByID(ctx context.Context, id uint) (*Booking, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// ListByUserID returns all bookings placed by the given user.
func (s *Service) ListByUserID(ctx context.Context, userID uint) ([]*Booking, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// UpdateStatus changes a booking's status.
func (s *Service) UpdateStatus(ctx context.Context, id uint, status int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Delete removes a booking.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
