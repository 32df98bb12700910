package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the attributes required to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     int
}

// Service implements account registration and credential checks.
type Service struct {
	repo       Repository
	bcryptCost int
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository, bcryptCost int) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, bcryptCost: bcryptCost}
}

// Register hashes the password and persists a new account.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, &User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Role:     input.Role,
	})
}

// Authenticate resolves the account for the given email and verifies the password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	usr, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}
	return usr, nil
}

// GetByID resolves a user by primary key.
func (s *Service) GetByID(ctx context.Context, id uint) (*User, error) {
	usr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrNotFound
	}
	return usr, nil
}

// List returns every registered account.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// RequireAdmin verifies the given user holds the admin role.
func (s *Service) RequireAdmin(ctx context.Context, id uint) (*User, error) {
	usr, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !usr.IsAdmin() {
		return nil, ErrUnauthorized
	}
	return usr, nil
}
