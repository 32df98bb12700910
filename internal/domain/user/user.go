// Package user provides the user domain model and account behaviors.
package user

import (
	"context"
	"errors"
	"time"
)

// RoleAdmin marks accounts allowed to manage gallery content and list users.
const RoleAdmin = 1

// User models a registered account.
type User struct {
	ID        uint
	Username  string
	Email     string
	Password  string // bcrypt hash
	Role      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Repository defines storage operations for users.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// ErrNotFound indicates the requested user does not exist.
var ErrNotFound = errors.New("user not found")

// ErrWrongPassword indicates the supplied credentials do not match.
var ErrWrongPassword = errors.New("incorrect password")

// ErrUnauthorized indicates the account lacks the required role.
var ErrUnauthorized = errors.New("unauthorized access")
