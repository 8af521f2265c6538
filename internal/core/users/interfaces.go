package users

import (
	"context"
)

// Repository defines the interface for user data persistence
type Repository interface {
	// Create inserts a new user. Returns ErrEmailTaken when the email's
	// unique constraint is violated.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound when
	// no account matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// Service defines the business logic interface for accounts and
// authentication.
type Service interface {
	// Register creates an account and issues a bearer token for it.
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
}
