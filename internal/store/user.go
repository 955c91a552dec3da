package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/klowran/cats-api/internal/domain"
)

// UserStore defines the narrow credential-store interface needed by the
// identity service: create a credential record and look one up by
// username. Password hashing stays outside this interface.
type UserStore interface {
	// Create saves a new user to the store. The caller must have hashed
	// the password; plaintext passwords are never persisted.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
