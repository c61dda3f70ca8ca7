package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID returns shared.ErrNotFound when no user has the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindAll returns every user ordered by name.
	FindAll(ctx context.Context) ([]User, error)

	// ExistsByEmail checks if an email already exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByEmailExcludingID checks if another user already holds email.
	ExistsByEmailExcludingID(ctx context.Context, email string, id uuid.UUID) (bool, error)

	// Create inserts a new user.
	Create(ctx context.Context, user *User) error

	// Update applies the supplied fields and returns the stored user.
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (*User, error)
}
