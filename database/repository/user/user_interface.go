package userRepo

import (
	"context"

	"furytails/models"
)

// UserRepository defines methods for account data access.
type UserRepository interface {
	// GetByID retrieves a user by its auth uid.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email; nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetByRole retrieves users with the given role, newest first.
	GetByRole(role string) ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its uid.
	Delete(id string) error
	// Count counts all user documents.
	Count() (int64, error)
	// Watch invokes onChange for every collection change until the
	// context is cancelled.
	Watch(ctx context.Context, onChange func()) error
}
