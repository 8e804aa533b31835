package usecase

import (
	"context"

	"account_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// unique email constraint is violated.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdatePassword replaces the stored password hash for the user.
	// It returns ErrUserNotFound when no row matched the id.
	UpdatePassword(ctx context.Context, id uint, hash string) error

	// UpdateDesignation replaces the designation for the user.
	// It returns ErrUserNotFound when no row matched the id.
	UpdateDesignation(ctx context.Context, id uint, designation string) error

	// Delete removes the user. It returns ErrUserNotFound when no row
	// matched the id, so deleting an already-deleted user is not a silent
	// success.
	Delete(ctx context.Context, id uint) error
}
