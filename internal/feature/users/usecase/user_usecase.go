package usecase

import (
	"context"
	"errors"
	"fmt"

	"account_backend/internal/feature/users/domain/entity"
)

// Hasher abstracts one-way password hashing.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/password).
type Hasher interface {
	// Hash produces a salted one-way hash of the plaintext.
	Hash(plaintext string) (string, error)

	// Check reports whether the plaintext matches the stored hash.
	Check(plaintext, hash string) bool
}

// TokenManager abstracts signed token issuance and verification.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/token).
type TokenManager interface {
	// Issue creates a signed token embedding the user id and an expiry.
	Issue(userID uint) (string, error)

	// Verify validates a token and returns the user id it was issued for.
	Verify(tokenString string) (uint, error)
}

// userUsecase implements the account operations.
type userUsecase struct {
	users  UserRepository
	hasher Hasher
	tokens TokenManager
}

// NewUserUsecase creates a new userUsecase instance.
func NewUserUsecase(users UserRepository, hasher Hasher, tokens TokenManager) *userUsecase {
	return &userUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new user with a hashed password and returns the
// created record. The concurrent-registration race on the email pre-check
// is avoided entirely: the unique index on email is the sole source of
// truth, so Register issues exactly one write and maps the constraint
// violation to ErrEmailAlreadyExists.
func (u *userUsecase) Register(ctx context.Context, name, email, plainPassword, designation string) (*entity.User, error) {
	hashed, err := u.hasher.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:        name,
		Email:       email,
		Password:    hashed,
		Designation: designation,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// dummyHash is a bcrypt hash compared against when the email is unknown,
// so that Login's running time does not reveal whether a user exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates a user and returns a signed token on success.
// Unknown email and wrong password both yield ErrInvalidCredentials; the
// hash comparison always runs to mitigate timing attacks.
func (u *userUsecase) Login(ctx context.Context, email, plainPassword string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	match := u.hasher.Check(plainPassword, passwordHash)

	if err != nil || !match {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.Issue(user.ID)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to issue token: %w", tokenErr)
	}
	return token, nil
}

// ForgotPassword issues a reset token for the account registered under the
// given email. The reset token is the same signed-token mechanism used for
// login sessions.
func (u *userUsecase) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue reset token: %w", err)
	}
	return token, nil
}

// ChangePassword verifies the token and stores a new password hash for the
// verified subject. Token errors propagate as-is so the transport layer can
// distinguish an expired token from an invalid one.
func (u *userUsecase) ChangePassword(ctx context.Context, tokenString, newPassword string) error {
	userID, err := u.tokens.Verify(tokenString)
	if err != nil {
		return err
	}

	hashed, err := u.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	// The token stays cryptographically valid after the account is deleted
	// (tokens are not server-tracked), so an unmatched row surfaces here as
	// ErrUserNotFound rather than success.
	return u.users.UpdatePassword(ctx, userID, hashed)
}

// UpdateDesignation replaces the user's designation.
func (u *userUsecase) UpdateDesignation(ctx context.Context, id uint, designation string) error {
	return u.users.UpdateDesignation(ctx, id, designation)
}

// Delete removes the user record.
func (u *userUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}

// GetByID retrieves a user record. Callers are responsible for excluding
// the password hash from anything user-visible.
func (u *userUsecase) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
