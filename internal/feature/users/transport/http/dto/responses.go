package dto

import (
	"time"

	"account_backend/internal/feature/users/domain/entity"
)

// UserResponse is the sanitized view of a user returned by the API.
// The password hash is deliberately absent: no response ever carries it.
type UserResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Designation string    `json:"designation"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUserResponse builds a UserResponse from the domain entity.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Designation: u.Designation,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// RegisterResponse is the body returned by a successful registration.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ResetTokenResponse is the body returned by a successful forgot-password request.
type ResetTokenResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken"`
}

// MessageResponse is the body returned by operations with no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body returned on any failure. Error is a generic,
// human-readable string; RequestID correlates the response with the
// server-side log entry that holds the diagnostic detail.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
