// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"account_backend/internal/feature/users/domain/entity"
	"account_backend/internal/feature/users/transport/http/dto"
	"account_backend/internal/feature/users/usecase"
	"account_backend/internal/platform/token"
)

// UserUsecase defines the account operations consumed by the HTTP layer.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type UserUsecase interface {
	Register(ctx context.Context, name, email, password, designation string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ChangePassword(ctx context.Context, tokenString, newPassword string) error
	UpdateDesignation(ctx context.Context, id uint, designation string) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
}

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// fail logs the underlying error server-side and responds with a generic
// message plus a correlation id. The diagnostic detail never reaches the
// client body.
func fail(c *gin.Context, status int, message string, err error) {
	requestID := uuid.NewString()
	slog.Warn("request failed",
		"status", status,
		"message", message,
		"error", err,
		"request_id", requestID,
		"path", c.FullPath(),
		"remote_addr", c.ClientIP(),
	)
	c.JSON(status, dto.ErrorResponse{Error: message, RequestID: requestID})
}

// pathID parses the numeric :id path parameter. Non-numeric ids are
// rejected with 400 before any lookup.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid user id", err)
		return 0, false
	}
	return uint(id), true
}

// Register handles the user registration endpoint.
// - 400 on a missing field or malformed email
// - 409 when the email is already registered
// - 201 with the created user (password excluded) on success
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Designation)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			fail(c, http.StatusConflict, "email already registered", err)
			return
		}
		fail(c, http.StatusInternalServerError, "failed to register user", err)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		User:    dto.NewUserResponse(user),
	})
}

// Login handles the user login endpoint.
// Unknown email and wrong password both yield the same 401 body so the
// endpoint cannot be used to enumerate registered addresses.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	tok, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "invalid credentials", err)
			return
		}
		fail(c, http.StatusInternalServerError, "login failed", err)
		return
	}

	slog.Info("user login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Message: "Login successful", Token: tok})
}

// ForgotPassword handles the password reset token endpoint.
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	tok, err := h.users.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "user not found", err)
			return
		}
		fail(c, http.StatusInternalServerError, "failed to generate reset token", err)
		return
	}

	c.JSON(http.StatusOK, dto.ResetTokenResponse{
		Message:    "Password reset token generated",
		ResetToken: tok,
	})
}

// ChangePassword handles the password change endpoint. An expired token is
// classified separately from a malformed or forged one, but both are 401.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	err := h.users.ChangePassword(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrTokenExpired):
			fail(c, http.StatusUnauthorized, "token has expired", err)
		case errors.Is(err, token.ErrTokenInvalid):
			fail(c, http.StatusUnauthorized, "invalid token", err)
		case errors.Is(err, usecase.ErrUserNotFound):
			fail(c, http.StatusNotFound, "user not found", err)
		default:
			fail(c, http.StatusInternalServerError, "failed to change password", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password changed successfully"})
}

// UpdateDesignation handles the designation update endpoint.
func (h *UserHandler) UpdateDesignation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.DesignationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.users.UpdateDesignation(c.Request.Context(), id, req.Designation); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "user not found", err)
			return
		}
		fail(c, http.StatusInternalServerError, "failed to update designation", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Designation updated successfully"})
}

// GetUser handles the user retrieval endpoint. The response never includes
// the password field.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "user not found", err)
			return
		}
		fail(c, http.StatusInternalServerError, "failed to fetch user", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// DeleteUser handles the user deletion endpoint. Deleting an id that no
// longer exists reports 404, never a silent success.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "user not found", err)
			return
		}
		fail(c, http.StatusInternalServerError, "failed to delete user", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
