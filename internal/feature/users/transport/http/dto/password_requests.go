package dto

// ForgotPasswordReq represents the request body for the /api/forgot-password endpoint.
type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

// ChangePasswordReq represents the request body for the /api/change-password
// endpoint. The token is the reset token issued by login or forgot-password.
type ChangePasswordReq struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}
