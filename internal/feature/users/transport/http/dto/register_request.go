// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /api/register endpoint.
// All four fields are required; the email must have a valid address shape.
// Validation uses Gin's binding tags: presence is checked before shape.
type RegisterReq struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Designation string `json:"designation" binding:"required"`
}
