package router

import (
	userhandler "account_backend/internal/feature/users/transport/handler"
	"account_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the full route table.
func NewRouter(users *userhandler.UserHandler) *gin.Engine {
	r := gin.Default()

	// Liveness probes
	r.GET("/healthz", handler.Health)
	r.GET("/", handler.Root)

	api := r.Group("/api")
	{
		api.POST("/register", users.Register)
		api.POST("/login", users.Login)
		api.POST("/forgot-password", users.ForgotPassword)
		api.PATCH("/change-password", users.ChangePassword)
		api.PUT("/user/:id/designation", users.UpdateDesignation)
		api.GET("/user/:id", users.GetUser)
		api.DELETE("/users/:id", users.DeleteUser)
	}

	return r
}
