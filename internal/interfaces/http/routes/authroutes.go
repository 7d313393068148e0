package routes

import (
	"github.com/gin-gonic/gin"

	"upravdom/internal/interfaces/http/handlers"
	"upravdom/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", config.RateLimiter.Limit(), config.AuthHandler.Login)
		auth.POST("/register", config.RateLimiter.Limit(), config.AuthHandler.Register)
		auth.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.GetCurrentUser)
	}
}
