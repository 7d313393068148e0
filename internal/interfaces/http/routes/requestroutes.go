package routes

import (
	"github.com/gin-gonic/gin"

	requesthandlers "upravdom/internal/interfaces/http/handlers/request"
	"upravdom/internal/interfaces/http/middleware"
)

type RequestRouteConfig struct {
	RequestHandler *requesthandlers.RequestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRequestRoutes(api *gin.RouterGroup, config *RequestRouteConfig) {
	requests := api.Group("/requests")
	requests.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		requests.POST("",
			config.RequestHandler.CreateRequest)
		requests.GET("",
			config.RequestHandler.ListRequests(""))

		// Status bucket views
		requests.GET("/active",
			config.RequestHandler.ListRequests("active"))
		requests.GET("/new",
			config.RequestHandler.ListRequests("new"))
		requests.GET("/pending",
			config.RequestHandler.ListRequests("pending"))
		requests.GET("/in-progress",
			config.RequestHandler.ListRequests("in_progress"))
		requests.GET("/closed",
			config.RequestHandler.ListRequests("closed"))

		// Specific action endpoints (must come BEFORE /:rootId to avoid conflicts)
		requests.PATCH("/:rootId/rework",
			config.RequestHandler.ReworkRequest)
		requests.POST("/:rootId/close",
			config.RequestHandler.CloseRequest)
		requests.POST("/:rootId/review",
			config.RequestHandler.SubmitReview)

		// Generic parameterized routes (must come LAST)
		requests.GET("/:rootId",
			config.RequestHandler.GetRequest)
		requests.PUT("/:rootId",
			config.RequestHandler.UpdateRequest)
	}

	incidents := api.Group("/incidents")
	incidents.Use(config.AuthMiddleware.RequireAuth())
	{
		incidents.GET("", config.RequestHandler.ListIncidents)
	}
}
