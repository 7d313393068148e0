package routes

import (
	"github.com/gin-gonic/gin"

	"upravdom/internal/interfaces/http/handlers"
	"upravdom/internal/interfaces/http/middleware"
)

type CatalogRouteConfig struct {
	CatalogHandler *handlers.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCatalogRoutes(api *gin.RouterGroup, config *CatalogRouteConfig) {
	catalogs := api.Group("")
	catalogs.Use(config.AuthMiddleware.RequireAuth())
	{
		catalogs.GET("/defects", config.CatalogHandler.ListDefects)
		catalogs.GET("/addresses", config.CatalogHandler.ListAddresses)
		catalogs.GET("/addresses/:id", config.CatalogHandler.GetAddress)
		catalogs.GET("/implementing-organizations", config.CatalogHandler.ListImplementingOrganizations)
		catalogs.GET("/work-performed-types", config.CatalogHandler.ListWorkPerformedTypes)
		catalogs.GET("/work-performed-types/:id/security-events", config.CatalogHandler.ListSecurityEvents)
		catalogs.GET("/refusal-reasons", config.CatalogHandler.ListRefusalReasons)
	}
}
