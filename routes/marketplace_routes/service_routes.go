package marketplace_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/controllers/service_controller"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

func SetupServiceRoutes(rg *gin.RouterGroup, g Guards) {
	services := rg.Group("/services")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	services.GET("", service_controller.GetServices)
	services.GET("/all", service_controller.GetAllServices)
	services.GET("/filters", service_controller.GetFilterMetadata)
	services.GET("/:id", service_controller.GetServiceByID)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := services.Group("")
	protected.Use(middleware.RateLimiter(g.Rate, mutationLimit, limitWindow))
	protected.Use(middleware.RequireSession(g.Sessions))
	protected.Use(middleware.RequireRole(models.RoleProvider, models.RoleAdmin))
	protected.Use(middleware.ActivityLogging(g.Activity, models.ResourceTypeService))
	{
		protected.POST("", service_controller.CreateService)
	}
}
