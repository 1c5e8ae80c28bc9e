package marketplace_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/controllers/dashboard_controller"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// SetupDashboardRoutes registers the per-role dashboards and bookings.
// Every route needs a session.
func SetupDashboardRoutes(rg *gin.RouterGroup, g Guards) {
	authed := rg.Group("")
	authed.Use(middleware.RequireSession(g.Sessions))

	authed.GET("/user/stats", middleware.RequireRole(models.RoleUser), dashboard_controller.GetUserStats)
	authed.GET("/provider/stats", middleware.RequireRole(models.RoleProvider), dashboard_controller.GetProviderStats)

	dash := authed.Group("/dashboard")
	{
		dash.GET("/services", dashboard_controller.GetDashboardServices)
		dash.GET("/bookings.pdf", middleware.RequireRole(models.RoleUser, models.RoleProvider), dashboard_controller.ExportBookingsPDF)
		dash.GET("/bookings", middleware.RequireRole(models.RoleAdmin), dashboard_controller.GetAllBookings)
		dash.GET("/activity", middleware.RequireRole(models.RoleAdmin), dashboard_controller.GetActivity)
	}

	authed.POST("/bookings",
		middleware.RateLimiter(g.Rate, mutationLimit, limitWindow),
		middleware.RequireRole(models.RoleUser),
		dashboard_controller.CreateBooking,
	)
}
