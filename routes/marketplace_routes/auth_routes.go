package marketplace_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/controllers/auth_controller"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(rg *gin.RouterGroup, g Guards) {
	auth := rg.Group("/auth")
	limited := auth.Group("", middleware.RateLimiter(g.Rate, authLimit, limitWindow))
	{
		limited.POST("/register", auth_controller.Register)
		limited.POST("/login", auth_controller.Login)
	}

	auth.POST("/logout", auth_controller.Logout)
	auth.GET("/me", middleware.RequireSession(g.Sessions), auth_controller.Me)
}
