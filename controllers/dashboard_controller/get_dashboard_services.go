package dashboard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/dashboard"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// GetDashboardServices godoc
// @Summary Catalog for the signed-in role
// @Description Each entry carries the role tag and exactly one of user, provider or admin. Providers only see their own listings.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]dashboard.ServiceView}
// @Failure 401 {object} models.ApiResponse "Authentication required"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/services [get]
func GetDashboardServices(c *gin.Context) {
	sess, _ := middleware.GetSession(c)

	services, err := deps.Catalog.ListServices(c.Request.Context())
	if err != nil {
		config.Log.Errorw("[dashboard.services] catalog unavailable", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch services"))
		return
	}

	views, err := dashboard.RenderCatalog(sess, services)
	if err != nil {
		config.Log.Errorw("[dashboard.services] render failed", "role", sess.Role, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to render services"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Services fetched successfully", views))
}
