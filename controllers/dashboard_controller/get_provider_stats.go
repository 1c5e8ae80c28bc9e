package dashboard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/dashboard"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// GetProviderStats godoc
// @Summary Provider dashboard
// @Description Paid earnings, pending jobs, distinct clients, average listing rating and the five most recent orders.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=dashboard.ProviderStats}
// @Failure 401 {object} models.ApiResponse "Authentication required"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /provider/stats [get]
func GetProviderStats(c *gin.Context) {
	sess, _ := middleware.GetSession(c)

	listings, err := providerListings(c.Request.Context(), sess.Name)
	if err != nil {
		config.Log.Errorw("[dashboard.provider] catalog unavailable", "provider", sess.Name, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch provider stats"))
		return
	}

	stats := dashboard.BuildProviderStats(deps.Ledger.ForProvider(sess.Name), listings)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Provider stats fetched successfully", stats))
}
