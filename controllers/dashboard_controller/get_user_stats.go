package dashboard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/dashboard"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// GetUserStats godoc
// @Summary Customer dashboard
// @Description Booking totals and history (newest first) for the signed-in customer.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=dashboard.UserStats}
// @Failure 401 {object} models.ApiResponse "Authentication required"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Router /user/stats [get]
func GetUserStats(c *gin.Context) {
	sess, _ := middleware.GetSession(c)

	history := deps.Ledger.ForCustomer(dashboard.CustomerName(sess))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "User stats fetched successfully", dashboard.BuildUserStats(history)))
}
