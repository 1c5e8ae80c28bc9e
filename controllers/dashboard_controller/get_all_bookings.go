package dashboard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// GetAllBookings godoc
// @Summary Every booking in the ledger
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Booking}
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Router /dashboard/bookings [get]
func GetAllBookings(c *gin.Context) {
	all := deps.Ledger.All()
	if all == nil {
		all = []models.Booking{}
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Bookings fetched successfully", all, &models.Pagination{
		Page:       1,
		Limit:      deps.Ledger.Len(),
		Total:      len(all),
		TotalPages: 1,
	}))
}
