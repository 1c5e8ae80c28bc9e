package dashboard_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/dashboard"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/services"
)

// ExportBookingsPDF godoc
// @Summary Download booking history
// @Description Customers get their bookings, providers get the bookings made with them.
// @Tags Dashboard
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} file "Booking history PDF"
// @Failure 401 {object} models.ApiResponse "Authentication required"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/bookings.pdf [get]
func ExportBookingsPDF(c *gin.Context) {
	sess, _ := middleware.GetSession(c)

	var (
		owner, counterparty string
		history             []models.Booking
	)
	if sess.Role == models.RoleProvider {
		owner, counterparty = sess.Name, "Customer"
		history = deps.Ledger.ForProvider(sess.Name)
	} else {
		owner, counterparty = dashboard.CustomerName(sess), "Provider"
		history = deps.Ledger.ForCustomer(owner)
	}

	buf, err := services.BookingHistoryPDF(owner, counterparty, history, deps.Now())
	if err != nil {
		config.Log.Errorw("[dashboard.pdf] render failed", "owner", owner, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate PDF"))
		return
	}

	filename := fmt.Sprintf("fixora-bookings-%s.pdf", deps.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
