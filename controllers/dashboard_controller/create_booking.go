package dashboard_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/catalog"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/dashboard"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// CreateBooking godoc
// @Summary Book a service
// @Description Adds a pending, unpaid booking priced at the service's price.
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.BookingRequest true "Service and date"
// @Success 201 {object} models.ApiResponse{data=models.Booking}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Authentication required"
// @Failure 404 {object} models.ApiResponse "Service not found"
// @Router /bookings [post]
func CreateBooking(c *gin.Context) {
	sess, _ := middleware.GetSession(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	service, err := catalog.Lookup(c.Request.Context(), deps.Store, deps.Catalog, req.ServiceID)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Service not found"))
		return
	}
	if err != nil {
		config.Log.Errorw("[bookings.create] lookup failed", "service", req.ServiceID, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create booking"))
		return
	}

	booking := deps.Ledger.Add(models.Booking{
		Customer:      dashboard.CustomerName(sess),
		Provider:      service.Provider,
		Service:       service.Name,
		Date:          req.Date,
		Amount:        service.Price,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentUnpaid,
	})

	config.Log.Infow("[bookings.create] booked", "id", booking.ID, "customer", booking.Customer, "service", service.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Booking created successfully", booking))
}
