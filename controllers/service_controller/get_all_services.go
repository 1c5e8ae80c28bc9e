package service_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// GetAllServices godoc
// @Summary Full catalog snapshot
// @Description Returns every service as a bare JSON array, unfiltered and unpaginated.
// @Tags Services
// @Produce json
// @Success 200 {array} models.Service
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /services/all [get]
func GetAllServices(c *gin.Context) {
	services, err := deps.Catalog.ListServices(c.Request.Context())
	if err != nil {
		config.Log.Errorw("[services.all] catalog unavailable", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch services"))
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}
