package service_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/catalog"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// GetServiceByID godoc
// @Summary Get a service
// @Description Built-in demo ids resolve before the store is consulted. A read-only upstream catalog is searched by id.
// @Tags Services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} models.ApiResponse{data=models.Service}
// @Failure 404 {object} models.ApiResponse "Service not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /services/{id} [get]
func GetServiceByID(c *gin.Context) {
	id := c.Param("id")

	service, err := catalog.Lookup(c.Request.Context(), deps.Store, deps.Catalog, id)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Service not found"))
		return
	}
	if err != nil {
		config.Log.Errorw("[services.get] lookup failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch service"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Service fetched successfully", service))
}
