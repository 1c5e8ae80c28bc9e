package dashboard_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// GetActivity godoc
// @Summary Recent catalog activity
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of entries" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog}
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Failure 503 {object} models.ApiResponse "Activity log unavailable"
// @Router /dashboard/activity [get]
func GetActivity(c *gin.Context) {
	if deps.Activity == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Activity log unavailable"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultActivityLimit)))
	if err != nil || limit < 1 || limit > maxActivityLimit {
		limit = defaultActivityLimit
	}

	logs, err := deps.Activity.Recent(c.Request.Context(), limit)
	if err != nil {
		config.Log.Errorw("[dashboard.activity] query failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity"))
		return
	}
	if logs == nil {
		logs = []models.ActivityLog{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Activity fetched successfully", logs))
}
