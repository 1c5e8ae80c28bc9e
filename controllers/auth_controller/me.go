package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// Me godoc
// @Summary Current session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.Session}
// @Failure 401 {object} models.ApiResponse "Authentication required"
// @Router /auth/me [get]
func Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session fetched successfully", sess))
}
