package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// Logout godoc
// @Summary Sign out
// @Description Clears the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse "Logged out"
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	// MaxAge < 0 deletes; name, path and flags must match Login
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
