package auth_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/services"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/utils"
)

// Login godoc
// @Summary Sign in
// @Description Demo accounts (admin@gmail.com, provider@gmail.com, user@gmail.com with password123) are accepted first. Sets an HttpOnly session cookie and returns the token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.LoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 404 {object} models.ApiResponse "User not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx := c.Request.Context()

	sess, err := deps.Accounts.Authenticate(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		config.Log.Infof("[auth.login] user not found: %s", req.Email)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		config.Log.Infof("[auth.login] invalid password: %s", req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid credentials"))
		return
	case err != nil:
		config.Log.Errorf("[auth.login] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	token, err := deps.Sessions.Issue(sess)
	if err != nil {
		config.Log.Errorf("[auth.login] failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if deps.LoginEvents != nil {
		ev := utils.NewLoginEvent(c, sess.UserID, string(sess.Role))
		if err := utils.LogLoginEvent(ctx, deps.LoginEvents, ev); err != nil {
			config.Log.Warnf("⚠️  Failed to log login event: %v", err)
		}
	}

	setSessionCookie(c, token, int(deps.Sessions.Expiry().Seconds()))

	config.Log.Infof("[auth.login] success: %s (%s)", sess.Email, sess.Role)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.LoginResponse{
		Session: sess,
		Token:   token,
	}))
}
