package auth_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/services"
)

// Register godoc
// @Summary Create an account
// @Description Registers a user or provider. The role defaults to user; admin accounts cannot self-register.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.RegisterRequest true "Account details"
// @Success 201 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request or user already exists"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	user, err := deps.Accounts.Register(c.Request.Context(), req)
	if errors.Is(err, services.ErrUserExists) {
		config.Log.Infof("[auth.register] duplicate email: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "User already exists"))
		return
	}
	if err != nil {
		config.Log.Errorf("[auth.register] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	config.Log.Infof("[auth.register] success: %s (%s)", user.Email, user.Role)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", user.ToResponse()))
}
