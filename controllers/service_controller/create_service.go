package service_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/middleware"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// CreateService godoc
// @Summary Create a service
// @Description Adds a listing owned by the signed-in provider. The image is re-hosted on Cloudinary when configured.
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.ServiceRequest true "Service details"
// @Success 201 {object} models.ApiResponse{data=models.Service} "Service created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 401 {object} models.ApiResponse "Authentication required"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Failure 502 {object} models.ApiResponse "Image upload failed"
// @Failure 503 {object} models.ApiResponse "Catalog is read-only"
// @Router /services [post]
func CreateService(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}
	if deps.Store == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Catalog is read-only"))
		return
	}

	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	ctx := c.Request.Context()

	image, publicID := req.Image, ""
	if deps.Images != nil {
		hosted, id, err := deps.Images.MirrorImage(ctx, req.Image)
		if err != nil {
			config.Log.Errorw("[services.create] image upload failed", "source", req.Image, "error", err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload image"))
			return
		}
		config.Log.Debugw("[services.create] image mirrored", "public_id", id)
		image, publicID = hosted, id
	}

	provider := strings.TrimSpace(sess.Name)
	if provider == "" {
		provider = models.DefaultProvider
	}

	service := &models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Image:       image,
		Provider:    provider,
		Rating:      models.Float64(models.DefaultRating),
	}
	if err := deps.Store.Create(ctx, service); err != nil {
		config.Log.Errorw("[services.create] insert failed", "error", err)
		if publicID != "" {
			if derr := deps.Images.DeleteImage(ctx, publicID); derr != nil {
				config.Log.Warnw("[services.create] orphaned image", "public_id", publicID, "error", derr)
			}
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create service"))
		return
	}

	if deps.Cache != nil {
		deps.Cache.Invalidate(ctx)
	}
	middleware.SetActivityResource(c, service.ID, service.Name, nil, service)

	config.Log.Infow("[services.create] created", "id", service.ID, "provider", provider)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Service created successfully", service))
}
