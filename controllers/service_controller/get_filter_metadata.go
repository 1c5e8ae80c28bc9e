package service_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/discovery"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// FilterDefaults is the untouched filter state.
type FilterDefaults struct {
	SearchTerm string               `json:"searchTerm"`
	PriceRange discovery.PriceRange `json:"priceRange"`
	MinRating  float64              `json:"minRating"`
	SortBy     discovery.SortOrder  `json:"sortBy"`
	Page       int                  `json:"page"`
}

// FilterMetadata describes the controls a browse UI can offer.
type FilterMetadata struct {
	PriceBounds    discovery.PriceRange  `json:"priceBounds"`
	AllowedRatings []float64             `json:"allowedRatings"`
	SortOptions    []discovery.SortOrder `json:"sortOptions"`
	Defaults       FilterDefaults        `json:"defaults"`
	TotalServices  int                   `json:"totalServices"`
	ItemsPerPage   int                   `json:"itemsPerPage"`
}

// GetFilterMetadata godoc
// @Summary Get filter metadata
// @Description Returns catalog price bounds, the allowed rating floors, sort options and the default filter state.
// @Tags Services
// @Produce json
// @Success 200 {object} models.ApiResponse{data=FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /services/filters [get]
func GetFilterMetadata(c *gin.Context) {
	services, err := deps.Catalog.ListServices(c.Request.Context())
	if err != nil {
		config.Log.Errorw("[services.filters] catalog unavailable", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	defaults := discovery.NewFilterState()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", FilterMetadata{
		PriceBounds:    discovery.PriceBounds(services),
		AllowedRatings: discovery.AllowedRatings,
		SortOptions:    discovery.SortOrders,
		Defaults: FilterDefaults{
			SearchTerm: defaults.SearchTerm(),
			PriceRange: defaults.PriceRange(),
			MinRating:  defaults.MinRating(),
			SortBy:     defaults.SortBy(),
			Page:       defaults.CurrentPage(),
		},
		TotalServices: len(services),
		ItemsPerPage:  deps.ItemsPerPage,
	}))
}
