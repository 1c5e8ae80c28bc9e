package service_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/discovery"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// GetServices godoc
// @Summary Browse services
// @Description Search, filter, sort and paginate the service catalog. Unknown sort orders and rating floors fall back to their defaults.
// @Tags Services
// @Produce json
// @Param q query string false "Case-insensitive search on name and description"
// @Param minPrice query number false "Minimum price (inclusive)" default(0)
// @Param maxPrice query number false "Maximum price (inclusive)" default(5000)
// @Param minRating query number false "Rating floor (0, 3, 4 or 4.5)" default(0)
// @Param sortBy query string false "default | price-low | price-high | rating" default(default)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse{data=[]models.Service} "Services fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /services [get]
func GetServices(c *gin.Context) {
	services, err := deps.Catalog.ListServices(c.Request.Context())
	if err != nil {
		config.Log.Errorw("[services.list] catalog unavailable", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch services"))
		return
	}

	vm := discovery.NewViewModel(deps.ItemsPerPage)
	vm.Load(services)
	vm.Filters = discovery.ParseQuery(c.Request.URL.Query())
	page := vm.Visible()

	current := vm.Filters.CurrentPage()
	meta := &models.Pagination{
		Page:          current,
		Limit:         vm.ItemsPerPage(),
		Total:         page.TotalFiltered,
		TotalPages:    page.TotalPages,
		ActiveFilters: vm.Filters.ActiveFilterCount(),
	}
	if current < page.TotalPages {
		meta.Next = pageLink(c.Request.URL.Path, vm.Filters, current+1)
	}
	if current > 1 && page.TotalPages > 0 {
		meta.Prev = pageLink(c.Request.URL.Path, vm.Filters, min(current-1, page.TotalPages))
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Services fetched successfully", page.Items, meta))
}

// pageLink keeps every filter of f and only moves the page.
func pageLink(path string, f discovery.FilterState, n int) string {
	f.SetPage(n)
	if q := f.Encode().Encode(); q != "" {
		return path + "?" + q
	}
	return path
}
