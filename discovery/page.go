package discovery

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// ItemsPerPage is the browse page size.
const ItemsPerPage = 9

// Page is one visible page of the filtered catalog.
type Page struct {
	Items         []models.Service `json:"items"`
	TotalPages    int              `json:"total_pages"`
	TotalFiltered int              `json:"total_filtered"`
}

// ComputeVisiblePage filters, sorts and slices services for the given state.
// The input slice is never modified. An itemsPerPage below 1 is treated as
// ItemsPerPage.
func ComputeVisiblePage(services []models.Service, f FilterState, itemsPerPage int) Page {
	if itemsPerPage < 1 {
		itemsPerPage = ItemsPerPage
	}

	filtered := Filter(services, f)
	Sort(filtered, f.sortBy)

	total := len(filtered)
	page := Page{
		Items:         []models.Service{},
		TotalPages:    (total + itemsPerPage - 1) / itemsPerPage,
		TotalFiltered: total,
	}

	current := max(f.currentPage, 1)
	start := (current - 1) * itemsPerPage
	if start >= total {
		return page
	}
	end := min(start+itemsPerPage, total)
	page.Items = filtered[start:end]
	return page
}

// Filter returns a new slice with the services matching f, in input order.
func Filter(services []models.Service, f FilterState) []models.Service {
	term := strings.ToLower(f.searchTerm)
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if !matchesSearch(s, term) {
			continue
		}
		if !f.priceRange.Contains(s.Price) {
			continue
		}
		if s.EffectiveRating() < f.minRating {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesSearch(s models.Service, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(s.Description), lowerTerm)
}

// Sort orders services in place. The sort is stable, and SortDefault leaves
// the order untouched.
func Sort(services []models.Service, order SortOrder) {
	switch order {
	case SortPriceLow:
		slices.SortStableFunc(services, func(a, b models.Service) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceHigh:
		slices.SortStableFunc(services, func(a, b models.Service) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortRating:
		slices.SortStableFunc(services, func(a, b models.Service) int {
			return cmp.Compare(b.EffectiveRating(), a.EffectiveRating())
		})
	}
}

// PriceBounds returns the lowest and highest price in services, or the zero
// range when services is empty.
func PriceBounds(services []models.Service) PriceRange {
	if len(services) == 0 {
		return PriceRange{}
	}
	r := PriceRange{Min: services[0].Price, Max: services[0].Price}
	for _, s := range services[1:] {
		r.Min = min(r.Min, s.Price)
		r.Max = max(r.Max, s.Price)
	}
	return r
}
