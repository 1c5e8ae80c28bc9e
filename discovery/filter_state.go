// Package discovery computes the browse page of the service catalog:
// search, price and rating filters, sorting and pagination.
package discovery

import "slices"

// SortOrder selects how filtered services are ordered.
type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortRating    SortOrder = "rating"
)

// Valid reports whether s is a known sort order.
func (s SortOrder) Valid() bool {
	switch s {
	case SortDefault, SortPriceLow, SortPriceHigh, SortRating:
		return true
	}
	return false
}

// SortOrders lists the sort orders offered to clients.
var SortOrders = []SortOrder{SortDefault, SortPriceLow, SortPriceHigh, SortRating}

// AllowedRatings are the rating floors a client may pick.
var AllowedRatings = []float64{0, 3, 4, 4.5}

// PriceRange is an inclusive price window. Min may exceed Max, in which
// case nothing matches.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultPriceRange is the untouched price filter.
var DefaultPriceRange = PriceRange{Min: 0, Max: 5000}

// Contains reports whether price lies within the range.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// FilterState is the browse state of one viewer. Changing the search term,
// price range, rating floor or sort order sends the viewer back to page 1;
// changing the page touches nothing else.
//
// The zero value is not ready for use; start from NewFilterState.
type FilterState struct {
	searchTerm  string
	priceRange  PriceRange
	minRating   float64
	sortBy      SortOrder
	currentPage int
}

// NewFilterState returns the default browse state.
func NewFilterState() FilterState {
	return FilterState{
		priceRange:  DefaultPriceRange,
		sortBy:      SortDefault,
		currentPage: 1,
	}
}

func (f FilterState) SearchTerm() string     { return f.searchTerm }
func (f FilterState) PriceRange() PriceRange { return f.priceRange }
func (f FilterState) MinRating() float64     { return f.minRating }
func (f FilterState) SortBy() SortOrder      { return f.sortBy }
func (f FilterState) CurrentPage() int       { return f.currentPage }

// SetSearchTerm updates the search term.
func (f *FilterState) SetSearchTerm(term string) {
	if term == f.searchTerm {
		return
	}
	f.searchTerm = term
	f.currentPage = 1
}

// SetPriceRange updates the price window. No clamping is applied.
func (f *FilterState) SetPriceRange(min, max float64) {
	r := PriceRange{Min: min, Max: max}
	if r == f.priceRange {
		return
	}
	f.priceRange = r
	f.currentPage = 1
}

// SetMinRating updates the rating floor. Values outside AllowedRatings are
// rejected and leave the state unchanged.
func (f *FilterState) SetMinRating(rating float64) bool {
	if !slices.Contains(AllowedRatings, rating) {
		return false
	}
	if rating != f.minRating {
		f.minRating = rating
		f.currentPage = 1
	}
	return true
}

// SetSortBy updates the sort order. Unknown orders are rejected.
func (f *FilterState) SetSortBy(order SortOrder) bool {
	if !order.Valid() {
		return false
	}
	if order != f.sortBy {
		f.sortBy = order
		f.currentPage = 1
	}
	return true
}

// SetPage moves to page n. Pages below 1 become 1; pages past the end are
// kept and produce an empty result.
func (f *FilterState) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	f.currentPage = n
}

// ClearFilters resets the filter panel (price, rating, sort) and returns to
// page 1. The search term belongs to the search box and is kept.
func (f *FilterState) ClearFilters() {
	f.priceRange = DefaultPriceRange
	f.minRating = 0
	f.sortBy = SortDefault
	f.currentPage = 1
}

// ClearAll resets everything, search term included.
func (f *FilterState) ClearAll() {
	*f = NewFilterState()
}

// ActiveFilterCount counts the filter-panel dimensions that differ from
// their defaults: price range, rating floor and sort order. The search term
// is not a panel filter and is not counted.
func (f FilterState) ActiveFilterCount() int {
	n := 0
	if f.priceRange != DefaultPriceRange {
		n++
	}
	if f.minRating > 0 {
		n++
	}
	if f.sortBy != SortDefault {
		n++
	}
	return n
}

// ActiveFilterCount is the function form of FilterState.ActiveFilterCount.
func ActiveFilterCount(f FilterState) int {
	return f.ActiveFilterCount()
}

// ClearFilters is the function form of FilterState.ClearFilters.
func ClearFilters(f *FilterState) {
	f.ClearFilters()
}
