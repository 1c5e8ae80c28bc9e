package discovery

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names understood by ParseQuery.
const (
	ParamSearch    = "q"
	ParamMinPrice  = "minPrice"
	ParamMaxPrice  = "maxPrice"
	ParamMinRating = "minRating"
	ParamSortBy    = "sortBy"
	ParamPage      = "page"
)

// ParseQuery builds a FilterState from URL query values. Missing or
// unparsable values keep their defaults; the page is applied last so it
// survives the reset caused by the other fields.
func ParseQuery(values url.Values) FilterState {
	f := NewFilterState()

	f.SetSearchTerm(strings.TrimSpace(values.Get(ParamSearch)))

	r := DefaultPriceRange
	if v, ok := parseFloat(values.Get(ParamMinPrice)); ok {
		r.Min = v
	}
	if v, ok := parseFloat(values.Get(ParamMaxPrice)); ok {
		r.Max = v
	}
	f.SetPriceRange(r.Min, r.Max)

	if v, ok := parseFloat(values.Get(ParamMinRating)); ok {
		f.SetMinRating(v)
	}
	if v := values.Get(ParamSortBy); v != "" {
		f.SetSortBy(SortOrder(v))
	}
	if n, err := strconv.Atoi(values.Get(ParamPage)); err == nil {
		f.SetPage(n)
	}
	return f
}

// Encode renders f back to query values, omitting defaults.
func (f FilterState) Encode() url.Values {
	v := url.Values{}
	if f.searchTerm != "" {
		v.Set(ParamSearch, f.searchTerm)
	}
	if f.priceRange.Min != DefaultPriceRange.Min {
		v.Set(ParamMinPrice, strconv.FormatFloat(f.priceRange.Min, 'f', -1, 64))
	}
	if f.priceRange.Max != DefaultPriceRange.Max {
		v.Set(ParamMaxPrice, strconv.FormatFloat(f.priceRange.Max, 'f', -1, 64))
	}
	if f.minRating > 0 {
		v.Set(ParamMinRating, strconv.FormatFloat(f.minRating, 'f', -1, 64))
	}
	if f.sortBy != SortDefault {
		v.Set(ParamSortBy, string(f.sortBy))
	}
	if f.currentPage > 1 {
		v.Set(ParamPage, strconv.Itoa(f.currentPage))
	}
	return v
}

func parseFloat(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
