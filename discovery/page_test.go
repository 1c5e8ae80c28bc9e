package discovery

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

func svc(id string, price float64, rating *float64) models.Service {
	return models.Service{
		ID:          id,
		Name:        "Service " + id,
		Description: "Description of " + id,
		Price:       price,
		Rating:      rating,
	}
}

func sampleCatalog() []models.Service {
	return []models.Service{
		{ID: "1", Name: "Professional Electrician", Description: "Full home wiring and repair", Price: 1500, Rating: models.Float64(5.0)},
		{ID: "2", Name: "Deep Home Cleaning", Description: "Kitchen and bathrooms", Price: 2500, Rating: models.Float64(4.8)},
		{ID: "3", Name: "AC Master Service", Description: "Gas refilling and cooling", Price: 2000, Rating: models.Float64(4.9)},
		{ID: "4", Name: "Plumbing Fix", Description: "Leaks, taps and PIPES", Price: 700, Rating: models.Float64(3.5)},
		{ID: "5", Name: "Garden Care", Description: "Lawn mowing", Price: 400},
		{ID: "6", Name: "Pest Control", Description: "Home fumigation", Price: 5200, Rating: models.Float64(4.1)},
	}
}

func ids(services []models.Service) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.ID
	}
	return out
}

func TestComputeVisiblePageIdentityUnderNullFilter(t *testing.T) {
	services := sampleCatalog()
	f := NewFilterState()
	f.SetPriceRange(0, math.Inf(1))

	page := ComputeVisiblePage(services, f, len(services))

	assert.Equal(t, ids(services), ids(page.Items))
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, len(services), page.TotalFiltered)
}

func TestComputeVisiblePageDoesNotMutateInput(t *testing.T) {
	services := sampleCatalog()
	before := ids(services)
	f := NewFilterState()
	f.SetSortBy(SortPriceHigh)

	_ = ComputeVisiblePage(services, f, ItemsPerPage)

	assert.Equal(t, before, ids(services))
}

func TestFilterPriceSoundAndComplete(t *testing.T) {
	services := sampleCatalog()
	f := NewFilterState()
	f.SetPriceRange(700, 2000)

	kept := Filter(services, f)

	keptIDs := map[string]bool{}
	for _, s := range kept {
		keptIDs[s.ID] = true
		assert.True(t, s.Price >= 700 && s.Price <= 2000, "price %v outside range", s.Price)
	}
	for _, s := range services {
		if !keptIDs[s.ID] {
			assert.False(t, s.Price >= 700 && s.Price <= 2000, "service %s wrongly excluded", s.ID)
		}
	}
	assert.ElementsMatch(t, []string{"1", "3", "4"}, ids(kept))
}

func TestFilterInvertedPriceRangeMatchesNothing(t *testing.T) {
	f := NewFilterState()
	f.SetPriceRange(3000, 1000)

	page := ComputeVisiblePage(sampleCatalog(), f, ItemsPerPage)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.TotalFiltered)
}

func TestFilterSearchIsCaseInsensitiveOverNameAndDescription(t *testing.T) {
	services := sampleCatalog()

	tests := []struct {
		term string
		want []string
	}{
		{"electrician", []string{"1"}},
		{"HOME", []string{"1", "2"}},
		{"pipes", []string{"4"}},
		{"", []string{"1", "2", "3", "4", "5"}},
		{"no such thing", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			f := NewFilterState()
			f.SetSearchTerm(tt.term)
			assert.Equal(t, tt.want, ids(Filter(services, f)))
		})
	}
}

func TestFilterAbsentRatingCountsAsFive(t *testing.T) {
	f := NewFilterState()
	require.True(t, f.SetMinRating(4.5))

	kept := Filter(sampleCatalog(), f)

	// 5 has no rating, 6 is priced out of the default range.
	assert.Equal(t, []string{"1", "2", "3", "5"}, ids(kept))
}

func TestFilterZeroRatingIsARealRating(t *testing.T) {
	services := []models.Service{svc("a", 100, models.Float64(0)), svc("b", 100, nil)}
	f := NewFilterState()
	f.SetMinRating(3)

	assert.Equal(t, []string{"b"}, ids(Filter(services, f)))
}

func TestSortOrdersFullFilteredSet(t *testing.T) {
	var services []models.Service
	for i := 0; i < 25; i++ {
		price := float64((i * 37) % 11 * 100)
		services = append(services, svc(fmt.Sprint(i), price, models.Float64(float64(i%5))))
	}

	t.Run("price-low", func(t *testing.T) {
		f := NewFilterState()
		f.SetSortBy(SortPriceLow)
		all := collectAllPages(services, f, ItemsPerPage)
		for i := 1; i < len(all); i++ {
			assert.LessOrEqual(t, all[i-1].Price, all[i].Price)
		}
	})

	t.Run("price-high", func(t *testing.T) {
		f := NewFilterState()
		f.SetSortBy(SortPriceHigh)
		all := collectAllPages(services, f, ItemsPerPage)
		for i := 1; i < len(all); i++ {
			assert.GreaterOrEqual(t, all[i-1].Price, all[i].Price)
		}
	})

	t.Run("rating", func(t *testing.T) {
		f := NewFilterState()
		f.SetSortBy(SortRating)
		all := collectAllPages(services, f, ItemsPerPage)
		for i := 1; i < len(all); i++ {
			assert.GreaterOrEqual(t, all[i-1].EffectiveRating(), all[i].EffectiveRating())
		}
	})
}

func TestSortIsStable(t *testing.T) {
	services := []models.Service{
		svc("a", 500, nil),
		svc("b", 100, nil),
		svc("c", 500, nil),
		svc("d", 100, nil),
	}
	f := NewFilterState()
	f.SetSortBy(SortPriceLow)

	page := ComputeVisiblePage(services, f, ItemsPerPage)

	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(page.Items))
}

func collectAllPages(services []models.Service, f FilterState, perPage int) []models.Service {
	first := ComputeVisiblePage(services, f, perPage)
	var all []models.Service
	for p := 1; p <= first.TotalPages; p++ {
		f.SetPage(p)
		all = append(all, ComputeVisiblePage(services, f, perPage).Items...)
	}
	return all
}

func TestPagesConcatenateToFilteredSet(t *testing.T) {
	for _, n := range []int{0, 1, 8, 9, 10, 17, 18, 19, 40} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			var services []models.Service
			for i := 0; i < n; i++ {
				services = append(services, svc(fmt.Sprint(i), float64(i*100%5000), nil))
			}
			f := NewFilterState()

			first := ComputeVisiblePage(services, f, ItemsPerPage)
			filtered := Filter(services, f)

			assert.Equal(t, int(math.Ceil(float64(len(filtered))/ItemsPerPage)), first.TotalPages)
			assert.Equal(t, ids(filtered), ids(collectAllPages(services, f, ItemsPerPage)))
		})
	}
}

func TestRatingFloorScenario(t *testing.T) {
	services := []models.Service{
		svc("a", 500, models.Float64(4.2)),
		svc("b", 1500, models.Float64(5.0)),
		svc("c", 800, models.Float64(3.0)),
	}
	f := NewFilterState()
	require.True(t, f.SetMinRating(4))

	page := ComputeVisiblePage(services, f, 9)
	assert.Equal(t, []string{"a", "b"}, ids(page.Items))

	f.SetSortBy(SortPriceLow)
	page = ComputeVisiblePage(services, f, 9)

	require.Len(t, page.Items, 2)
	assert.Equal(t, 500.0, page.Items[0].Price)
	assert.Equal(t, 1500.0, page.Items[1].Price)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 2, page.TotalFiltered)
}

func TestTwentyServicesPaginateIntoThreePages(t *testing.T) {
	var services []models.Service
	for i := 0; i < 20; i++ {
		services = append(services, svc(fmt.Sprint(i), 100, nil))
	}
	f := NewFilterState()
	f.SetPage(3)

	page := ComputeVisiblePage(services, f, 9)

	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, services[18:20], page.Items)
}

func TestPagePastEndIsEmpty(t *testing.T) {
	f := NewFilterState()
	f.SetPage(7)

	page := ComputeVisiblePage(sampleCatalog(), f, ItemsPerPage)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 5, page.TotalFiltered)
}

func TestEmptyCatalog(t *testing.T) {
	page := ComputeVisiblePage(nil, NewFilterState(), ItemsPerPage)

	assert.Equal(t, []models.Service{}, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.TotalFiltered)
}

func TestNonPositiveItemsPerPageFallsBackToDefault(t *testing.T) {
	var services []models.Service
	for i := 0; i < 10; i++ {
		services = append(services, svc(fmt.Sprint(i), 100, nil))
	}

	page := ComputeVisiblePage(services, NewFilterState(), 0)

	assert.Len(t, page.Items, ItemsPerPage)
	assert.Equal(t, 2, page.TotalPages)
}

func TestPriceBounds(t *testing.T) {
	assert.Equal(t, PriceRange{}, PriceBounds(nil))
	assert.Equal(t, PriceRange{Min: 400, Max: 5200}, PriceBounds(sampleCatalog()))
}
