package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewModelStartsEmpty(t *testing.T) {
	vm := NewViewModel(0)

	assert.Equal(t, ItemsPerPage, vm.ItemsPerPage())
	assert.Empty(t, vm.Visible().Items)

	vm.Load(sampleCatalog())
	vm.Filters.SetSearchTerm("home")

	assert.Equal(t, []string{"1", "2"}, ids(vm.Visible().Items))
}

func TestViewModelPagesSortedResults(t *testing.T) {
	vm := NewViewModel(2)
	vm.Load(sampleCatalog())

	assert.True(t, vm.Filters.SetSortBy(SortPriceLow))
	vm.Filters.SetPage(2)

	page := vm.Visible()
	assert.Equal(t, []string{"1", "3"}, ids(page.Items))
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 5, page.TotalFiltered)
}

func TestViewModelReloadKeepsFilters(t *testing.T) {
	vm := NewViewModel(9)
	vm.Load(sampleCatalog())
	assert.True(t, vm.Filters.SetMinRating(4.5))
	assert.Equal(t, []string{"1", "2", "3", "5"}, ids(vm.Visible().Items))

	vm.Load(sampleCatalog()[:2])

	assert.Equal(t, 1, vm.Filters.ActiveFilterCount())
	assert.Equal(t, []string{"1", "2"}, ids(vm.Visible().Items))
}
