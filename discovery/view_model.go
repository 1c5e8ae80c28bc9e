package discovery

import "github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"

// ViewModel holds a catalog snapshot together with one viewer's browse
// state. It is not safe for concurrent use; each viewer owns its own.
type ViewModel struct {
	services     []models.Service
	itemsPerPage int

	Filters FilterState
}

// NewViewModel returns a view model with default filters and no services.
func NewViewModel(itemsPerPage int) *ViewModel {
	if itemsPerPage < 1 {
		itemsPerPage = ItemsPerPage
	}
	return &ViewModel{
		itemsPerPage: itemsPerPage,
		Filters:      NewFilterState(),
	}
}

// Load replaces the catalog snapshot. Until the first Load the catalog is
// empty, which renders as an empty page.
func (vm *ViewModel) Load(services []models.Service) {
	vm.services = services
}

// ItemsPerPage returns the page size.
func (vm *ViewModel) ItemsPerPage() int {
	return vm.itemsPerPage
}

// Visible computes the page for the current state.
func (vm *ViewModel) Visible() Page {
	return ComputeVisiblePage(vm.services, vm.Filters, vm.itemsPerPage)
}
