package dashboard_controller

import (
	"context"
	"time"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/bookings"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/catalog"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// ActivityFeed lists recent audit entries.
type ActivityFeed interface {
	Recent(ctx context.Context, limit int) ([]models.ActivityLog, error)
}

// Deps are the collaborators the handlers use. Store and Activity are optional.
type Deps struct {
	Catalog  catalog.Source
	Store    catalog.Store
	Ledger   *bookings.Ledger
	Activity ActivityFeed
	Now      func() time.Time
}

var deps Deps

// Init wires the handlers. Must be called before routes are served.
func Init(d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	deps = d
}

// providerListings returns the catalog entries listed under provider.
func providerListings(ctx context.Context, provider string) ([]models.Service, error) {
	services, err := deps.Catalog.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Service, 0)
	for _, s := range services {
		if s.Provider == provider {
			out = append(out, s)
		}
	}
	return out, nil
}
