package service_controller

import (
	"context"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/catalog"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/discovery"
)

// Invalidator drops cached catalog snapshots after a write.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// ImageHost re-hosts a remote image and returns its public URL and id.
type ImageHost interface {
	MirrorImage(ctx context.Context, sourceURL string) (string, string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// Deps are the collaborators the handlers use. Store, Cache and Images
// are optional.
type Deps struct {
	Catalog      catalog.Source
	Store        catalog.Store
	Cache        Invalidator
	Images       ImageHost
	ItemsPerPage int
}

var deps Deps

// Init wires the handlers. Must be called before routes are served.
func Init(d Deps) {
	if d.ItemsPerPage < 1 {
		d.ItemsPerPage = discovery.ItemsPerPage
	}
	deps = d
}
