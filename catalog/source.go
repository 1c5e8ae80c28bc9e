// Package catalog supplies the complete service catalog to the discovery
// view model and stores new listings.
package catalog

import (
	"context"
	"errors"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// ErrNotFound is returned when a service id is unknown.
var ErrNotFound = errors.New("service not found")

// Source returns a snapshot of the whole catalog. It never filters, sorts
// or paginates; that is the discovery package's job.
type Source interface {
	ListServices(ctx context.Context) ([]models.Service, error)
}

// Store is a Source that can also look up, create and count services.
type Store interface {
	Source
	FindByID(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Count(ctx context.Context) (int64, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]models.Service, error)

func (f SourceFunc) ListServices(ctx context.Context) ([]models.Service, error) {
	return f(ctx)
}

// DemoServices is the built-in catalog shown while the store is empty.
func DemoServices() []models.Service {
	return []models.Service{
		{
			ID:          "1",
			Name:        "Professional Electrician",
			Description: "Full home wiring, repair, and installation services by certified experts.",
			Price:       1500,
			Image:       "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?q=80&w=1469&auto=format&fit=crop",
			Provider:    "Sparky Solutions",
			Rating:      models.Float64(5.0),
		},
		{
			ID:          "2",
			Name:        "Deep Home Cleaning",
			Description: "Complete sanitization and cleaning of all rooms including kitchen and bathrooms.",
			Price:       2500,
			Image:       "https://images.unsplash.com/photo-1581578731548-c64695cc6954?q=80&w=1470&auto=format&fit=crop",
			Provider:    "Clean & Clear",
			Rating:      models.Float64(4.8),
		},
		{
			ID:          "3",
			Name:        "AC Master Service",
			Description: "Comprehensive AC servicing, gas refilling, and cooling optimization.",
			Price:       2000,
			Image:       "https://images.unsplash.com/photo-1563453392212-326f5e854473?q=80&w=1470&auto=format&fit=crop",
			Provider:    "Cool Air Pros",
			Rating:      models.Float64(4.9),
		},
	}
}

// FindDemo returns the demo service with the given id.
func FindDemo(id string) (*models.Service, bool) {
	for _, s := range DemoServices() {
		if s.ID == id {
			return &s, true
		}
	}
	return nil, false
}

// WithDemoFallback returns the demo catalog whenever src is empty.
func WithDemoFallback(src Source) Source {
	return SourceFunc(func(ctx context.Context) ([]models.Service, error) {
		services, err := src.ListServices(ctx)
		if err != nil {
			return nil, err
		}
		if len(services) == 0 {
			return DemoServices(), nil
		}
		return services, nil
	})
}

// Lookup resolves id against the demo catalog first and then the store.
// Without a store (read-only upstream) it scans the listing from src, so any
// id the listing shows can be fetched.
func Lookup(ctx context.Context, store Store, src Source, id string) (*models.Service, error) {
	if s, ok := FindDemo(id); ok {
		return s, nil
	}
	if store != nil {
		return store.FindByID(ctx, id)
	}
	if src == nil {
		return nil, ErrNotFound
	}
	services, err := src.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			found := services[i]
			return &found, nil
		}
	}
	return nil, ErrNotFound
}
