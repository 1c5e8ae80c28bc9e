// Package dashboard renders catalog entries and booking summaries for the
// role carried by an explicit session.
package dashboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// ErrUnknownRole is returned for a session whose role has no dashboard.
var ErrUnknownRole = errors.New("unknown role")

// ServiceView is a service rendered for one role. Role is the tag: exactly
// the variant it names is set, the other two are nil.
type ServiceView struct {
	Role     models.Role      `json:"role"`
	User     *CustomerCard    `json:"user,omitempty"`
	Provider *ProviderListing `json:"provider,omitempty"`
	Admin    *AdminRecord     `json:"admin,omitempty"`
}

// CustomerCard is what a customer sees when browsing.
type CustomerCard struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	Provider    string  `json:"provider"`
}

// ProviderListing is a provider's view of one of their own listings. Rating
// stays nil until a customer has rated the service.
type ProviderListing struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Rating      *float64   `json:"rating"`
	Image       string     `json:"image"`
	ListedAt    *time.Time `json:"listed_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// AdminRecord is the full stored record plus the rating used for ranking.
type AdminRecord struct {
	models.Service
	EffectiveRating float64 `json:"effective_rating"`
}

// RenderService renders s for the session's role.
func RenderService(sess models.Session, s models.Service) (ServiceView, error) {
	switch sess.Role {
	case models.RoleUser:
		return ServiceView{Role: models.RoleUser, User: &CustomerCard{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			Rating:      s.EffectiveRating(),
			Image:       s.Image,
			Provider:    s.Provider,
		}}, nil
	case models.RoleProvider:
		return ServiceView{Role: models.RoleProvider, Provider: &ProviderListing{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			Rating:      s.Rating,
			Image:       s.Image,
			ListedAt:    s.CreatedAt,
			UpdatedAt:   s.UpdatedAt,
		}}, nil
	case models.RoleAdmin:
		return ServiceView{Role: models.RoleAdmin, Admin: &AdminRecord{
			Service:         s,
			EffectiveRating: s.EffectiveRating(),
		}}, nil
	}
	return ServiceView{}, fmt.Errorf("render service for %q: %w", sess.Role, ErrUnknownRole)
}

// RenderCatalog renders services for the session. Providers only see the
// services listed under their own name.
func RenderCatalog(sess models.Session, services []models.Service) ([]ServiceView, error) {
	views := make([]ServiceView, 0, len(services))
	for _, s := range services {
		if sess.Role == models.RoleProvider && s.Provider != sess.Name {
			continue
		}
		v, err := RenderService(sess, s)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
