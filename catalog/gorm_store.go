package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// GormStore keeps services in the services table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ListServices returns every service in insertion order.
func (s *GormStore) ListServices(ctx context.Context) ([]models.Service, error) {
	services := make([]models.Service, 0)
	if err := s.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (s *GormStore) FindByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find service %s: %w", id, err)
	}
	return &service, nil
}

func (s *GormStore) Create(ctx context.Context, service *models.Service) error {
	if err := s.db.WithContext(ctx).Create(service).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (s *GormStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Service{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	return n, nil
}
