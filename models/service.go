package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRating is the effective rating of a service that has not been rated.
const DefaultRating = 5.0

// DefaultProvider is assigned to services created without a provider session name.
const DefaultProvider = "Sparky Solutions"

// Service is a bookable listing in the marketplace catalog. Timestamps are
// nil for demo and upstream services that were never stored.
type Service struct {
	ID          string     `json:"id" gorm:"type:varchar(64);primaryKey"`
	Name        string     `json:"name" gorm:"not null;index"`
	Description string     `json:"description" gorm:"not null"`
	Price       float64    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Image       string     `json:"image" gorm:"not null"`
	Provider    string     `json:"provider" gorm:"not null;default:'Sparky Solutions';index"`
	Rating      *float64   `json:"rating,omitempty" gorm:"type:numeric(3,2)"`
	CreatedAt   *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime"`
}

// EffectiveRating returns the stored rating, or DefaultRating when absent.
func (s Service) EffectiveRating() float64 {
	if s.Rating == nil {
		return DefaultRating
	}
	return *s.Rating
}

// BeforeCreate hook - auto-generate UUID v7
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.Must(uuid.NewV7()).String()
	}
	return nil
}

func (Service) TableName() string {
	return "services"
}

// Float64 returns a pointer to v, for optional fields such as Service.Rating.
func Float64(v float64) *float64 {
	return &v
}

// ServiceRequest is the body of POST /services.
type ServiceRequest struct {
	Name        string  `json:"name" binding:"required" example:"Professional Electrician"`
	Description string  `json:"description" binding:"required" example:"Full home wiring and repair"`
	Price       float64 `json:"price" binding:"required,gt=0" example:"1500"`
	Image       string  `json:"image" binding:"required,url" example:"https://images.unsplash.com/photo-1621905251189"`
}
