package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// GormActivityRecorder writes audit entries to the activity_logs table.
type GormActivityRecorder struct {
	db *gorm.DB
}

func NewGormActivityRecorder(db *gorm.DB) *GormActivityRecorder {
	return &GormActivityRecorder{db: db}
}

func (r *GormActivityRecorder) Record(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Recent returns the newest entries first.
func (r *GormActivityRecorder) Recent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
