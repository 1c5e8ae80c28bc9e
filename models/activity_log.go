package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog records a catalog mutation made by a provider or an admin.
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ActorID      string         `json:"actor_id" gorm:"not null;index:idx_activity_actor_date,sort:desc"`
	ActorEmail   string         `json:"actor_email" gorm:"not null"`
	ActorRole    Role           `json:"actor_role" gorm:"type:varchar(20);not null"`
	Action       string         `json:"action" gorm:"not null;index"`                                             // created_service, ...
	ResourceType string         `json:"resource_type" gorm:"not null;index:idx_activity_resource_date,sort:desc"` // service
	ResourceID   string         `json:"resource_id" gorm:"not null;index"`
	ResourceName string         `json:"resource_name"`
	Changes      datatypes.JSON `json:"changes" gorm:"type:jsonb"`
	Status       string         `json:"status" gorm:"not null"`
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_actor_date,sort:desc;index:idx_activity_resource_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ActivityChanges is the before/after payload stored in ActivityLog.Changes.
type ActivityChanges struct {
	Before map[string]any `json:"before"`
	After  map[string]any `json:"after"`
}

// JSON encodes the changes for the jsonb column.
func (ac ActivityChanges) JSON() datatypes.JSON {
	raw, err := json.Marshal(ac)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(raw)
}

const (
	ActionCreateService = "created_service"
	ActionUpdateService = "updated_service"
	ActionDeleteService = "deleted_service"

	ResourceTypeService = "service"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)
