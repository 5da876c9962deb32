package topic

import (
	"time"

	"github.com/google/uuid"
)

type Topic struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SubjectID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"subject_id"`
	ModuleID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"module_id"`
	Name        string      `gorm:"type:text;not null" json:"name"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
	Status      TopicStatus `gorm:"type:text;not null;default:ACTIVE" json:"status"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}
