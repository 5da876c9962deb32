package module

import (
	"time"

	"github.com/google/uuid"
)

type Module struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	Description string       `gorm:"type:text" json:"description,omitempty"`
	Status      ModuleStatus `gorm:"type:text;not null;default:ACTIVE" json:"status"`
	CreatedBy   uuid.UUID    `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}
