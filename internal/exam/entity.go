package exam

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Exam struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title           string         `gorm:"type:text;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	ModuleID        *uuid.UUID     `gorm:"type:uuid;index" json:"module_id,omitempty"`
	QuestionIDs     datatypes.JSON `gorm:"type:jsonb" json:"question_ids"`
	DurationMinutes int            `gorm:"not null;default:0" json:"duration_minutes"`
	Status          ExamStatus     `gorm:"type:text;not null;default:DRAFT" json:"status"`
	CreatedBy       uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
