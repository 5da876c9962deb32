package question

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TopicID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"topic_id"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	Options       datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	CorrectOption string         `gorm:"type:text;not null" json:"-"`
	Explanation   *string        `gorm:"type:text" json:"explanation,omitempty"`
	Difficulty    Difficulty     `gorm:"type:text;not null;default:MEDIUM" json:"difficulty"`
	Status        QuestionStatus `gorm:"type:text;not null;default:ACTIVE" json:"status"`
	CreatedBy     uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
