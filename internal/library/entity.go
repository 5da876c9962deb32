package library

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	Author      string     `gorm:"type:text" json:"author,omitempty"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	FileURL     string     `gorm:"type:text;not null" json:"file_url"`
	ModuleID    *uuid.UUID `gorm:"type:uuid;index" json:"module_id,omitempty"`
	Status      BookStatus `gorm:"type:text;not null;default:ACTIVE" json:"status"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
