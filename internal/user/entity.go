package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                    uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name                  string    `gorm:"type:text;not null" json:"name"`
	Email                 string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash          string    `gorm:"type:text" json:"-"`
	Role                  Role      `gorm:"type:text;not null;default:student" json:"role"`
	GoogleID              *string   `gorm:"type:text;index" json:"-"`
	EncryptedRefreshToken string    `gorm:"type:text" json:"-"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
