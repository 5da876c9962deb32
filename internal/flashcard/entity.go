package flashcard

import (
	"time"

	"github.com/google/uuid"
)

type Deck struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	TopicID     *uuid.UUID     `gorm:"type:uuid;index" json:"topic_id,omitempty"`
	Visibility  DeckVisibility `gorm:"type:text;not null;default:SHARED" json:"visibility"`
	CreatedBy   uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Cards []Flashcard `gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE" json:"cards,omitempty"`
}

type Flashcard struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DeckID    uuid.UUID `gorm:"type:uuid;not null;index" json:"deck_id"`
	Front     string    `gorm:"type:text;not null" json:"front"`
	Back      string    `gorm:"type:text;not null" json:"back"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ReviewState guarda o agendamento de revisão de um cartão para um aluno.
// Criado na primeira revisão, nunca removido enquanto o cartão existir.
type ReviewState struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_student_card" json:"student_id"`
	FlashcardID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_student_card" json:"flashcard_id"`
	EaseFactor   float64    `gorm:"not null;default:2.5" json:"ease_factor"`
	Repetitions  int        `gorm:"not null;default:0" json:"repetitions"`
	IntervalDays int        `gorm:"not null;default:0" json:"interval_days"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
	NextReview   *time.Time `gorm:"index" json:"next_review,omitempty"`
	CardStatus   CardStatus `gorm:"type:text;not null;default:new" json:"card_status"`
	Solved       bool       `gorm:"not null;default:false" json:"solved"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
