package flashcard

import (
	"time"

	"github.com/google/uuid"
)

type CreateDeckDTO struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	TopicID     *string         `json:"topic_id" validate:"omitempty,uuid"`
	Visibility  *DeckVisibility `json:"visibility"`
	Cards       []CreateCardDTO `json:"cards" validate:"dive"`
}

type UpdateDeckDTO struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Visibility  *DeckVisibility `json:"visibility"`
}

type CreateCardDTO struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back" validate:"required"`
}

type UpdateCardDTO struct {
	Front *string `json:"front"`
	Back  *string `json:"back"`
}

type DeckWithCardsDTO struct {
	Deck  *Deck        `json:"deck"`
	Cards []*Flashcard `json:"cards"`
}

type ReviewResultDTO struct {
	CardID       uuid.UUID  `json:"card_id"`
	Quality      int        `json:"quality"`
	EaseFactor   float64    `json:"ease_factor"`
	Repetitions  int        `json:"repetitions"`
	IntervalDays int        `json:"interval_days"`
	NextReviewIn int        `json:"next_review_in"`
	Unit         string     `json:"unit"`
	NextReview   *time.Time `json:"next_review"`
	CardStatus   CardStatus `json:"card_status"`
	Solved       bool       `json:"solved"`
}

type DueCardDTO struct {
	Card  *Flashcard   `json:"card"`
	State *ReviewState `json:"state,omitempty"`
}
