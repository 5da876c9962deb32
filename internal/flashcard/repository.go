package flashcard

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FlashcardRepository interface {
	CreateDeck(d *Deck) error
	FindDeckByID(id uuid.UUID) (*Deck, error)
	ListDecksVisibleTo(studentID uuid.UUID) ([]*Deck, error)
	UpdateDeck(d *Deck) error
	DeleteDeck(id uuid.UUID) error

	AddCards(cards []*Flashcard) error
	FindCardByID(id uuid.UUID) (*Flashcard, error)
	ListCardsByIDs(ids []uuid.UUID) ([]*Flashcard, error)
	ListCardsByDeck(deckID uuid.UUID) ([]*Flashcard, error)
	UpdateCard(c *Flashcard) error
	DeleteCard(id uuid.UUID) error

	// FindStateForUpdate carrega o estado de revisão com lock de linha;
	// precisa rodar dentro da transação recebida.
	FindStateForUpdate(tx *gorm.DB, studentID, cardID uuid.UUID) (*ReviewState, error)
	SaveState(tx *gorm.DB, state *ReviewState) error
	ListDueStates(studentID uuid.UUID, limit int) ([]*ReviewState, error)
}

type flashcardRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) CreateDeck(d *Deck) error {
	return r.db.Create(d).Error
}

func (r *flashcardRepository) FindDeckByID(id uuid.UUID) (*Deck, error) {
	var d Deck
	if err := r.db.First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *flashcardRepository) ListDecksVisibleTo(studentID uuid.UUID) ([]*Deck, error) {
	var decks []*Deck
	if err := r.db.
		Where("visibility = ? OR created_by = ?", DeckVisibilityShared, studentID).
		Order("created_at DESC").
		Find(&decks).Error; err != nil {
		return nil, err
	}
	return decks, nil
}

func (r *flashcardRepository) UpdateDeck(d *Deck) error {
	return r.db.Save(d).Error
}

func (r *flashcardRepository) DeleteDeck(id uuid.UUID) error {
	return r.db.Delete(&Deck{}, "id = ?", id).Error
}

func (r *flashcardRepository) AddCards(cards []*Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	return r.db.Create(&cards).Error
}

func (r *flashcardRepository) FindCardByID(id uuid.UUID) (*Flashcard, error) {
	var c Flashcard
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *flashcardRepository) ListCardsByIDs(ids []uuid.UUID) ([]*Flashcard, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var cards []*Flashcard
	if err := r.db.Where("id IN ?", ids).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *flashcardRepository) ListCardsByDeck(deckID uuid.UUID) ([]*Flashcard, error) {
	var cards []*Flashcard
	if err := r.db.
		Where("deck_id = ?", deckID).
		Order("created_at ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *flashcardRepository) UpdateCard(c *Flashcard) error {
	return r.db.Save(c).Error
}

func (r *flashcardRepository) DeleteCard(id uuid.UUID) error {
	return r.db.Delete(&Flashcard{}, "id = ?", id).Error
}

func (r *flashcardRepository) FindStateForUpdate(tx *gorm.DB, studentID, cardID uuid.UUID) (*ReviewState, error) {
	var state ReviewState
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_id = ? AND flashcard_id = ?", studentID, cardID).
		First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (r *flashcardRepository) SaveState(tx *gorm.DB, state *ReviewState) error {
	return tx.Save(state).Error
}

func (r *flashcardRepository) ListDueStates(studentID uuid.UUID, limit int) ([]*ReviewState, error) {
	query := r.db.
		Where("student_id = ? AND (next_review IS NULL OR next_review <= NOW())", studentID).
		Order("next_review ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var states []*ReviewState
	if err := query.Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}
