package flashcard

import (
	"context"
	"errors"
	"time"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDeckNotFound = errors.New("deck not found")
	ErrCardNotFound = errors.New("card not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidID    = errors.New("invalid id format")
	ErrNotDeckOwner = errors.New("deck does not belong to the user")
)

type FlashcardService interface {
	CreateDeck(ctx context.Context, dto CreateDeckDTO) (*DeckWithCardsDTO, error)
	GetDeckWithCards(ctx context.Context, deckID string) (*DeckWithCardsDTO, error)
	ListDecks(ctx context.Context) ([]*Deck, error)
	UpdateDeck(ctx context.Context, deckID string, dto UpdateDeckDTO) (*Deck, error)
	DeleteDeck(ctx context.Context, deckID string) error

	AddCard(ctx context.Context, deckID string, dto CreateCardDTO) (*Flashcard, error)
	UpdateCard(ctx context.Context, cardID string, dto UpdateCardDTO) (*Flashcard, error)
	RemoveCard(ctx context.Context, cardID string) error

	Review(ctx context.Context, cardID string, input ReviewInput) (*ReviewResultDTO, error)
	ListDue(ctx context.Context, limit int) ([]*DueCardDTO, error)
}

type flashcardService struct {
	repo FlashcardRepository
	db   *gorm.DB
}

func NewService(db *gorm.DB, repo FlashcardRepository) FlashcardService {
	return &flashcardService{repo: repo, db: db}
}

func getUserIDFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Attempt to %s without authentication", action)
		return uuid.Nil, ErrUnauthorized
	}
	return uuid.MustParse(claims.UserID), nil
}

// deckAccessibleBy aplica a regra de visibilidade: baralhos compartilhados
// valem para todos os alunos, baralhos privados só para o dono.
func deckAccessibleBy(d *Deck, userID uuid.UUID) bool {
	if d == nil {
		return false
	}
	return d.Visibility == DeckVisibilityShared || d.CreatedBy == userID
}

func (s *flashcardService) CreateDeck(ctx context.Context, dto CreateDeckDTO) (*DeckWithCardsDTO, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "create deck")
	if err != nil {
		return nil, err
	}

	visibility := DeckVisibilityShared
	if dto.Visibility != nil && dto.Visibility.IsValid() {
		visibility = *dto.Visibility
	}

	deck := &Deck{
		ID:          uuid.New(),
		Name:        dto.Name,
		Description: dto.Description,
		Visibility:  visibility,
		CreatedBy:   userID,
	}
	if dto.TopicID != nil {
		topicID := uuid.MustParse(*dto.TopicID)
		deck.TopicID = &topicID
	}

	cards := make([]*Flashcard, 0, len(dto.Cards))
	for _, c := range dto.Cards {
		cards = append(cards, &Flashcard{
			ID:     uuid.New(),
			DeckID: deck.ID,
			Front:  c.Front,
			Back:   c.Back,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(deck).Error; err != nil {
			return err
		}
		if len(cards) > 0 {
			if err := tx.Create(&cards).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Erro ao criar baralho")
		return nil, err
	}

	log.WithField("deck_id", deck.ID.String()).Info("Baralho criado com sucesso")
	return &DeckWithCardsDTO{Deck: deck, Cards: cards}, nil
}

func (s *flashcardService) getAccessibleDeck(ctx context.Context, deckID string) (*Deck, uuid.UUID, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "access deck")
	if err != nil {
		return nil, uuid.Nil, err
	}

	id, err := uuid.Parse(deckID)
	if err != nil {
		return nil, uuid.Nil, ErrInvalidID
	}

	deck, err := s.repo.FindDeckByID(id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar baralho")
		return nil, uuid.Nil, err
	}
	if !deckAccessibleBy(deck, userID) {
		return nil, uuid.Nil, ErrDeckNotFound
	}
	return deck, userID, nil
}

func (s *flashcardService) GetDeckWithCards(ctx context.Context, deckID string) (*DeckWithCardsDTO, error) {
	deck, _, err := s.getAccessibleDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	cards, err := s.repo.ListCardsByDeck(deck.ID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao listar cartões do baralho")
		return nil, err
	}
	return &DeckWithCardsDTO{Deck: deck, Cards: cards}, nil
}

func (s *flashcardService) ListDecks(ctx context.Context) ([]*Deck, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "list decks")
	if err != nil {
		return nil, err
	}

	decks, err := s.repo.ListDecksVisibleTo(userID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar baralhos")
		return nil, err
	}
	return decks, nil
}

func (s *flashcardService) UpdateDeck(ctx context.Context, deckID string, dto UpdateDeckDTO) (*Deck, error) {
	log := config.WithContext(ctx)

	deck, userID, err := s.getAccessibleDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if deck.CreatedBy != userID {
		return nil, ErrNotDeckOwner
	}

	if dto.Name != nil && *dto.Name != "" {
		deck.Name = *dto.Name
	}
	if dto.Description != nil {
		deck.Description = *dto.Description
	}
	if dto.Visibility != nil && dto.Visibility.IsValid() {
		deck.Visibility = *dto.Visibility
	}

	if err := s.repo.UpdateDeck(deck); err != nil {
		log.WithError(err).Error("Erro ao atualizar baralho")
		return nil, err
	}
	return deck, nil
}

func (s *flashcardService) DeleteDeck(ctx context.Context, deckID string) error {
	log := config.WithContext(ctx)

	deck, userID, err := s.getAccessibleDeck(ctx, deckID)
	if err != nil {
		return err
	}
	if deck.CreatedBy != userID {
		return ErrNotDeckOwner
	}

	if err := s.repo.DeleteDeck(deck.ID); err != nil {
		log.WithError(err).Error("Erro ao remover baralho")
		return err
	}

	log.WithField("deck_id", deckID).Info("Baralho removido com sucesso")
	return nil
}

func (s *flashcardService) AddCard(ctx context.Context, deckID string, dto CreateCardDTO) (*Flashcard, error) {
	log := config.WithContext(ctx)

	deck, userID, err := s.getAccessibleDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if deck.CreatedBy != userID {
		return nil, ErrNotDeckOwner
	}

	card := &Flashcard{
		ID:     uuid.New(),
		DeckID: deck.ID,
		Front:  dto.Front,
		Back:   dto.Back,
	}

	if err := s.repo.AddCards([]*Flashcard{card}); err != nil {
		log.WithError(err).Error("Erro ao adicionar cartão")
		return nil, err
	}

	log.WithField("card_id", card.ID.String()).Info("Cartão adicionado com sucesso")
	return card, nil
}

func (s *flashcardService) findOwnedCard(ctx context.Context, cardID string) (*Flashcard, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "modify card")
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(cardID)
	if err != nil {
		return nil, ErrInvalidID
	}

	card, err := s.repo.FindCardByID(id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	deck, err := s.repo.FindDeckByID(card.DeckID)
	if err != nil {
		return nil, err
	}
	if deck == nil || deck.CreatedBy != userID {
		return nil, ErrCardNotFound
	}
	return card, nil
}

func (s *flashcardService) UpdateCard(ctx context.Context, cardID string, dto UpdateCardDTO) (*Flashcard, error) {
	log := config.WithContext(ctx)

	card, err := s.findOwnedCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if dto.Front != nil && *dto.Front != "" {
		card.Front = *dto.Front
	}
	if dto.Back != nil && *dto.Back != "" {
		card.Back = *dto.Back
	}

	if err := s.repo.UpdateCard(card); err != nil {
		log.WithError(err).Error("Erro ao atualizar cartão")
		return nil, err
	}
	return card, nil
}

func (s *flashcardService) RemoveCard(ctx context.Context, cardID string) error {
	log := config.WithContext(ctx)

	card, err := s.findOwnedCard(ctx, cardID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteCard(card.ID); err != nil {
		log.WithError(err).Error("Erro ao remover cartão")
		return err
	}

	log.WithField("card_id", cardID).Info("Cartão removido com sucesso")
	return nil
}

// Review aplica o SM-2 ao cartão dentro de uma transação com lock por
// (aluno, cartão), evitando perda de atualização em revisões concorrentes.
func (s *flashcardService) Review(ctx context.Context, cardID string, input ReviewInput) (*ReviewResultDTO, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "review card")
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(cardID)
	if err != nil {
		return nil, ErrInvalidID
	}

	card, err := s.repo.FindCardByID(id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar cartão para revisão")
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	deck, err := s.repo.FindDeckByID(card.DeckID)
	if err != nil {
		return nil, err
	}
	if !deckAccessibleBy(deck, userID) {
		// Cartão de baralho alheio: "não encontrado", sem mutação de estado.
		log.WithFields(logrus.Fields{
			"card_id": cardID,
			"user_id": userID,
		}).Warn("Cartão não pertence a um baralho acessível pelo aluno")
		return nil, ErrCardNotFound
	}

	quality := NormalizeQuality(input)
	now := time.Now()

	var result ReviewResultDTO
	err = s.db.Transaction(func(tx *gorm.DB) error {
		state, err := s.repo.FindStateForUpdate(tx, userID, card.ID)
		if err != nil {
			return err
		}
		if state == nil {
			state = &ReviewState{
				ID:          uuid.New(),
				StudentID:   userID,
				FlashcardID: card.ID,
				EaseFactor:  DefaultEaseFactor,
				CardStatus:  CardStatusNew,
			}
		}

		outcome := ApplyReview(state, quality, now)

		if err := s.repo.SaveState(tx, state); err != nil {
			return err
		}

		result = ReviewResultDTO{
			CardID:       card.ID,
			Quality:      outcome.Quality,
			EaseFactor:   outcome.EaseFactor,
			Repetitions:  outcome.Repetitions,
			IntervalDays: outcome.IntervalDays,
			NextReviewIn: outcome.NextReviewIn,
			Unit:         outcome.Unit,
			NextReview:   state.NextReview,
			CardStatus:   state.CardStatus,
			Solved:       state.Solved,
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Erro ao aplicar revisão do cartão")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"card_id": cardID,
		"quality": quality,
	}).Info("Revisão aplicada com sucesso")
	return &result, nil
}

func (s *flashcardService) ListDue(ctx context.Context, limit int) ([]*DueCardDTO, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "list due cards")
	if err != nil {
		return nil, err
	}

	states, err := s.repo.ListDueStates(userID, limit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar cartões pendentes")
		return nil, err
	}

	cardIDs := make([]uuid.UUID, 0, len(states))
	for _, st := range states {
		cardIDs = append(cardIDs, st.FlashcardID)
	}
	cards, err := s.repo.ListCardsByIDs(cardIDs)
	if err != nil {
		log.WithError(err).Error("Erro ao carregar cartões pendentes")
		return nil, err
	}

	return dueCards(states, cards), nil
}

// dueCards casa os estados pendentes com seus cartões, preservando a ordem
// dos estados. Estados cujo cartão já foi removido ficam de fora.
func dueCards(states []*ReviewState, cards []*Flashcard) []*DueCardDTO {
	byID := make(map[uuid.UUID]*Flashcard, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}

	due := make([]*DueCardDTO, 0, len(states))
	for _, st := range states {
		card, ok := byID[st.FlashcardID]
		if !ok {
			continue
		}
		due = append(due, &DueCardDTO{Card: card, State: st})
	}
	return due
}
