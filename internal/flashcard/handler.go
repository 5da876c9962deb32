package flashcard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/estudai/estudai-api/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service FlashcardService
}

func NewHandler(s FlashcardService) *Handler {
	return &Handler{service: s}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDeckNotFound):
		http.Error(w, "deck not found", http.StatusNotFound)
	case errors.Is(err, ErrCardNotFound):
		http.Error(w, "card not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrNotDeckOwner):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateDeckDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para criar baralho")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	deck, err := h.service.CreateDeck(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao criar baralho")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, deck)
}

func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	deck, err := h.service.GetDeckWithCards(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, deck)
}

func (h *Handler) ListDecks(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	decks, err := h.service.ListDecks(r.Context())
	if err != nil {
		log.WithError(err).Error("Erro ao listar baralhos")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, decks)
}

func (h *Handler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateDeckDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	deck, err := h.service.UpdateDeck(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao atualizar baralho")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, deck)
}

func (h *Handler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteDeck(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.WithError(err).Error("Erro ao remover baralho")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "deck deleted successfully",
	})
}

func (h *Handler) AddCard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateCardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	card, err := h.service.AddCard(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao adicionar cartão")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, card)
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateCardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	card, err := h.service.UpdateCard(r.Context(), chi.URLParam(r, "cardID"), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao atualizar cartão")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, card)
}

func (h *Handler) RemoveCard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.RemoveCard(r.Context(), chi.URLParam(r, "cardID")); err != nil {
		log.WithError(err).Error("Erro ao remover cartão")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "card removed successfully",
	})
}

func (h *Handler) ReviewCard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var input ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para revisão")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Review(r.Context(), chi.URLParam(r, "cardID"), input)
	if err != nil {
		log.WithError(err).Error("Erro ao revisar cartão")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) ListDue(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	due, err := h.service.ListDue(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar cartões pendentes")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, due)
}
