package question

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/estudai/estudai-api/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrQuestionNotFound):
		http.Error(w, "question not found", http.StatusNotFound)
	case errors.Is(err, ErrTopicNotFound):
		http.Error(w, "topic not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidDifficulty):
		http.Error(w, "invalid difficulty level", http.StatusBadRequest)
	case errors.Is(err, ErrCorrectNotOption):
		http.Error(w, "correct option must be one of the options", http.StatusBadRequest)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para criar questão")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := h.service.CreateQuestion(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao criar questão")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := h.service.GetQuestionByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	questions, err := h.service.ListByTopic(r.Context(), chi.URLParam(r, "topicId"))
	if err != nil {
		log.WithError(err).Error("Erro ao listar questões")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	q, err := h.service.UpdateQuestion(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao atualizar questão")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteQuestion(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.WithError(err).Error("Erro ao remover questão")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question deleted successfully",
	})
}
