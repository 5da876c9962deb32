package topic

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/estudai/estudai-api/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service TopicService
}

func NewHandler(s TopicService) *Handler {
	return &Handler{service: s}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrTopicNotFound):
		http.Error(w, "topic not found", http.StatusNotFound)
	case errors.Is(err, ErrSubjectNotFound):
		http.Error(w, "subject not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidStatus):
		http.Error(w, "invalid topic status", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateTopicDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.service.CreateTopic(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao criar tópico")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, t)
}

func (h *Handler) GetTopic(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetTopicByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) ListBySubject(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	topics, err := h.service.ListBySubject(r.Context(), chi.URLParam(r, "subjectId"))
	if err != nil {
		log.WithError(err).Error("Erro ao listar tópicos")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, topics)
}

func (h *Handler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateTopicDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.UpdateTopic(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao atualizar tópico")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteTopic(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.WithError(err).Error("Erro ao remover tópico")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "topic deleted successfully",
	})
}
