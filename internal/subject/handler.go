package subject

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/estudai/estudai-api/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service SubjectService
}

func NewHandler(s SubjectService) *Handler {
	return &Handler{service: s}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSubjectNotFound):
		http.Error(w, "subject not found", http.StatusNotFound)
	case errors.Is(err, ErrModuleNotFound):
		http.Error(w, "module not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateSubjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	subj, err := h.service.CreateSubject(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao criar subject")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, subj)
}

func (h *Handler) GetSubject(w http.ResponseWriter, r *http.Request) {
	subj, err := h.service.GetSubjectByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, subj)
}

func (h *Handler) ListByModule(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	subjects, err := h.service.ListByModule(r.Context(), chi.URLParam(r, "moduleId"))
	if err != nil {
		log.WithError(err).Error("Erro ao listar subjects")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, subjects)
}

func (h *Handler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateSubjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	subj, err := h.service.UpdateSubject(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao atualizar subject")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, subj)
}

func (h *Handler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteSubject(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.WithError(err).Error("Erro ao remover subject")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "subject deleted successfully",
	})
}
