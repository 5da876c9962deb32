package exam

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/estudai/estudai-api/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service ExamService
}

func NewHandler(s ExamService) *Handler {
	return &Handler{service: s}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrExamNotFound):
		http.Error(w, "exam not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidStatus):
		http.Error(w, "invalid exam status", http.StatusBadRequest)
	case errors.Is(err, ErrUnknownQuestion):
		http.Error(w, "exam references an unknown question", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) CreateExam(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateExamDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para criar simulado")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.service.CreateExam(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao criar simulado")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, e)
}

func (h *Handler) GetExam(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.GetExamByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, e)
}

func (h *Handler) ListExams(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	exams, err := h.service.ListExams(r.Context())
	if err != nil {
		log.WithError(err).Error("Erro ao listar simulados")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, exams)
}

func (h *Handler) UpdateExam(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateExamDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	e, err := h.service.UpdateExam(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao atualizar simulado")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, e)
}

func (h *Handler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteExam(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.WithError(err).Error("Erro ao remover simulado")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "exam deleted successfully",
	})
}
