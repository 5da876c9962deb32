package module

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/estudai/estudai-api/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service ModuleService
}

func NewHandler(s ModuleService) *Handler {
	return &Handler{service: s}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrModuleNotFound):
		http.Error(w, "module not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid module id", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidStatus):
		http.Error(w, "invalid module status", http.StatusBadRequest)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) CreateModule(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateModuleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para criar módulo")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.service.CreateModule(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao criar módulo")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, m)
}

func (h *Handler) GetModule(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.GetModuleByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, m)
}

func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	modules, err := h.service.ListModules(r.Context())
	if err != nil {
		log.WithError(err).Error("Erro ao listar módulos")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, modules)
}

func (h *Handler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateModuleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.service.UpdateModule(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao atualizar módulo")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, m)
}

func (h *Handler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteModule(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.WithError(err).Error("Erro ao remover módulo")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "module deleted successfully",
	})
}
