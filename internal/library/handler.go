package library

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/estudai/estudai-api/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service LibraryService
}

func NewHandler(s LibraryService) *Handler {
	return &Handler{service: s}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrBookNotFound):
		http.Error(w, "book not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidStatus):
		http.Error(w, "invalid book status", http.StatusBadRequest)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateBookDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para cadastrar livro")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.service.CreateBook(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao cadastrar livro")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, b)
}

func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetBookByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, b)
}

func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if moduleID := r.URL.Query().Get("module_id"); moduleID != "" {
		books, err := h.service.ListBooksByModule(r.Context(), moduleID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		config.JSON(w, http.StatusOK, books)
		return
	}

	books, err := h.service.ListBooks(r.Context())
	if err != nil {
		log.WithError(err).Error("Erro ao listar livros")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, books)
}

func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateBookDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.service.UpdateBook(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao atualizar livro")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, b)
}

func (h *Handler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteBook(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.WithError(err).Error("Erro ao remover livro")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "book deleted successfully",
	})
}
