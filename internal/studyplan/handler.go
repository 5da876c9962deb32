package studyplan

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/estudai/estudai-api/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service PlanService
}

func NewHandler(s PlanService) *Handler {
	return &Handler{service: s}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPlanNotFound):
		http.Error(w, "study plan not found", http.StatusNotFound)
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "plan session not found", http.StatusNotFound)
	case errors.Is(err, ErrQuestionNotInSession):
		http.Error(w, "question is not part of this session", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidDate):
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidWeekday):
		http.Error(w, "invalid weekday abbreviation", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidStatus):
		http.Error(w, "invalid status", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidTransition):
		http.Error(w, "session status cannot move backwards", http.StatusConflict)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreatePlanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para criar plano")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.service.CreatePlan(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao criar plano de estudos")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, plan)
}

func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.service.GetPlanByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, plan)
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	plans, err := h.service.ListPlans(r.Context())
	if err != nil {
		log.WithError(err).Error("Erro ao listar planos de estudos")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, plans)
}

func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdatePlanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.service.UpdatePlan(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao atualizar plano de estudos")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, plan)
}

func (h *Handler) GenerateSessions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	result, err := h.service.GenerateSessions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.WithError(err).Error("Erro ao gerar sessões do plano")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, result)
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.ListSessions(
		r.Context(),
		chi.URLParam(r, "id"),
		r.URL.Query().Get("from"),
		r.URL.Query().Get("to"),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, sessions)
}

func (h *Handler) PlanProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.PlanProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, progress)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, session)
}

func (h *Handler) ListSessionQuestions(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListSessionQuestions(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, entries)
}

func (h *Handler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto AnswerQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.AnswerQuestion(r.Context(), chi.URLParam(r, "sessionID"), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao registrar resposta")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateSessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := config.Validate(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.service.UpdateSession(r.Context(), chi.URLParam(r, "sessionID"), dto)
	if err != nil {
		log.WithError(err).Error("Erro ao atualizar sessão")
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, session)
}

func (h *Handler) SessionProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.SessionProgress(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, progress)
}
