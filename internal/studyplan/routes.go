package studyplan

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreatePlan)
	r.Get("/", h.ListPlans)
	r.Get("/{id}", h.GetPlan)
	r.Patch("/{id}", h.UpdatePlan)
	r.Post("/{id}/generate-sessions", h.GenerateSessions)
	r.Get("/{id}/sessions", h.ListSessions)
	r.Get("/{id}/progress", h.PlanProgress)

	r.Get("/sessions/{sessionID}", h.GetSession)
	r.Patch("/sessions/{sessionID}", h.UpdateSession)
	r.Get("/sessions/{sessionID}/questions", h.ListSessionQuestions)
	r.Post("/sessions/{sessionID}/answers", h.AnswerQuestion)
	r.Get("/sessions/{sessionID}/progress", h.SessionProgress)

	return r
}
