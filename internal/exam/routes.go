package exam

import (
	"net/http"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/user"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListExams)
	r.Get("/{id}", h.GetExam)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRoles(string(user.RoleAdmin), string(user.RoleTeacher)))

		r.Post("/", h.CreateExam)
		r.Patch("/{id}", h.UpdateExam)
		r.Delete("/{id}", h.DeleteExam)
	})

	return r
}
