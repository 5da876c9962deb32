package question

import (
	"net/http"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/user"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{id}", h.GetQuestion)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRoles(string(user.RoleAdmin), string(user.RoleTeacher)))

		r.Post("/", h.CreateQuestion)
		r.Patch("/{id}", h.UpdateQuestion)
		r.Delete("/{id}", h.DeleteQuestion)
	})

	return r
}
