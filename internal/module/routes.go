package module

import (
	"net/http"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/user"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListModules)
	r.Get("/{id}", h.GetModule)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRoles(string(user.RoleAdmin), string(user.RoleTeacher)))

		r.Post("/", h.CreateModule)
		r.Patch("/{id}", h.UpdateModule)
		r.Delete("/{id}", h.DeleteModule)
	})

	return r
}
