package library

import (
	"net/http"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/user"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListBooks)
	r.Get("/{id}", h.GetBook)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRoles(string(user.RoleAdmin), string(user.RoleTeacher)))

		r.Post("/", h.CreateBook)
		r.Patch("/{id}", h.UpdateBook)
		r.Delete("/{id}", h.DeleteBook)
	})

	return r
}
