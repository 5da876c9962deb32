package flashcard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateDeck)
	r.Get("/", h.ListDecks)
	r.Get("/due", h.ListDue)
	r.Get("/{id}", h.GetDeck)
	r.Patch("/{id}", h.UpdateDeck)
	r.Delete("/{id}", h.DeleteDeck)
	r.Post("/{id}/cards", h.AddCard)
	r.Patch("/cards/{cardID}", h.UpdateCard)
	r.Delete("/cards/{cardID}", h.RemoveCard)
	r.Post("/cards/{cardID}/review", h.ReviewCard)

	return r
}
