package page

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the blog generator page routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Index)
	r.Post("/prompt", h.EditPrompt)
	r.Post("/generate", h.Generate)

	r.Route("/credits", func(r chi.Router) {
		r.Post("/toggle", h.ToggleCredits)
		r.Post("/close", h.CloseCredits)
	})

	r.Get("/export/{format}", h.Export)
}
