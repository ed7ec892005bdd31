package blog

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers blog API routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/v1/blogs", func(r chi.Router) {
		r.Post("/", h.GenerateBlog)
	})
}
