package api

import (
	"net/http"
	"time"

	blogapi "github.com/futig/blog-generator/internal/api/blog"
	"github.com/futig/blog-generator/internal/api/docs"
	"github.com/futig/blog-generator/internal/api/middleware"
	"github.com/futig/blog-generator/internal/api/page"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(pageHandler *page.Handler, blogHandler *blogapi.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)   // Recover from panics
	r.Use(chimiddleware.RequestID)   // Add request ID
	r.Use(middleware.Logger(logger)) // Log requests

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Page and docs requests never wait on generation
	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.Timeout(60 * time.Second))
		docs.RegisterRoutes(r)
		page.RegisterRoutes(r, pageHandler)
	})

	// The JSON API holds the request open until generation returns
	r.Group(func(r chi.Router) {
		r.Use(middleware.CORS)
		blogapi.RegisterRoutes(r, blogHandler)
	})

	return r
}
