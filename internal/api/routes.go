package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates the dispatch router binding the four operations.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(middleware.Recoverer)

	// Refresh copies the whole library file; allow a small burst, then
	// one refresh per second.
	refreshLimiter := NewRefreshRateLimiter(5, time.Second)

	r.Get("/health", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/papers", h.ListPapers)
		r.Get("/papers/search", h.SearchPapers)
		r.Get("/papers/text", h.ReadPaper)
		r.With(refreshLimiter.Middleware).Post("/backup/refresh", h.RefreshBackup)
	})

	return r
}
