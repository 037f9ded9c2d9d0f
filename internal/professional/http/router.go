package http

import (
	"net/http"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/common/logs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler, logger logs.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/health", h.Health)
	r.Get("/professionals", h.ListProfessionals)
	r.Get("/professionals/{phone}", h.GetProfessional)

	return r
}
