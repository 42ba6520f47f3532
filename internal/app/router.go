package app

import (
	"github.com/avc/shipexpress/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))

	setupRoutes(r, deps)

	return r
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	h := deps.handlers

	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	r.Group(func(r chi.Router) {
		if deps.rateLimiter != nil {
			r.Use(deps.rateLimiter.Middleware())
		}

		// Публичные эндпоинты
		r.Post("/api/user/register", h.auth.Register)
		r.Post("/api/user/login", h.auth.Login)
		r.Post("/api/quotes/compare", h.quotes.Compare)
		r.Get("/api/track/{trackingID}", h.shipments.Track)

		// Защищенные эндпоинты
		r.Group(func(r chi.Router) {
			r.Use(handlers.AuthMiddleware(deps.jwtManager))

			r.Post("/api/user/quotes", h.quotes.Quote)
			r.Delete("/api/user/quotes/current", h.quotes.Discard)

			r.Post("/api/user/shipments", h.shipments.Create)
			r.Get("/api/user/shipments", h.shipments.List)

			r.Get("/api/user/balance", h.wallet.GetBalance)
			r.Post("/api/user/balance/topup", h.wallet.TopUp)
			r.Get("/api/user/balance/history", h.wallet.GetHistory)
		})
	})
}
