package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/auth"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/rateLimit"
)

func SetupRouter(h *Handlers, authn *auth.Authenticator, logger observability.Logger, rl *rateLimit.RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(LoggerMiddleware(logger))
	r.Use(MetricsMiddleware)
	r.Use(TracingMiddleware)

	r.Post("/v1/auth/login", h.Login)
	r.Get("/v1/healthz", h.Healthz)
	r.Get("/v1/readyz", h.Readyz)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(authn))
		r.Use(RateLimitMiddleware(rl))

		r.Route("/v1/visitors", func(r chi.Router) {
			r.Get("/", h.ListVisitors)
			r.Post("/", h.CreateVisitor)
			r.Get("/{id}", h.GetVisitor)
			r.Put("/{id}", h.UpdateVisitor)
			r.Delete("/{id}", h.DeleteVisitor)
		})

		r.Route("/v1/events", func(r chi.Router) {
			r.Get("/", h.ListEvents)
			r.Post("/", h.CreateEvent)
			r.Get("/{id}", h.GetEvent)
			r.Put("/{id}", h.UpdateEvent)
			r.Delete("/{id}", h.DeleteEvent)
		})

		r.Route("/v1/attractions", func(r chi.Router) {
			r.Get("/", h.ListAttractions)
			r.Post("/", h.CreateAttraction)
			r.Get("/{id}", h.GetAttraction)
			r.Put("/{id}", h.UpdateAttraction)
			r.Delete("/{id}", h.DeleteAttraction)
		})

		r.Route("/v1/bookings", func(r chi.Router) {
			r.Get("/", h.ListBookings)
			r.With(IdempotencyKeyMiddleware).Post("/", h.CreateBooking)
			r.Get("/{id}", h.GetBooking)
			r.Put("/{id}", h.UpdateBooking)
			r.Delete("/{id}", h.DeleteBooking)
		})

		r.Route("/v1/analytics", func(r chi.Router) {
			r.Get("/summary", h.AnalyticsSummary)
			r.Get("/popular-events", h.AnalyticsPopularEvents)
			r.Get("/top-cities", h.AnalyticsTopCities)
			r.Get("/top-interests", h.AnalyticsTopInterests)
		})
	})

	return r
}
