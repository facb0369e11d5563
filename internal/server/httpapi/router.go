// Package httpapi exposes the server over HTTP/JSON: the auth endpoints,
// the protected workout endpoints, and the operational surface (/metrics).
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wodtracker/internal/logging"
	"wodtracker/internal/server/metrics"
)

// RouterDeps bundles everything NewRouter needs.
type RouterDeps struct {
	UserService    UserService
	WorkoutService WorkoutService
	JWTSecret      []byte
	AuthLimiter    *RateLimiter
	Collector      *metrics.Collector
	Registry       *prometheus.Registry
	Logger         logging.Logger
}

// NewRouter wires all endpoints and the middleware chain.
//
// Middleware order: Recovery → Logging; the auth endpoints additionally sit
// behind the rate limiter, the workout endpoints behind bearer auth.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(NewRecoveryMiddleware(deps.Logger))
	r.Use(NewLoggingMiddleware(deps.Logger, deps.Collector))

	authHandler := NewAuthHandler(deps.UserService, deps.Collector, deps.Logger)
	workoutHandler := NewWorkoutHandler(deps.WorkoutService, deps.Logger)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("WOD Tracker API running"))
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(deps.AuthLimiter.Middleware())
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(NewAuthMiddleware(deps.JWTSecret))

		r.Route("/workouts", func(r chi.Router) {
			r.Get("/", workoutHandler.List)
			r.Post("/", workoutHandler.Create)
			r.Get("/{id}", workoutHandler.Get)
		})
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	return r
}
