package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ryuk156/backend-AOL/internal/handler"
	"github.com/ryuk156/backend-AOL/internal/jwt"
	"github.com/ryuk156/backend-AOL/internal/middleware"
	"github.com/ryuk156/backend-AOL/internal/middleware/metrics"
)

// New wires all routes. Registration routes are variant-specific because the
// teacher one takes a multipart body; everything else shares a {variant}
// segment.
func New(h *handler.Handler, jwtService jwt.JwtService, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/teacher/register", h.RegisterTeacher)
		r.Post("/volunteer/register", h.RegisterVolunteer)

		r.Post("/{variant}/login", h.Login)
		r.Get("/{variant}/confirmation/{email}/{token}", h.Confirmation)
		r.Get("/{variant}/resendlink", h.Resend)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(jwtService))
			r.Get("/me", h.Me)
		})
	})

	return r
}
