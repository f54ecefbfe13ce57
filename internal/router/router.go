package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/threadline-dev/threadline/internal/middleware/metrics"
	"github.com/threadline-dev/threadline/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		r.Route("/threads", func(r chi.Router) {
			// Anyone may read a thread, posting requires a token.
			r.Get("/{threadId}", h.GetThread)

			r.Group(func(r chi.Router) {
				r.Use(authMw.NeedAuth())

				r.Post("/", h.CreateThread)
				r.Route("/{threadId}/comments", func(r chi.Router) {
					r.Post("/", h.CreateComment)
					r.Delete("/{commentId}", h.DeleteComment)
					r.Put("/{commentId}/likes", h.ToggleLike)
					r.Route("/{commentId}/replies", func(r chi.Router) {
						r.Post("/", h.CreateReply)
						r.Delete("/{replyId}", h.DeleteReply)
					})
				})
			})
		})
	})

	return r
}
