package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"apnadost/backend/internal/auth"
	"apnadost/backend/internal/observability"
)

// NewRouter creates and configures the chi router with all routes.
func NewRouter(chatHandler *ChatHandler, verifier auth.Verifier, metrics *observability.Metrics) *chi.Mux {
	r := chi.NewRouter()

	// --- Global middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Permissive CORS, matching the deployed frontend setup. Tighten
	// AllowedOrigins to the real frontend URL in production.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// --- Public routes ---
	r.Get("/", chatHandler.Root)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Method(http.MethodGet, "/metrics", observability.MetricsHandler())

	// --- Authenticated API routes ---
	r.Route("/api", func(r chi.Router) {
		// The outer timeout sits above the generation client's own 60s
		// bound so the client timeout, not the router, decides the error.
		r.Use(middleware.Timeout(90 * time.Second))
		r.Use(requireAuth(verifier, metrics))

		r.Post("/chat", chatHandler.HandleChat)
	})

	return r
}
