package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/agentdeck/agentdeck/console-gateway/internal/config"
	"github.com/agentdeck/agentdeck/console-gateway/internal/gateway"
	"github.com/agentdeck/agentdeck/console-gateway/internal/httpapi/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates the HTTP router serving the console API.
func NewRouter(cfg *config.Config, gw *gateway.Gateway) http.Handler {
	h := NewHandlers(gw)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(middleware.Logger)
	r.Use(middleware.Telemetry)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health & info
	r.Get("/health", healthHandler)
	r.Get("/version", versionHandler(cfg))

	// API v1 — the surface the console frontend consumes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/agents", func(r chi.Router) {
			r.Get("/", h.ListAgents)
			r.Post("/", h.CreateAgent)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetAgent)
				r.Put("/", h.UpdateAgent)
				r.Delete("/", h.DeleteAgent)
			})
		})

		r.Route("/plugins", func(r chi.Router) {
			r.Get("/", h.ListPlugins)
			r.Post("/", h.CreatePlugin)
			r.Post("/import-openapi", h.ImportPlugin)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetPlugin)
				r.Put("/", h.UpdatePlugin)
				r.Delete("/", h.DeletePlugin)
				r.Patch("/status", h.TogglePluginStatus)
				r.Post("/operations/{opId}/invoke", h.InvokePluginOperation)
			})
		})

		r.Route("/llm", func(r chi.Router) {
			r.Route("/models", func(r chi.Router) {
				r.Get("/", h.ListLlmModels)
				r.Post("/", h.CreateLlmModel)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.GetLlmModel)
					r.Put("/", h.UpdateLlmModel)
					r.Delete("/", h.DeleteLlmModel)
				})
			})
			r.Get("/providers", h.ListLlmProviders)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Post("/session", h.CreateChatSession)
			r.Get("/history/{sessionId}", h.GetChatHistory)
			r.Post("/message", h.SendChatMessage)
		})
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "console-gateway",
	})
}

func versionHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"version": cfg.Version,
			"service": "console-gateway",
		})
	}
}
