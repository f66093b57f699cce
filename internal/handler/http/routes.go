package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

const mcpPath = "/mcp"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/cursor-config", h.getMergedConfig)
		r.Get("/claude-config", h.getSecondaryConfig)
		r.Get("/config/{store}", h.getConfigByStore)
		r.Post("/save-configs", h.saveConfigs)
		r.Get("/server-updates", h.getServerUpdates)
		r.Get("/tools", h.getTools)
		r.Get("/version/", h.getServerVersion)

		r.NotFound(notFound)
		r.MethodNotAllowed(methodNotAllowed)
	})

	router.Get("/health", h.getHealth)
	router.Get("/status", h.getStatus)
	router.Handle("/metrics", promhttp.Handler())

	if h.mcp != nil {
		router.Handle(mcpPath, h.mcp)
		router.Handle(mcpPath+"/*", h.mcp)
	}

	// everything else is the web UI
	router.With(withGZip).NotFound(h.serveStatic)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Content-Encoding", traceIDHeader, "Mcp-Session-Id"},
		ExposedHeaders: []string{traceIDHeader, "Mcp-Session-Id"},
	}).Handler
}
