package http

import (
	"net/http"

	"github.com/MKhiriev/mcp-manager/internal/config"
	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/service"
)

type Handler struct {
	services *service.Services

	staticDir      string
	allowedOrigins []string

	// mcp serves the tool endpoint. Nil when the endpoint is disabled.
	mcp http.Handler

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, mcp http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Bool("mcp", mcp != nil).Msg("http handler created")
	return &Handler{
		services:       services,
		staticDir:      cfg.StaticDir,
		allowedOrigins: cfg.AllowedOrigins,
		mcp:            mcp,
		logger:         logger,
	}
}
