package handler

import (
	"net/http"

	"github.com/MKhiriev/mcp-manager/internal/config"
	myHTTP "github.com/MKhiriev/mcp-manager/internal/handler/http"
	"github.com/MKhiriev/mcp-manager/internal/handler/mcp"
	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/service"
)

type Handlers struct {
	HTTP *myHTTP.Handler
	MCP  *mcp.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{}

	var mcpHTTP http.Handler
	if !cfg.Server.DisableMCP {
		handlers.MCP = mcp.NewHandler(services, cfg.App, logger)
		mcpHTTP = handlers.MCP.HTTPHandler()
	}
	handlers.HTTP = myHTTP.NewHandler(services, cfg.Server, mcpHTTP, logger)

	return handlers, nil
}
