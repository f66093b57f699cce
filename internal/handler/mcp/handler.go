// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mcp exposes the manager itself as a tool server over the
// streamable HTTP transport, so that an MCP client can list the configured
// servers and check them for updates.
package mcp

import (
	"context"
	"net/http"

	"github.com/MKhiriev/mcp-manager/internal/config"
	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/service"
	"github.com/MKhiriev/mcp-manager/internal/utils"
	"github.com/MKhiriev/mcp-manager/models"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names.
const (
	ToolListServers  = "list_servers"
	ToolCheckUpdates = "check_updates"
)

type Handler struct {
	services *service.Services
	server   *sdk.Server

	logger *logger.Logger
}

type listServersInput struct{}

type listServersOutput struct {
	Servers []models.ServerSummary `json:"servers" jsonschema:"configured servers sorted by name"`
}

type checkUpdatesInput struct{}

func NewHandler(services *service.Services, app config.App, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		server: sdk.NewServer(&sdk.Implementation{
			Name:    app.Name,
			Version: app.Version,
		}, nil),
		logger: logger,
	}

	sdk.AddTool(h.server, &sdk.Tool{
		Name:        ToolListServers,
		Description: "List the configured MCP servers with their enabled state and launch command",
	}, h.listServers)

	sdk.AddTool(h.server, &sdk.Tool{
		Name:        ToolCheckUpdates,
		Description: "Check every configured MCP server for a newer npm package version",
	}, h.checkUpdates)

	logger.Info().Str("name", app.Name).Msg("mcp handler created")
	return h
}

// Server returns the underlying tool server.
func (h *Handler) Server() *sdk.Server {
	return h.server
}

// HTTPHandler serves the tool server over streamable HTTP.
func (h *Handler) HTTPHandler() http.Handler {
	return sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return h.server
	}, nil)
}

func (h *Handler) listServers(ctx context.Context, req *sdk.CallToolRequest, _ listServersInput) (*sdk.CallToolResult, listServersOutput, error) {
	log := h.requestLogger(ctx)

	servers, err := h.services.ConfigService.ListServers(logger.ContextWith(ctx, log))
	if err != nil {
		log.Error().Err(err).Str("tool", ToolListServers).Msg("tool call failed")
		return nil, listServersOutput{}, err
	}

	log.Debug().Str("tool", ToolListServers).Int("servers", len(servers)).Msg("tool call served")
	return nil, listServersOutput{Servers: servers}, nil
}

func (h *Handler) checkUpdates(ctx context.Context, req *sdk.CallToolRequest, _ checkUpdatesInput) (*sdk.CallToolResult, models.UpdatesReport, error) {
	log := h.requestLogger(ctx)

	report, err := h.services.UpdateService.ScanForUpdates(logger.ContextWith(context.WithoutCancel(ctx), log))
	if err != nil {
		log.Error().Err(err).Str("tool", ToolCheckUpdates).Msg("tool call failed")
		return nil, models.UpdatesReport{}, err
	}

	log.Info().
		Str("tool", ToolCheckUpdates).
		Int("servers", report.TotalServers).
		Int("with_updates", report.ServersWithUpdates).
		Msg("tool call served")
	return nil, report, nil
}

// requestLogger returns the handler logger tagged with the trace id of the
// HTTP request the call arrived on, if any.
func (h *Handler) requestLogger(ctx context.Context) *logger.Logger {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		l := h.logger.With().Str("trace_id", traceID).Logger()
		return &logger.Logger{Logger: l}
	}
	return h.logger
}
