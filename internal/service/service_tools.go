package service

import (
	"context"
	"maps"
	"slices"

	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/models"
)

// ManagerServerName is the configuration entry of this service itself.
const ManagerServerName = "mcp-manager"

// toolsByServer lists the tools offered by servers the manager knows about.
var toolsByServer = map[string][]models.Tool{
	ManagerServerName: {{
		Name:        "launch_manager",
		Description: "Launch the MCP Server Manager interface",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
			"required":   []string{},
		},
	}},
}

type toolService struct {
	configs ConfigService
	tools   map[string][]models.Tool

	logger *logger.Logger
}

func NewToolService(configs ConfigService, logger *logger.Logger) ToolService {
	return &toolService{configs: configs, tools: toolsByServer, logger: logger}
}

// ListTools returns the known tools of every configured and enabled server,
// each tagged with its server name.
func (t *toolService) ListTools(ctx context.Context) ([]models.Tool, error) {
	ctx = logger.ContextWith(ctx, t.logger)
	doc, err := t.configs.GetMergedConfig(ctx)
	if err != nil {
		return nil, err
	}

	tools := make([]models.Tool, 0)
	for _, server := range slices.Sorted(maps.Keys(t.tools)) {
		entry, ok := doc.MCPServers[server]
		if !ok || entry.Disabled() {
			continue
		}
		for _, tool := range t.tools[server] {
			tool.Server = server
			tools = append(tools, tool)
		}
	}

	logger.FromContext(ctx).Debug().Int("tools", len(tools)).Msg("tools listed")
	return tools, nil
}
