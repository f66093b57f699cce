package service

import (
	"fmt"

	"github.com/MKhiriev/mcp-manager/internal/adapter"
	"github.com/MKhiriev/mcp-manager/internal/config"
	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/store"
)

type Services struct {
	ConfigService  ConfigService
	UpdateService  UpdateService
	ToolService    ToolService
	AppInfoService AppInfoService
}

// Adapters groups the outbound dependencies of the service layer.
type Adapters struct {
	Registry       adapter.Registry
	PackageManager adapter.PackageManager
}

func NewServices(storages *store.Storages, adapters Adapters, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, cfg.Server, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	configs := NewConfigService(storages, logger)

	return &Services{
		ConfigService:  configs,
		UpdateService:  NewUpdateService(configs, adapters.Registry, adapters.PackageManager, cfg.Workers.ScanConcurrency, logger),
		ToolService:    NewToolService(configs, logger),
		AppInfoService: appInfo,
	}, nil
}
