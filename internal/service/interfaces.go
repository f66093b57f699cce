//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/mcp-manager/models"
)

// Store names accepted by [ConfigService.GetRawConfig].
const (
	StorePrimary   = "primary"
	StoreSecondary = "secondary"
	StoreDefaults  = "defaults"
)

type ConfigService interface {
	// GetMergedConfig returns the primary store merged over the defaults.
	GetMergedConfig(ctx context.Context) (models.ConfigDocument, error)
	// GetRawConfig returns the document of the named store as stored.
	GetRawConfig(ctx context.Context, store string) (models.ConfigDocument, error)
	// SaveConfig writes servers to the primary store and the enabled subset
	// to the secondary store.
	SaveConfig(ctx context.Context, servers models.ServerConfigSet) (models.SaveResult, error)
	// ListServers summarises the merged server set, sorted by name.
	ListServers(ctx context.Context) ([]models.ServerSummary, error)
}

type UpdateService interface {
	ScanForUpdates(ctx context.Context) (models.UpdatesReport, error)
}

type ToolService interface {
	ListTools(ctx context.Context) ([]models.Tool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthStatus
	Status(ctx context.Context) models.ServiceStatus
}
