package adapter

import (
	"context"

	"github.com/MKhiriev/mcp-manager/internal/metrics"
)

// Sources recorded in the lookups metric.
const (
	SourceRegistry       = "registry"
	SourcePackageManager = "package_manager"
)

type instrumentedRegistry struct {
	next Registry
}

// NewInstrumentedRegistry wraps next so every lookup is counted in
// [metrics.RegistryLookupsTotal].
func NewInstrumentedRegistry(next Registry) Registry {
	return &instrumentedRegistry{next: next}
}

func (i *instrumentedRegistry) LatestVersion(ctx context.Context, name string) (string, error) {
	version, err := i.next.LatestVersion(ctx, name)
	metrics.RegistryLookupsTotal.WithLabelValues(SourceRegistry, metrics.LookupResult(version, err)).Inc()
	return version, err
}

type instrumentedPackageManager struct {
	next PackageManager
}

// NewInstrumentedPackageManager wraps next so every query is counted in
// [metrics.RegistryLookupsTotal].
func NewInstrumentedPackageManager(next PackageManager) PackageManager {
	return &instrumentedPackageManager{next: next}
}

func (i *instrumentedPackageManager) InstalledVersion(ctx context.Context, name, workDir string) (string, error) {
	version, err := i.next.InstalledVersion(ctx, name, workDir)
	metrics.RegistryLookupsTotal.WithLabelValues(SourcePackageManager, metrics.LookupResult(version, err)).Inc()
	return version, err
}
