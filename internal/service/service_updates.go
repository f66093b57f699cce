package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mcp-manager/internal/adapter"
	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/metrics"
	"github.com/MKhiriev/mcp-manager/models"
	"golang.org/x/sync/errgroup"
)

type updateService struct {
	configs     ConfigService
	resolver    *versionResolver
	concurrency int

	logger *logger.Logger
}

// NewUpdateService constructs an [UpdateService] that checks at most
// concurrency servers at the same time. A concurrency below 1 means one.
func NewUpdateService(configs ConfigService, registry adapter.Registry, packages adapter.PackageManager, concurrency int, logger *logger.Logger) UpdateService {
	return &updateService{
		configs:     configs,
		resolver:    newVersionResolver(registry, packages),
		concurrency: max(concurrency, 1),
		logger:      logger,
	}
}

// serverResult is the outcome of one server check, written to its own slot.
type serverResult struct {
	name string
	info models.UpdateInfo
}

// ScanForUpdates checks every server of the merged configuration. Servers are
// checked concurrently; the report is assembled after all checks finished.
func (u *updateService) ScanForUpdates(ctx context.Context) (models.UpdatesReport, error) {
	ctx = logger.ContextWith(ctx, u.logger)
	log := logger.FromContext(ctx)

	doc, err := u.configs.GetMergedConfig(ctx)
	if err != nil {
		return models.UpdatesReport{}, err
	}

	servers := doc.MCPServers
	names := servers.Names()
	results := make([]serverResult, len(names))

	var g errgroup.Group
	g.SetLimit(u.concurrency)
	for i, name := range names {
		entry := servers[name]
		g.Go(func() error {
			results[i] = serverResult{name: name, info: u.checkServer(ctx, name, entry)}
			return nil
		})
	}
	_ = g.Wait() // checks never return errors

	report := models.UpdatesReport{
		Success:      true,
		Updates:      make(map[string]models.UpdateInfo, len(results)),
		TotalServers: len(servers),
	}
	for _, r := range results {
		report.Updates[r.name] = r.info
		if r.info.HasUpdate {
			report.ServersWithUpdates++
		}
	}

	metrics.RecordScan(report.ServersWithUpdates)
	log.Info().
		Int("servers", report.TotalServers).
		Int("with_updates", report.ServersWithUpdates).
		Msg("update scan finished")

	return report, nil
}

// checkServer runs the update check for one server. A panic is turned into
// an error outcome for this server only.
func (u *updateService) checkServer(ctx context.Context, name string, entry models.ServerEntry) (info models.UpdateInfo) {
	log := logger.FromContext(ctx).With().Str("server", name).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("update check failed")
			info = models.UpdateInfo{Reason: fmt.Sprintf("%s%v", models.ReasonErrorPrefix, r)}
		}
	}()

	serverPath := entry.ServerPath()
	identity := ResolveIdentity(serverPath, entry)
	if identity == nil {
		log.Debug().Str("path", serverPath).Msg("unable to determine package name")
		return models.UpdateInfo{Reason: models.ReasonNoIdentity}
	}

	ctx = log.WithContext(ctx)
	packageName := identity.Name
	latest := u.resolver.LatestVersion(ctx, packageName)
	if latest == "" && !identity.Explicit {
		if match := u.resolver.FindByVariation(ctx, packageName, serverPath); match != nil {
			packageName, latest = match.PackageName, match.Version
		}
	}

	var current string
	if latest != "" {
		current = u.resolver.CurrentVersion(ctx, packageName, serverPath)
	}

	hasUpdate := IsNewer(current, latest)
	info = models.UpdateInfo{
		HasUpdate:      hasUpdate,
		PackageName:    models.NullableString(packageName),
		CurrentVersion: models.NullableString(current),
		LatestVersion:  models.NullableString(latest),
		Reason:         updateReason(current, latest, hasUpdate),
	}

	log.Debug().
		Str("package", packageName).
		Str("current", current).
		Str("latest", latest).
		Bool("has_update", hasUpdate).
		Msg("update check done")
	return info
}

func updateReason(current, latest string, hasUpdate bool) string {
	switch {
	case current == "":
		return models.ReasonNoCurrent
	case latest == "":
		return models.ReasonNoLatest
	case hasUpdate:
		return models.ReasonUpdateAvailable
	default:
		return models.ReasonUpToDate
	}
}
