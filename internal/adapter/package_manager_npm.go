package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/mcp-manager/internal/config"
	"github.com/MKhiriev/mcp-manager/internal/logger"
)

type npmPackageManager struct {
	binary  string
	timeout time.Duration
	run     commandRunner
	logger  *logger.Logger
}

// npmListOutput is the part of `npm list --json` we read.
type npmListOutput struct {
	Dependencies map[string]struct {
		Version string `json:"version"`
	} `json:"dependencies"`
}

// NewNPMPackageManager constructs a [PackageManager] that runs
// `npm list <name> --depth=0 --json`, bounded by cfg.PackageManagerTimeout.
func NewNPMPackageManager(cfg config.Adapter, logger *logger.Logger) PackageManager {
	return &npmPackageManager{
		binary:  cfg.NPMBinary,
		timeout: cfg.PackageManagerTimeout,
		run:     runCommand,
		logger:  logger,
	}
}

// InstalledVersion implements [PackageManager].
func (n *npmPackageManager) InstalledVersion(ctx context.Context, name, workDir string) (string, error) {
	if _, err := escapePackageName(name); err != nil {
		return "", err
	}

	out, err := runWithTimeout(ctx, n.run, n.timeout, workDir, n.binary, "list", name, "--depth=0", "--json")
	if err != nil {
		logger.FromContextOr(ctx, n.logger).Debug().
			Err(err).
			Str("package", name).
			Str("path", workDir).
			Msg("npm list failed")
		return "", err
	}

	var list npmListOutput
	if err = json.Unmarshal(out, &list); err != nil {
		return "", fmt.Errorf("decode npm list output for %s: %w", name, err)
	}

	dep, ok := list.Dependencies[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrPackageNotFound, name)
	}
	version := strings.TrimSpace(dep.Version)
	if version == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyVersion, name)
	}
	return version, nil
}
