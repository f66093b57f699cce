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

type npmRegistry struct {
	binary  string
	timeout time.Duration
	run     commandRunner
	logger  *logger.Logger
}

// NewNPMRegistry constructs a [Registry] that asks the npm CLI
// (`npm view <name> version --json`). Each call is bounded by
// cfg.RegistryTimeout.
func NewNPMRegistry(cfg config.Adapter, logger *logger.Logger) Registry {
	return &npmRegistry{
		binary:  cfg.NPMBinary,
		timeout: cfg.RegistryTimeout,
		run:     runCommand,
		logger:  logger,
	}
}

// LatestVersion implements [Registry].
func (n *npmRegistry) LatestVersion(ctx context.Context, name string) (string, error) {
	if _, err := escapePackageName(name); err != nil {
		return "", err
	}

	out, err := runWithTimeout(ctx, n.run, n.timeout, "", n.binary, "view", name, "version", "--json")
	if err != nil {
		logger.FromContextOr(ctx, n.logger).Debug().Err(err).Str("package", name).Msg("npm view failed")
		if strings.Contains(err.Error(), "E404") {
			return "", fmt.Errorf("%w: %s", ErrPackageNotFound, name)
		}
		return "", err
	}

	version := parseViewOutput(out)
	if version == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyVersion, name)
	}
	return version, nil
}

// parseViewOutput reads the version printed by `npm view --json`: a JSON
// string, or a list of strings when several versions match, in which case the
// last one is the newest.
func parseViewOutput(out []byte) string {
	out = []byte(strings.TrimSpace(string(out)))
	if len(out) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(out, &single); err == nil {
		return strings.TrimSpace(single)
	}

	var many []string
	if err := json.Unmarshal(out, &many); err == nil {
		if len(many) == 0 {
			return ""
		}
		return strings.TrimSpace(many[len(many)-1])
	}

	return strings.Trim(string(out), "\"")
}

// NewRegistry builds the [Registry] selected by cfg.RegistryMode.
func NewRegistry(cfg config.Adapter, logger *logger.Logger) (Registry, error) {
	switch cfg.RegistryMode {
	case config.RegistryModeHTTP, "":
		return NewHTTPRegistry(cfg, logger)
	case config.RegistryModeNPM:
		return NewNPMRegistry(cfg, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegistryMode, cfg.RegistryMode)
	}
}
