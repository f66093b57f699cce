package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/mcp-manager/internal/config"
	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/utils"
)

const retryWaitTime = 200 * time.Millisecond

type httpRegistry struct {
	client  *utils.HTTPClient
	timeout time.Duration
	logger  *logger.Logger
}

// registryManifest is the part of a registry "latest" document we read.
type registryManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// NewHTTPRegistry constructs a [Registry] that reads
// GET <RegistryURL>/<name>/latest from an npm-compatible registry.
//
// Transient failures (transport errors and 5xx answers) are retried
// cfg.RetryCount times. cfg.RegistryTimeout bounds a whole lookup, retries
// included, and timeouts are not retried. Returns an error if
// cfg.RegistryURL cannot be parsed.
func NewHTTPRegistry(cfg config.Adapter, logger *logger.Logger) (Registry, error) {
	baseURL, err := normalizeBaseURL(cfg.RegistryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry url: %w", err)
	}

	client := utils.NewHTTPClient().WithLogger(logger).WithRetries(cfg.RetryCount, retryWaitTime)
	client.SetBaseURL(baseURL)

	return &httpRegistry{client: client, timeout: cfg.RegistryTimeout, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// LatestVersion implements [Registry].
func (h *httpRegistry) LatestVersion(ctx context.Context, name string) (string, error) {
	escaped, err := escapePackageName(name)
	if err != nil {
		return "", err
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetRawPathParam("name", escaped).
		Get("/{name}/latest")
	if err != nil {
		logger.FromContextOr(ctx, h.logger).Debug().Err(err).Str("package", name).Msg("registry request failed")
		return "", fmt.Errorf("latest version request for %s: %w", name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContextOr(ctx, h.logger).Debug().
			Int("status", resp.StatusCode()).
			Str("package", name).
			Msg("registry answered with an error status")
		return "", err
	}

	var manifest registryManifest
	if err = json.Unmarshal(resp.Body(), &manifest); err != nil {
		return "", fmt.Errorf("decode registry response for %s: %w", name, err)
	}

	version := strings.TrimSpace(manifest.Version)
	if version == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyVersion, name)
	}
	return version, nil
}

// escapePackageName turns a package name into a single path segment. Scoped
// names keep their "@" and have the scope separator encoded, the form the
// npm registry expects ("@scope%2Fname").
func escapePackageName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t\r\n") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPackageName, name)
	}

	if scope, pkg, ok := strings.Cut(name, "/"); ok {
		if !strings.HasPrefix(scope, "@") || len(scope) == 1 || pkg == "" || strings.Contains(pkg, "/") {
			return "", fmt.Errorf("%w: %q", ErrInvalidPackageName, name)
		}
		return "@" + url.PathEscape(scope[1:]) + "%2F" + url.PathEscape(pkg), nil
	}

	return url.PathEscape(name), nil
}
