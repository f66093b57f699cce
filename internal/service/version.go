package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/mcp-manager/internal/adapter"
	"github.com/MKhiriev/mcp-manager/internal/logger"
)

// maxWalkDepth is the number of directories inspected from the server script
// upwards when looking for an installed package.
const maxWalkDepth = 5

// versionResolver finds latest and installed versions of packages.
type versionResolver struct {
	registry adapter.Registry
	packages adapter.PackageManager
}

func newVersionResolver(registry adapter.Registry, packages adapter.PackageManager) *versionResolver {
	return &versionResolver{registry: registry, packages: packages}
}

// packageManifest is the part of package.json we read.
type packageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// LatestVersion returns the latest published version of name, or "" when the
// registry lookup fails for any reason.
func (v *versionResolver) LatestVersion(ctx context.Context, name string) string {
	version, err := v.registry.LatestVersion(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("package", name).Msg("latest version lookup failed")
		return ""
	}
	return strings.TrimSpace(version)
}

// CurrentVersion returns the installed version of name. It walks up from the
// directory of serverPath looking for the package's own package.json or a
// node_modules copy of it, then asks the package manager. It returns "" when
// nothing is found.
func (v *versionResolver) CurrentVersion(ctx context.Context, name, serverPath string) string {
	log := logger.FromContext(ctx)

	if serverPath != "" {
		dir := filepath.Dir(serverPath)
		for range maxWalkDepth {
			if m, ok := readManifest(filepath.Join(dir, "package.json")); ok && m.Name == name && m.Version != "" {
				return m.Version
			}
			if m, ok := readManifest(filepath.Join(dir, "node_modules", filepath.FromSlash(name), "package.json")); ok && m.Version != "" {
				return m.Version
			}

			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	version, err := v.packages.InstalledVersion(ctx, name, "")
	if err != nil {
		log.Debug().Err(err).Str("package", name).Str("path", serverPath).Msg("could not get installed version from package manager")
		return ""
	}
	return strings.TrimSpace(version)
}

func readManifest(path string) (packageManifest, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return packageManifest{}, false
	}

	var m packageManifest
	if err = json.Unmarshal(data, &m); err != nil {
		return packageManifest{}, false
	}
	return m, true
}

// IsNewer reports whether latest is a higher dotted version than current.
// Segments are compared numerically; missing or non-numeric segments count
// as 0, so pre-release suffixes are not ordered. Either side empty yields
// false.
func IsNewer(current, latest string) bool {
	if current == "" || latest == "" {
		return false
	}

	cur := strings.Split(current, ".")
	lat := strings.Split(latest, ".")

	for i := range max(len(cur), len(lat)) {
		c, l := segment(cur, i), segment(lat, i)
		if l > c {
			return true
		}
		if l < c {
			return false
		}
	}
	return false
}

func segment(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil {
		return 0
	}
	return n
}
