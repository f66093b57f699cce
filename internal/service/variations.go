package service

import (
	"context"
	"iter"
	"regexp"
	"strings"

	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/models"
)

// Organisations that commonly publish MCP servers under their scope.
var knownScopes = []string{"@modelcontextprotocol", "@anthropic", "@benborla29"}

var (
	serverPrefixPattern = regexp.MustCompile(`(?i)^mcp-?server-?`)
	buildDirPattern     = regexp.MustCompile(`/([^/]+)/(?:dist|build|src)/`)
)

// packageNameCandidates yields plausible package names for baseName in
// probing order, each at most once. baseName itself is not yielded: the
// caller looked it up before falling back.
func packageNameCandidates(baseName, serverPath string) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := map[string]struct{}{baseName: {}}
		emit := func(name string) bool {
			if name == "" {
				return true
			}
			if _, ok := seen[name]; ok {
				return true
			}
			seen[name] = struct{}{}
			return yield(name)
		}

		trimmed := serverPrefixPattern.ReplaceAllString(baseName, "")
		names := []string{
			knownScopes[0] + "/server-" + trimmed,
			knownScopes[1] + "/mcp-server-" + trimmed,
			knownScopes[2] + "/mcp-server-" + trimmed,
			"mcp-server-" + trimmed,
			strings.ReplaceAll(baseName, "_", "-"),
		}
		for _, name := range names {
			if !emit(name) {
				return
			}
		}

		m := buildDirPattern.FindStringSubmatch(strings.ReplaceAll(serverPath, `\`, "/"))
		if m == nil || m[1] == baseName {
			return
		}

		dir := m[1]
		hyphenated := strings.ReplaceAll(dir, "_", "-")
		dirNames := make([]string, 0, 2*len(knownScopes)+2)
		dirNames = append(dirNames, dir)
		for _, scope := range knownScopes {
			dirNames = append(dirNames, scope+"/"+dir)
		}
		dirNames = append(dirNames, hyphenated)
		for _, scope := range knownScopes {
			dirNames = append(dirNames, scope+"/"+hyphenated)
		}

		for _, name := range dirNames {
			if !emit(name) {
				return
			}
		}
	}
}

// FindByVariation probes the alternate spellings of baseName in order and
// returns the first one the registry knows, or nil. baseName itself is not
// probed again. Later candidates are not probed once one resolved.
func (v *versionResolver) FindByVariation(ctx context.Context, baseName, serverPath string) *models.PackageMatch {
	log := logger.FromContext(ctx)

	for name := range packageNameCandidates(baseName, serverPath) {
		version := v.LatestVersion(ctx, name)
		if version == "" {
			continue
		}

		log.Info().
			Str("base", baseName).
			Str("package", name).
			Str("version", version).
			Msg("package resolved by name variation")
		return &models.PackageMatch{PackageName: name, Version: version}
	}

	log.Debug().Str("base", baseName).Msg("no package name variation resolved")
	return nil
}
