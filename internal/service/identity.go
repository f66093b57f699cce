package service

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/mcp-manager/models"
)

const npxCommand = "npx"

var (
	scopedPathPattern      = regexp.MustCompile(`@([^/]+)/([^/]+)`)
	nodeModulesPathPattern = regexp.MustCompile(`node_modules/([^/@][^/]+)`)
	mcpDirPathPattern      = regexp.MustCompile(`(?i)([^/]*mcp[^/]*)/`)
)

// ResolveIdentity guesses the npm package behind a server entry. The first
// rule that matches wins:
//  1. an explicit npmPackage field;
//  2. for npx commands, the first argument that is not a flag;
//  3. a package name found in serverPath (scoped segment, node_modules
//     segment, then a directory containing "mcp").
//
// It returns nil when no rule matches.
func ResolveIdentity(serverPath string, entry models.ServerEntry) *models.PackageIdentity {
	if serverPath == "" && entry == nil {
		return nil
	}

	if name := entry.NPMPackage(); name != "" {
		return &models.PackageIdentity{
			Name:     name,
			IsScoped: strings.HasPrefix(name, "@"),
			Explicit: true,
		}
	}

	if entry.Command() == npxCommand {
		for _, arg := range entry.Args() {
			if arg == "" || strings.HasPrefix(arg, "-") || arg == npxCommand {
				continue
			}
			return &models.PackageIdentity{Name: arg, IsScoped: strings.HasPrefix(arg, "@")}
		}
	}

	return identityFromPath(serverPath)
}

func identityFromPath(serverPath string) *models.PackageIdentity {
	if serverPath == "" {
		return nil
	}
	p := strings.ReplaceAll(serverPath, `\`, "/")

	if m := scopedPathPattern.FindStringSubmatch(p); m != nil {
		return &models.PackageIdentity{Name: "@" + m[1] + "/" + m[2], IsScoped: true}
	}
	if m := nodeModulesPathPattern.FindStringSubmatch(p); m != nil {
		return &models.PackageIdentity{Name: m[1]}
	}
	if m := mcpDirPathPattern.FindStringSubmatch(p); m != nil {
		return &models.PackageIdentity{Name: m[1]}
	}
	return nil
}
