package service

import (
	"testing"

	"github.com/MKhiriev/mcp-manager/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveIdentity(t *testing.T) {
	tests := []struct {
		name       string
		serverPath string
		entry      string
		want       *models.PackageIdentity
	}{
		{
			name:  "explicit npmPackage wins over everything",
			entry: `{"npmPackage":"@acme/tool","command":"npx","args":["-y","other"]}`,
			want:  &models.PackageIdentity{Name: "@acme/tool", IsScoped: true, Explicit: true},
		},
		{
			name:  "explicit unscoped",
			entry: `{"npmPackage":"mcp-server-git"}`,
			want:  &models.PackageIdentity{Name: "mcp-server-git", Explicit: true},
		},
		{
			name:       "npx skips flags",
			serverPath: "-y",
			entry:      `{"command":"npx","args":["-y","--quiet","@modelcontextprotocol/server-memory"]}`,
			want:       &models.PackageIdentity{Name: "@modelcontextprotocol/server-memory", IsScoped: true},
		},
		{
			name:       "npx skips a literal npx arg",
			serverPath: "npx",
			entry:      `{"command":"npx","args":["npx","mcp-server-fetch"]}`,
			want:       &models.PackageIdentity{Name: "mcp-server-fetch"},
		},
		{
			name:       "npx with only flags falls back to path",
			serverPath: "-y",
			entry:      `{"command":"npx","args":["-y"]}`,
			want:       nil,
		},
		{
			name:       "scoped segment in path",
			serverPath: "/usr/lib/node_modules/@modelcontextprotocol/server-filesystem/dist/index.js",
			entry:      `{"command":"node"}`,
			want:       &models.PackageIdentity{Name: "@modelcontextprotocol/server-filesystem", IsScoped: true},
		},
		{
			name:       "node_modules segment in path",
			serverPath: "/usr/lib/node_modules/left-pad/index.js",
			entry:      `{"command":"node"}`,
			want:       &models.PackageIdentity{Name: "left-pad"},
		},
		{
			name:       "directory containing mcp",
			serverPath: "/home/u/src/Weather-MCP/build/index.js",
			entry:      `{"command":"node"}`,
			want:       &models.PackageIdentity{Name: "Weather-MCP"},
		},
		{
			name:       "windows separators",
			serverPath: `C:\Users\u\AppData\Roaming\npm\node_modules\mcp-server-x\dist\index.js`,
			entry:      `{"command":"node"}`,
			want:       &models.PackageIdentity{Name: "mcp-server-x"},
		},
		{
			name:       "nothing recognisable",
			serverPath: "/opt/tools/server.py",
			entry:      `{"command":"python"}`,
			want:       nil,
		},
		{
			name:  "empty path and entry without hints",
			entry: `{"command":"uvx","args":[]}`,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveIdentity(tt.serverPath, entry(t, tt.entry))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveIdentity_NilInputs(t *testing.T) {
	assert.Nil(t, ResolveIdentity("", nil))
}

func TestResolveIdentity_NilEntryWithPath(t *testing.T) {
	got := ResolveIdentity("/x/node_modules/pkg-a/index.js", nil)
	assert.Equal(t, &models.PackageIdentity{Name: "pkg-a"}, got)
}
