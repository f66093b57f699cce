package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/mcp-manager/internal/adapter"
	"github.com/MKhiriev/mcp-manager/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeJSON(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

// ─────────────────────────────────────────────────────────────────────────────
// IsNewer
// ─────────────────────────────────────────────────────────────────────────────

func TestIsNewer(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"1.0.0", "1.0.1", true},
		{"1.2.3", "1.10.0", true},
		{"1.0.1", "1.0.0", false},
		{"1.0.0", "1.0.0", false},
		{"1.0", "1.0.0", false},
		{"1.0", "1.0.1", true},
		{"2", "1.9.9", false},
		{"", "1.0.0", false},
		{"1.0.0", "", false},
		{"", "", false},
		// non-numeric segments count as zero
		{"1.0.0-beta", "1.0.0", false},
		{"1.0.0-beta", "1.0.1", true},
		{"1.0.0", "1.0.1-rc.1", true},
		{"1.x.0", "1.1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.current+"→"+tt.latest, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNewer(tt.current, tt.latest))
		})
	}
}

func TestIsNewer_Antisymmetric(t *testing.T) {
	pairs := [][2]string{{"1.0.0", "1.0.1"}, {"0.9", "1.0"}, {"3.2.1", "3.2.1"}, {"1", "1.0.0.1"}}
	for _, p := range pairs {
		assert.False(t, IsNewer(p[0], p[1]) && IsNewer(p[1], p[0]), "%v", p)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// LatestVersion
// ─────────────────────────────────────────────────────────────────────────────

func TestVersionResolver_LatestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistry(ctrl)
	r := newVersionResolver(registry, mock.NewMockPackageManager(ctrl))

	registry.EXPECT().LatestVersion(gomock.Any(), "ok").Return(" 1.2.3\n", nil)
	registry.EXPECT().LatestVersion(gomock.Any(), "missing").Return("", adapter.ErrPackageNotFound)
	registry.EXPECT().LatestVersion(gomock.Any(), "broken").Return("9.9.9", errors.New("timeout"))

	ctx := context.Background()
	assert.Equal(t, "1.2.3", r.LatestVersion(ctx, "ok"))
	assert.Equal(t, "", r.LatestVersion(ctx, "missing"))
	assert.Equal(t, "", r.LatestVersion(ctx, "broken"))
}

// ─────────────────────────────────────────────────────────────────────────────
// CurrentVersion
// ─────────────────────────────────────────────────────────────────────────────

func TestCurrentVersion_OwnPackageJSON(t *testing.T) {
	root := t.TempDir()
	writeJSON(t, filepath.Join(root, "srv", "package.json"), `{"name":"weather-mcp","version":"0.3.0"}`)
	serverPath := filepath.Join(root, "srv", "build", "index.js")

	ctrl := gomock.NewController(t)
	r := newVersionResolver(mock.NewMockRegistry(ctrl), mock.NewMockPackageManager(ctrl))

	assert.Equal(t, "0.3.0", r.CurrentVersion(context.Background(), "weather-mcp", serverPath))
}

func TestCurrentVersion_OtherPackageJSONIsIgnored(t *testing.T) {
	root := t.TempDir()
	writeJSON(t, filepath.Join(root, "srv", "package.json"), `{"name":"something-else","version":"9.0.0"}`)
	writeJSON(t, filepath.Join(root, "node_modules", "@scope", "pkg", "package.json"), `{"name":"@scope/pkg","version":"1.4.2"}`)
	serverPath := filepath.Join(root, "srv", "dist", "index.js")

	ctrl := gomock.NewController(t)
	r := newVersionResolver(mock.NewMockRegistry(ctrl), mock.NewMockPackageManager(ctrl))

	assert.Equal(t, "1.4.2", r.CurrentVersion(context.Background(), "@scope/pkg", serverPath))
}

func TestCurrentVersion_WalkIsBounded(t *testing.T) {
	root := t.TempDir()
	writeJSON(t, filepath.Join(root, "package.json"), `{"name":"deep","version":"1.0.0"}`)
	serverPath := filepath.Join(root, "a", "b", "c", "d", "e", "f", "index.js")

	ctrl := gomock.NewController(t)
	pm := mock.NewMockPackageManager(ctrl)
	pm.EXPECT().InstalledVersion(gomock.Any(), "deep", "").Return("", adapter.ErrPackageNotFound)
	r := newVersionResolver(mock.NewMockRegistry(ctrl), pm)

	assert.Equal(t, "", r.CurrentVersion(context.Background(), "deep", serverPath))
}

func TestCurrentVersion_FallsBackToPackageManager(t *testing.T) {
	serverPath := filepath.Join(t.TempDir(), "index.js")

	ctrl := gomock.NewController(t)
	pm := mock.NewMockPackageManager(ctrl)
	pm.EXPECT().InstalledVersion(gomock.Any(), "pkg", "").Return("2.1.0", nil)
	r := newVersionResolver(mock.NewMockRegistry(ctrl), pm)

	assert.Equal(t, "2.1.0", r.CurrentVersion(context.Background(), "pkg", serverPath))
}

func TestCurrentVersion_EmptyServerPathSkipsWalk(t *testing.T) {
	ctrl := gomock.NewController(t)
	pm := mock.NewMockPackageManager(ctrl)
	pm.EXPECT().InstalledVersion(gomock.Any(), "pkg", "").Return("", errors.New("npm missing"))
	r := newVersionResolver(mock.NewMockRegistry(ctrl), pm)

	assert.Equal(t, "", r.CurrentVersion(context.Background(), "pkg", ""))
}

func TestCurrentVersion_MalformedManifestIsSkipped(t *testing.T) {
	root := t.TempDir()
	writeJSON(t, filepath.Join(root, "srv", "package.json"), `{not json`)
	writeJSON(t, filepath.Join(root, "package.json"), `{"name":"pkg","version":"3.0.0"}`)

	ctrl := gomock.NewController(t)
	r := newVersionResolver(mock.NewMockRegistry(ctrl), mock.NewMockPackageManager(ctrl))

	assert.Equal(t, "3.0.0", r.CurrentVersion(context.Background(), "pkg", filepath.Join(root, "srv", "index.js")))
}
