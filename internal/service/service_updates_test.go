// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/mcp-manager/internal/adapter"
	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/mock"
	"github.com/MKhiriev/mcp-manager/internal/store"
	"github.com/MKhiriev/mcp-manager/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type updateFixture struct {
	registry *mock.MockRegistry
	packages *mock.MockPackageManager
	svc      UpdateService
}

func newUpdateFixture(t *testing.T, primary, defaults models.ServerConfigSet) *updateFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistry(ctrl)
	packages := mock.NewMockPackageManager(ctrl)

	configs := NewConfigService(readOnlyStorages(ctrl, primary, defaults), logger.Nop())
	return &updateFixture{
		registry: registry,
		packages: packages,
		svc:      NewUpdateService(configs, registry, packages, 4, logger.Nop()),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ScanForUpdates: per-server outcomes
// ─────────────────────────────────────────────────────────────────────────────

func TestScanForUpdates_UnknownPackage(t *testing.T) {
	f := newUpdateFixture(t, models.ServerConfigSet{
		"py": mustEntry(t, `{"command":"python","args":["/opt/tools/server.py"]}`),
	}, nil)

	report, err := f.svc.ScanForUpdates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.UpdateInfo{Reason: models.ReasonNoIdentity}, report.Updates["py"])
}

func TestScanForUpdates_UpdateAvailable(t *testing.T) {
	f := newUpdateFixture(t, models.ServerConfigSet{
		"mem": mustEntry(t, `{"command":"npx","args":["-y","@modelcontextprotocol/server-memory"]}`),
	}, nil)
	f.registry.EXPECT().LatestVersion(gomock.Any(), "@modelcontextprotocol/server-memory").Return("0.6.0", nil)
	f.packages.EXPECT().InstalledVersion(gomock.Any(), "@modelcontextprotocol/server-memory", "").Return("0.5.1", nil)

	report, err := f.svc.ScanForUpdates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.UpdateInfo{
		HasUpdate:      true,
		PackageName:    strPtr("@modelcontextprotocol/server-memory"),
		CurrentVersion: strPtr("0.5.1"),
		LatestVersion:  strPtr("0.6.0"),
		Reason:         models.ReasonUpdateAvailable,
	}, report.Updates["mem"])
	assert.Equal(t, 1, report.ServersWithUpdates)
}

func TestScanForUpdates_UpToDate(t *testing.T) {
	f := newUpdateFixture(t, models.ServerConfigSet{
		"git": mustEntry(t, `{"command":"npx","args":["mcp-server-git"]}`),
	}, nil)
	f.registry.EXPECT().LatestVersion(gomock.Any(), "mcp-server-git").Return("1.0.0", nil)
	f.packages.EXPECT().InstalledVersion(gomock.Any(), "mcp-server-git", "").Return("1.0.0", nil)

	report, err := f.svc.ScanForUpdates(context.Background())

	require.NoError(t, err)
	info := report.Updates["git"]
	assert.False(t, info.HasUpdate)
	assert.Equal(t, models.ReasonUpToDate, info.Reason)
	assert.Equal(t, 0, report.ServersWithUpdates)
}

func TestScanForUpdates_FallbackNameIsAdopted(t *testing.T) {
	f := newUpdateFixture(t, models.ServerConfigSet{
		"fs": mustEntry(t, `{"command":"npx","args":["fs"]}`),
	}, nil)
	// the base name is looked up once, not again by the fallback search
	f.registry.EXPECT().LatestVersion(gomock.Any(), "fs").Return("", adapter.ErrPackageNotFound).Times(1)
	f.registry.EXPECT().LatestVersion(gomock.Any(), "@modelcontextprotocol/server-fs").Return("2.0.0", nil)
	f.packages.EXPECT().InstalledVersion(gomock.Any(), "@modelcontextprotocol/server-fs", "").Return("1.0.0", nil)

	report, err := f.svc.ScanForUpdates(context.Background())

	require.NoError(t, err)
	info := report.Updates["fs"]
	assert.True(t, info.HasUpdate)
	require.NotNil(t, info.PackageName)
	assert.Equal(t, "@modelcontextprotocol/server-fs", *info.PackageName)
}

func TestScanForUpdates_ExplicitIdentitySkipsFallback(t *testing.T) {
	f := newUpdateFixture(t, models.ServerConfigSet{
		"custom": mustEntry(t, `{"command":"node","args":["/opt/custom/index.js"],"npmPackage":"@acme/custom"}`),
	}, nil)
	f.registry.EXPECT().LatestVersion(gomock.Any(), "@acme/custom").Return("", adapter.ErrPackageNotFound)

	report, err := f.svc.ScanForUpdates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.UpdateInfo{
		PackageName: strPtr("@acme/custom"),
		Reason:      models.ReasonNoCurrent,
	}, report.Updates["custom"])
}

func TestScanForUpdates_CurrentUnknown(t *testing.T) {
	f := newUpdateFixture(t, models.ServerConfigSet{
		"mem": mustEntry(t, `{"command":"npx","args":["-y","@x/mem"]}`),
	}, nil)
	f.registry.EXPECT().LatestVersion(gomock.Any(), "@x/mem").Return("1.0.0", nil)
	f.packages.EXPECT().InstalledVersion(gomock.Any(), "@x/mem", "").Return("", errors.New("not installed"))

	report, err := f.svc.ScanForUpdates(context.Background())

	require.NoError(t, err)
	info := report.Updates["mem"]
	assert.False(t, info.HasUpdate)
	assert.Nil(t, info.CurrentVersion)
	assert.Equal(t, strPtr("1.0.0"), info.LatestVersion)
	assert.Equal(t, models.ReasonNoCurrent, info.Reason)
}

func TestScanForUpdates_PanicIsContainedToOneServer(t *testing.T) {
	f := newUpdateFixture(t, models.ServerConfigSet{
		"bad":  mustEntry(t, `{"command":"npx","args":["@x/bad"]}`),
		"good": mustEntry(t, `{"command":"npx","args":["@x/good"]}`),
	}, nil)
	f.registry.EXPECT().LatestVersion(gomock.Any(), "@x/bad").DoAndReturn(func(ctx context.Context, name string) (string, error) {
		panic("registry exploded")
	})
	f.registry.EXPECT().LatestVersion(gomock.Any(), "@x/good").Return("1.1.0", nil)
	f.packages.EXPECT().InstalledVersion(gomock.Any(), "@x/good", "").Return("1.0.0", nil)

	report, err := f.svc.ScanForUpdates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.UpdateInfo{Reason: "Error: registry exploded"}, report.Updates["bad"])
	assert.True(t, report.Updates["good"].HasUpdate)
	assert.Equal(t, 2, report.TotalServers)
	assert.Equal(t, 1, report.ServersWithUpdates)
}

func TestScanForUpdates_LogsToServiceLoggerWithoutRequestLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistry(ctrl)
	registry.EXPECT().LatestVersion(gomock.Any(), "@x/bad").DoAndReturn(func(ctx context.Context, name string) (string, error) {
		panic("registry exploded")
	})

	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)}
	configs := NewConfigService(readOnlyStorages(ctrl, models.ServerConfigSet{
		"bad": mustEntry(t, `{"command":"npx","args":["@x/bad"]}`),
	}, nil), l)
	svc := NewUpdateService(configs, registry, mock.NewMockPackageManager(ctrl), 1, l)

	report, err := svc.ScanForUpdates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Error: registry exploded", report.Updates["bad"].Reason)
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "registry exploded")
	assert.Contains(t, buf.String(), `"server":"bad"`)
}

func TestScanForUpdates_PrefersLoggerFromContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistry(ctrl)
	registry.EXPECT().LatestVersion(gomock.Any(), "@x/mem").Return("1.0.0", nil)
	packages := mock.NewMockPackageManager(ctrl)
	packages.EXPECT().InstalledVersion(gomock.Any(), "@x/mem", "").Return("1.0.0", nil)

	var own, request bytes.Buffer
	ownLogger := &logger.Logger{Logger: zerolog.New(&own)}
	configs := NewConfigService(readOnlyStorages(ctrl, models.ServerConfigSet{
		"mem": mustEntry(t, `{"command":"npx","args":["@x/mem"]}`),
	}, nil), ownLogger)
	svc := NewUpdateService(configs, registry, packages, 1, ownLogger)

	ctx := zerolog.New(&request).With().Str("trace_id", "t-1").Logger().WithContext(context.Background())
	_, err := svc.ScanForUpdates(ctx)

	require.NoError(t, err)
	assert.Empty(t, own.String())
	assert.Contains(t, request.String(), `"trace_id":"t-1"`)
}

// ─────────────────────────────────────────────────────────────────────────────
// ScanForUpdates: report
// ─────────────────────────────────────────────────────────────────────────────

func TestScanForUpdates_ReportCoversMergedSet(t *testing.T) {
	defaults := models.ServerConfigSet{
		"a": mustEntry(t, `{"command":"python"}`),
		"b": mustEntry(t, `{"command":"python"}`),
	}
	primary := models.ServerConfigSet{
		"b": mustEntry(t, `{"disabled":true}`),
		"c": mustEntry(t, `{"command":"python"}`),
	}
	f := newUpdateFixture(t, primary, defaults)

	report, err := f.svc.ScanForUpdates(context.Background())

	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, 3, report.TotalServers)
	assert.Len(t, report.Updates, 3)
	assert.Contains(t, report.Updates, "a")
	assert.Contains(t, report.Updates, "b")
	assert.Contains(t, report.Updates, "c")
}

func TestScanForUpdates_EmptyConfig(t *testing.T) {
	f := newUpdateFixture(t, nil, nil)

	report, err := f.svc.ScanForUpdates(context.Background())

	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Empty(t, report.Updates)
	assert.NotNil(t, report.Updates)
	assert.Zero(t, report.TotalServers)
}

func TestScanForUpdates_ConfigReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mock.NewMockConfigStore(ctrl)
	primary.EXPECT().Read(gomock.Any()).Return(models.ConfigDocument{}, store.ErrMalformedConfig)

	configs := NewConfigService(&store.Storages{
		Primary:   primary,
		Secondary: mock.NewMockConfigStore(ctrl),
		Defaults:  mock.NewMockConfigStore(ctrl),
	}, logger.Nop())
	svc := NewUpdateService(configs, mock.NewMockRegistry(ctrl), mock.NewMockPackageManager(ctrl), 1, logger.Nop())

	_, err := svc.ScanForUpdates(context.Background())

	assert.ErrorIs(t, err, store.ErrMalformedConfig)
	assert.ErrorIs(t, err, ErrReadingConfig)
}

func TestUpdateReason(t *testing.T) {
	assert.Equal(t, models.ReasonNoCurrent, updateReason("", "", false))
	assert.Equal(t, models.ReasonNoCurrent, updateReason("", "1.0.0", false))
	assert.Equal(t, models.ReasonNoLatest, updateReason("1.0.0", "", false))
	assert.Equal(t, models.ReasonUpdateAvailable, updateReason("1.0.0", "1.0.1", true))
	assert.Equal(t, models.ReasonUpToDate, updateReason("1.0.1", "1.0.1", false))
}
