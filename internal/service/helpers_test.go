package service

import (
	"testing"

	"github.com/MKhiriev/mcp-manager/internal/mock"
	"github.com/MKhiriev/mcp-manager/internal/store"
	"github.com/MKhiriev/mcp-manager/models"
	"go.uber.org/mock/gomock"
)

// readOnlyStorages returns stores whose primary and defaults documents hold
// the given sets. The secondary store expects no calls.
func readOnlyStorages(ctrl *gomock.Controller, primary, defaults models.ServerConfigSet) *store.Storages {
	p := mock.NewMockConfigStore(ctrl)
	p.EXPECT().Read(gomock.Any()).Return(models.NewConfigDocument(primary), nil).AnyTimes()

	d := mock.NewMockConfigStore(ctrl)
	d.EXPECT().Read(gomock.Any()).Return(models.NewConfigDocument(defaults), nil).AnyTimes()

	return &store.Storages{Primary: p, Secondary: mock.NewMockConfigStore(ctrl), Defaults: d}
}

func strPtr(s string) *string { return &s }

func mustEntry(t *testing.T, raw string) models.ServerEntry {
	t.Helper()
	return entry(t, raw)
}
