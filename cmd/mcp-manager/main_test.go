package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/mcp-manager/internal/mock"
	"github.com/MKhiriev/mcp-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPrintUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	updates := mock.NewMockUpdateService(ctrl)
	updates.EXPECT().ScanForUpdates(gomock.Any()).Return(models.UpdatesReport{}, nil)

	var out bytes.Buffer
	require.NoError(t, printUpdates(context.Background(), &out, updates))

	assert.True(t, json.Valid(out.Bytes()))
}

func TestPrintUpdates_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	updates := mock.NewMockUpdateService(ctrl)
	updates.EXPECT().ScanForUpdates(gomock.Any()).Return(models.UpdatesReport{}, errors.New("boom"))

	var out bytes.Buffer
	err := printUpdates(context.Background(), &out, updates)

	assert.ErrorContains(t, err, "boom")
	assert.Empty(t, out.String())
}

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Build version: N/A")
}

func TestRootCmd_RegistersFlagsAndCommands(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"address", "config", "primary-config", "disable-mcp"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	for _, name := range []string{"serve", "updates", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}
