// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/mcp-manager/internal/config"
	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingWorker records Run calls and blocks until ctx is done.
type countingWorker struct {
	runs    atomic.Int32
	stopped atomic.Bool
}

func (w *countingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
	w.stopped.Store(true)
}

func TestWorkers_Run_AllWorkersRunUntilCancelled(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.True(t, w1.stopped.Load())
	assert.True(t, w2.stopped.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	assert.NotPanics(t, func() { ws.Run(context.Background()) })
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	updates := mock.NewMockUpdateService(ctrl)

	tests := []struct {
		name     string
		interval time.Duration
		want     int
	}{
		{"disabled", 0, 0},
		{"negative is disabled", -time.Second, 0},
		{"enabled", time.Minute, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := NewWorkers(config.Workers{UpdateCheckInterval: tt.interval}, updates, logger.Nop())

			assert.Equal(t, tt.want, ws.Len())
		})
	}
}
