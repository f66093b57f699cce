// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/service"
	"github.com/MKhiriev/mcp-manager/models"
)

const defaultCheckInterval = time.Hour

// UpdateCheckJob periodically scans for updates and logs what it finds.
type UpdateCheckJob struct {
	updates  service.UpdateService
	interval time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewUpdateCheckJob creates a job that runs an update scan every interval
// and logs the servers with an available update. A non-positive interval
// defaults to one hour. The job is idle until Start or Run is called.
func NewUpdateCheckJob(updates service.UpdateService, interval time.Duration, logger *logger.Logger) *UpdateCheckJob {
	if interval <= 0 {
		interval = defaultCheckInterval
	}
	return &UpdateCheckJob{updates: updates, interval: interval, logger: logger}
}

// Run implements Worker.
func (j *UpdateCheckJob) Run(ctx context.Context) {
	j.Start(ctx)
	<-ctx.Done()
	j.Stop()
}

// Start stops any previously running loop, then launches a goroutine that
// scans every interval until ctx is cancelled or Stop is called.
func (j *UpdateCheckJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", j.interval).Msg("update check started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx)
			}
		}
	}()
}

// Stop cancels the loop and blocks until it has exited. Safe to call when
// the job is not running.
func (j *UpdateCheckJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *UpdateCheckJob) check(ctx context.Context) {
	report, err := j.updates.ScanForUpdates(logger.ContextWith(ctx, j.logger))
	if err != nil {
		j.logger.Error().Err(err).Msg("scheduled update check failed")
		return
	}

	for _, name := range serversWithUpdates(report) {
		info := report.Updates[name]
		j.logger.Info().
			Str("server", name).
			Str("package", deref(info.PackageName)).
			Str("current", deref(info.CurrentVersion)).
			Str("latest", deref(info.LatestVersion)).
			Msg("update available")
	}

	j.logger.Info().
		Int("servers", report.TotalServers).
		Int("with_updates", report.ServersWithUpdates).
		Msg("scheduled update check finished")
}

// serversWithUpdates returns the sorted names of servers with an update.
func serversWithUpdates(report models.UpdatesReport) []string {
	var names []string
	for name, info := range report.Updates {
		if info.HasUpdate {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
