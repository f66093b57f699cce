package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/mcp-manager/internal/config"
	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg. The result may
// hold no workers at all.
func NewWorkers(cfg config.Workers, updates service.UpdateService, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.UpdateCheckInterval > 0 {
		w.workers = append(w.workers, NewUpdateCheckJob(updates, cfg.UpdateCheckInterval, logger))
	}

	logger.Info().Int("workers", len(w.workers)).Msg("workers created")
	return w
}

// Len returns the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all of them returned, which
// happens once ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
