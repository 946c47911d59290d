package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/skillvance-api/internal/config"
	"github.com/MKhiriev/skillvance-api/internal/logger"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(pruner SessionPruner, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newRevokedSessionPruner(pruner, cfg.PruneInterval, logger),
		},
	}
}

// Run starts every worker in its own goroutine and waits for all of them to return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
