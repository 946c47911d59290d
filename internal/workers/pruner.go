package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/logger"
)

// revokedSessionPruner periodically drops revocation records of sessions
// that have expired anyway. It never decides whether a session is valid.
type revokedSessionPruner struct {
	pruner   SessionPruner
	interval time.Duration
	logger   *logger.Logger
}

func newRevokedSessionPruner(pruner SessionPruner, interval time.Duration, logger *logger.Logger) *revokedSessionPruner {
	return &revokedSessionPruner{
		pruner:   pruner,
		interval: interval,
		logger:   logger.WithWorker("revoked-session-pruner"),
	}
}

func (p *revokedSessionPruner) Run(ctx context.Context) {
	if p.interval <= 0 {
		p.logger.Warn().Msg("revoked session pruning is disabled")
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

func (p *revokedSessionPruner) prune(ctx context.Context) {
	pruned, err := p.pruner.PruneRevokedSessions(ctx)
	if err != nil {
		p.logger.Error().Err(err).Msg("pruning revoked sessions failed")
		return
	}
	if pruned > 0 {
		p.logger.Info().Int64("pruned", pruned).Msg("pruned revoked sessions")
	}
}
