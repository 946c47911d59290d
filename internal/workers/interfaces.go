// Package workers runs the background housekeeping of the application.
//
// It defines the Worker interface and a Workers aggregate that runs every
// worker concurrently until the shared context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the
// worker has nothing left to do.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// SessionPruner deletes revocation records that can no longer matter.
// It is satisfied by service.AuthService.
type SessionPruner interface {
	PruneRevokedSessions(ctx context.Context) (int64, error)
}
