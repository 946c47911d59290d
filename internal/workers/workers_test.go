// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/config"
	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(context.Context) {
	m.runCount.Add(1)
}

// blockingWorker returns only when its context is cancelled.
type blockingWorker struct {
	stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	b.stopped.Store(true)
}

// countingPruner counts prune calls and fails when err is set.
type countingPruner struct {
	calls atomic.Int32
	err   error
}

func (c *countingPruner) PruneRevokedSessions(context.Context) (int64, error) {
	c.calls.Add(1)
	return 2, c.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not block or panic without workers
	ws.Run(context.Background())
}

func TestWorkers_Run_WaitsForCancellation(t *testing.T) {
	b := &blockingWorker{}
	ws := &Workers{workers: []Worker{b, &mockWorker{}}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Run returned before cancellation")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	<-done
	assert.True(t, b.stopped.Load())
}

func TestNewWorkers_RegistersPruner(t *testing.T) {
	ws := NewWorkers(&countingPruner{}, config.Workers{PruneInterval: time.Minute}, logger.Nop())

	require.Len(t, ws.workers, 1)
	pruner, ok := ws.workers[0].(*revokedSessionPruner)
	require.True(t, ok)
	assert.Equal(t, time.Minute, pruner.interval)
}

func TestRevokedSessionPruner_PrunesOnEveryTick(t *testing.T) {
	cp := &countingPruner{}
	p := newRevokedSessionPruner(cp, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return cp.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	<-done
}

func TestRevokedSessionPruner_KeepsRunningAfterFailure(t *testing.T) {
	cp := &countingPruner{err: errors.New("db down")}
	p := newRevokedSessionPruner(cp, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	assert.Eventually(t, func() bool { return cp.calls.Load() >= 2 }, time.Second, time.Millisecond)
}

func TestRevokedSessionPruner_DisabledWithoutInterval(t *testing.T) {
	cp := &countingPruner{}
	p := newRevokedSessionPruner(cp, 0, logger.Nop())

	// returns immediately
	p.Run(context.Background())

	assert.Zero(t, cp.calls.Load())
}
