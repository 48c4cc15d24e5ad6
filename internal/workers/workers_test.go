// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/connectivity"

	"github.com/MKhiriev/go-cinema-client/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(context.Context) {
	m.runCount.Add(1)
}

// blockingWorker returns only when its context is canceled.
type blockingWorker struct {
	stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	b.stopped.Store(true)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic or block on an empty workers list
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Wait_UntilCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := &blockingWorker{}

	ws := NewWorkers(b)
	ws.Run(ctx)
	cancel()
	ws.Wait()

	assert.True(t, b.stopped.Load())
}

// fakeConn replays a scripted sequence of states.
type fakeConn struct {
	mu     sync.Mutex
	states []connectivity.State
	pos    int
}

func (f *fakeConn) GetState() connectivity.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.states[f.pos]
}

func (f *fakeConn) WaitForStateChange(ctx context.Context, _ connectivity.State) bool {
	f.mu.Lock()
	if f.pos+1 < len(f.states) {
		f.pos++
		f.mu.Unlock()
		return true
	}
	f.mu.Unlock()

	<-ctx.Done()
	return false
}

func TestConnStateWatcher_LogsTransitionsUntilShutdown(t *testing.T) {
	var buf bytes.Buffer
	conn := &fakeConn{states: []connectivity.State{
		connectivity.Idle,
		connectivity.Connecting,
		connectivity.TransientFailure,
		connectivity.Ready,
		connectivity.Shutdown,
	}}

	done := make(chan struct{})
	go func() {
		NewConnStateWatcher(conn, logger.NewLogger("test", &buf)).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on SHUTDOWN")
	}

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "connection state changed"))
	assert.Contains(t, out, `"to":"TRANSIENT_FAILURE"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"to":"SHUTDOWN"`)
}

func TestConnStateWatcher_StopsOnCancel(t *testing.T) {
	conn := &fakeConn{states: []connectivity.State{connectivity.Ready}}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewConnStateWatcher(conn, logger.Nop()).Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "watcher did not stop on cancel")
	}
}
