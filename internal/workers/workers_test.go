// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker counts Run calls and blocks until its context is done.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return nil
}

// failingWorker returns err immediately.
type failingWorker struct {
	err error
}

func (f *failingWorker) Run(context.Context) error {
	return f.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ws := NewWorkers(w1, w2, w3)
	if err := ws.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	if err := ws.Run(context.Background()); err != nil {
		t.Errorf("expected nil error for empty workers, got %v", err)
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	if err := ws.Run(context.Background()); err != nil {
		t.Errorf("expected nil error for nil workers, got %v", err)
	}
}

func TestWorkers_Run_FailureStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := &mockWorker{}

	done := make(chan error, 1)
	go func() {
		done <- NewWorkers(blocking, &failingWorker{err: boom}).Run(context.Background())
	}()

	select {
	case err := <-done:
		if !errors.Is(err, boom) {
			t.Errorf("expected %v, got %v", boom, err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("blocking worker was not cancelled after a failure")
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := ws.Run(ctx); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
	}

	if got := w.runCount.Load(); got != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", got)
	}
}
