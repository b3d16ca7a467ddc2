// Copyright 2025 The go-doublesort Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestRun(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	err := pool.Run(context.Background(), n, func(_ context.Context, i int) error {
		results[i] = i * 2
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestRunError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	boom := errors.New("boom")
	var calls atomic.Int32
	err := pool.Run(context.Background(), 1000, func(_ context.Context, i int) error {
		calls.Add(1)
		if i == 10 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	if calls.Load() == 0 {
		t.Error("no jobs ran")
	}
}

func TestRunCanceled(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := pool.Run(ctx, 100, func(context.Context, int) error {
		calls.Add(1)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if calls.Load() != 0 {
		t.Errorf("calls = %d, want 0", calls.Load())
	}
}

func TestRunZero(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	if err := pool.Run(context.Background(), 0, func(context.Context, int) error {
		called = true
		return nil
	}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if called {
		t.Error("fn should not be called for n=0")
	}
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var sum atomic.Int64
	if err := pool.Run(context.Background(), 10, func(_ context.Context, i int) error {
		sum.Add(int64(i))
		return nil
	}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Load() != 45 {
		t.Errorf("sum = %d, want 45", sum.Load())
	}
}

func TestPoolReuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for iter := 0; iter < 100; iter++ {
		var count atomic.Int32
		if err := pool.Run(context.Background(), 50, func(context.Context, int) error {
			count.Add(1)
			return nil
		}); err != nil {
			t.Fatalf("iteration %d: Run() error = %v", iter, err)
		}
		if count.Load() != 50 {
			t.Errorf("iteration %d: count = %d, want 50", iter, count.Load())
		}
	}
}

func TestCloseDuringRun(t *testing.T) {
	for iter := 0; iter < 200; iter++ {
		pool := New(4)

		var wg sync.WaitGroup
		var count atomic.Int32
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := pool.Run(context.Background(), 64, func(context.Context, int) error {
				count.Add(1)
				return nil
			}); err != nil {
				t.Errorf("iteration %d: Run() error = %v", iter, err)
			}
		}()
		go func() {
			defer wg.Done()
			pool.Close()
		}()
		wg.Wait()

		if count.Load() != 64 {
			t.Errorf("iteration %d: count = %d, want 64", iter, count.Load())
		}
	}
}
