// Copyright 2025 The go-doublesort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs many independent jobs on a fixed set of
// goroutines. The CLI uses it to run sort trials and benchmark rounds side
// by side; every job still sorts its own slice on a single goroutine.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Run(ctx, trials, func(ctx context.Context, i int) error {
//	    return runTrial(i)
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused by every Run call.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool

	// sendMu is held for reading while Run hands out work and for writing
	// while Close closes workC, so no send can hit a closed channel.
	sendMu sync.RWMutex
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Calling Close multiple times, or while Run is
// in progress, is safe: Close waits until running calls have handed out
// their work.
func (p *Pool) Close() {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run calls fn for every job index in [0, n) and blocks until all started
// jobs return. Workers grab indices atomically, so uneven job sizes balance
// out. After the first error or once ctx is done no new jobs start, and Run
// returns that error (or ctx.Err()).
//
// A closed pool runs the jobs sequentially on the caller's goroutine.
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	var (
		next     atomic.Int64
		errOnce  sync.Once
		firstErr error
		failed   atomic.Bool
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			failed.Store(true)
		})
	}
	loop := func() {
		for !failed.Load() {
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			if err := fn(ctx, i); err != nil {
				fail(err)
				return
			}
		}
	}

	workers := min(p.numWorkers, n)
	p.sendMu.RLock()
	if p.closed.Load() || workers == 1 {
		p.sendMu.RUnlock()
		loop()
		return firstErr
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{fn: loop, barrier: &wg}
	}
	p.sendMu.RUnlock()
	wg.Wait()

	return firstErr
}
