// Copyright 2025 The go-wavelayout Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the persistent pool the wave emulator runs lanes
// on. A Pool is created once and reused for every iteration of every traced
// layout, so emulating a wave costs one channel send per chunk of lanes
// instead of one goroutine per lane.
//
// Usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	for iteration := range iterations {
//	    pool.ParallelFor(waveSize, func(chunk, start, end int) {
//	        for lane := start; lane < end; lane++ {
//	            step(lane, iteration)
//	        }
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once by New and live
// until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one chunk of a parallel call.
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

// Close shuts down the pool after pending work completes.
// Calling Close multiple times is safe; a closed pool runs calls sequentially.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// NumChunks returns how many chunks ParallelFor splits n items into.
func (p *Pool) NumChunks(n int) int {
	if n <= 0 {
		return 0
	}
	if p.closed.Load() {
		return 1
	}
	return min(p.numWorkers, n)
}

// ParallelFor splits [0, n) into NumChunks(n) contiguous chunks and runs
// fn(chunk, start, end) for each one, chunk being in [0, NumChunks(n)).
// Blocks until all chunks complete, which makes each call a barrier.
func (p *Pool) ParallelFor(n int, fn func(chunk, start, end int)) {
	chunks := p.NumChunks(n)
	if chunks == 0 {
		return
	}
	if chunks == 1 {
		fn(0, 0, n)
		return
	}

	chunkSize := (n + chunks - 1) / chunks
	var wg sync.WaitGroup
	wg.Add(chunks)
	for chunk := range chunks {
		start := chunk * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- workItem{
			fn: func() {
				fn(chunk, start, end)
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomic runs fn(i) for each i in [0, n), workers grabbing the next
// index atomically. Use it when the cost per item varies.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	workers := p.NumChunks(n)
	if workers == 0 {
		return
	}
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var nextIdx atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
