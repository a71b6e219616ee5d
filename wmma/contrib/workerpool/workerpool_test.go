// Copyright 2025 The go-wavelayout Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
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

func TestParallelForLanes(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, waveSize := range []int{1, 3, 32, 64} {
		lanes := make([]int, waveSize)
		chunksSeen := make([]atomic.Int32, pool.NumChunks(waveSize))
		pool.ParallelFor(waveSize, func(chunk, start, end int) {
			chunksSeen[chunk].Add(1)
			for lane := start; lane < end; lane++ {
				lanes[lane] = lane * 2
			}
		})
		for lane, got := range lanes {
			if got != lane*2 {
				t.Errorf("wave %d: lanes[%d] = %d, want %d", waveSize, lane, got, lane*2)
			}
		}
		for chunk := range chunksSeen {
			if n := chunksSeen[chunk].Load(); n > 1 {
				t.Errorf("wave %d: chunk %d ran %d times", waveSize, chunk, n)
			}
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})
	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(chunk, start, end int) { called = true })
	pool.ParallelForAtomic(0, func(i int) { called = true })
	if called {
		t.Error("fn called for n=0")
	}
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	if got := pool.NumChunks(64); got != 1 {
		t.Errorf("NumChunks(64) on closed pool = %d, want 1", got)
	}
	var sum atomic.Int64
	pool.ParallelFor(64, func(chunk, start, end int) {
		if chunk != 0 || start != 0 || end != 64 {
			t.Errorf("closed pool chunk=(%d,%d,%d), want (0,0,64)", chunk, start, end)
		}
		for i := start; i < end; i++ {
			sum.Add(int64(i))
		}
	})
	if sum.Load() != 64*63/2 {
		t.Errorf("sum = %d, want %d", sum.Load(), 64*63/2)
	}
}

func BenchmarkParallelForWave64(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	out := make([]int32, 64)
	b.ResetTimer()
	for range b.N {
		pool.ParallelFor(64, func(chunk, start, end int) {
			for lane := start; lane < end; lane++ {
				out[lane]++
			}
		})
	}
}
