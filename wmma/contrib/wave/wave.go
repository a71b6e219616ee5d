// Copyright 2025 go-wavelayout Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package wave emulates one wave on the host: every lane runs the same kernel
// with its own lane id, and all lanes finish an iteration before any lane
// starts the next one.
//
// It is the harness the layouts are validated with. Trace records each lane's
// coordinate sequence, Coverage checks that the VectorWidth spans of all lanes
// over all iterations tile the matrix exactly once, and CheckConsistency checks
// that summed incremental offsets match the cumulative ones.
package wave

import (
	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/ajroetker/go-wavelayout/wmma/contrib/workerpool"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Wave runs lane kernels in lock-step on a worker pool.
type Wave struct {
	size uint32
	pool *workerpool.Pool
}

// New returns a wave of size lanes running on pool.
func New(size uint32, pool *workerpool.Pool) (*Wave, error) {
	if !wmma.IsPow2(size) {
		return nil, errors.Wrapf(wmma.ErrInvalidConfig, "wave size %d must be a positive power of two", size)
	}
	if pool == nil {
		return nil, errors.New("wave.New: nil worker pool")
	}
	return &Wave{size: size, pool: pool}, nil
}

// ForTarget returns a wave with the lane count of target.
func ForTarget(target wmma.Target, pool *workerpool.Pool) (*Wave, error) {
	return New(target.WaveSize(), pool)
}

// Size returns the number of lanes.
func (w *Wave) Size() uint32 {
	return w.size
}

// Run calls kernel(lane, iteration) for every lane and every iteration in
// [0, iterations). Iterations are separated by a barrier.
func (w *Wave) Run(iterations uint32, kernel func(lane, iteration uint32)) {
	w.run(iterations, func(_ int, lane, iteration uint32) {
		kernel(lane, iteration)
	})
}

// NumChunks returns how many groups of lanes run concurrently.
func (w *Wave) NumChunks() int {
	return w.pool.NumChunks(int(w.size))
}

// run is Run with the index of the chunk of lanes the call belongs to, in
// [0, NumChunks()), for per-chunk accumulation without contention.
func (w *Wave) run(iterations uint32, kernel func(chunk int, lane, iteration uint32)) {
	klog.V(2).Infof("wave: running %d lanes x %d iterations on %d chunks", w.size, iterations, w.NumChunks())
	for iteration := range iterations {
		w.pool.ParallelFor(int(w.size), func(chunk, start, end int) {
			for lane := start; lane < end; lane++ {
				kernel(chunk, uint32(lane), iteration)
			}
		})
	}
}
