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

package wave

import (
	"sync/atomic"
	"testing"

	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/ajroetker/go-wavelayout/wmma/contrib/workerpool"
	"github.com/ajroetker/go-wavelayout/wmma/layout"
	"github.com/stretchr/testify/require"
)

var gfx90a = wmma.MustParseTarget("gfx90a")

func newWave(t *testing.T, size uint32) *Wave {
	t.Helper()
	pool := workerpool.New(4)
	t.Cleanup(pool.Close)
	w, err := New(size, pool)
	require.NoError(t, err)
	return w
}

func TestNewRejects(t *testing.T) {
	pool := workerpool.New(1)
	defer pool.Close()
	_, err := New(48, pool)
	require.ErrorIs(t, err, wmma.ErrInvalidConfig)
	_, err = New(64, nil)
	require.Error(t, err)
}

func TestRunLockStep(t *testing.T) {
	w := newWave(t, 64)
	const iterations = 16

	// Every lane checks that no lane is ahead of it.
	var progress [64]atomic.Uint32
	var violations atomic.Int32
	w.Run(iterations, func(lane, iteration uint32) {
		for other := range progress {
			if progress[other].Load() > iteration+1 {
				violations.Add(1)
			}
		}
		progress[lane].Store(iteration + 1)
	})
	require.Zero(t, violations.Load())
	for lane := range progress {
		require.Equal(t, uint32(iterations), progress[lane].Load())
	}
}

func TestTraceModesAgree(t *testing.T) {
	w := newWave(t, 64)
	l := layout.MustBuild(layout.ColOrtho, gfx90a, 2,
		layout.Config{BlockDim: 128, BlockK: 8, VectorWidth: 2, MaxVectorWidth: 4})

	cumulative, err := w.Trace(l, Cumulative)
	require.NoError(t, err)
	incremental, err := w.Trace(l, Incremental)
	require.NoError(t, err)
	require.NoError(t, cumulative.Diff(incremental))

	require.Equal(t, []wmma.MatrixCoord{
		wmma.Coord(0, 0), wmma.Coord(0, 2), wmma.Coord(64, 0), wmma.Coord(64, 2),
		wmma.Coord(0, 4), wmma.Coord(0, 6), wmma.Coord(64, 4), wmma.Coord(64, 6),
	}, cumulative.Lane(0))
	require.Len(t, cumulative.Coords, 64)
	require.Equal(t, "incremental", incremental.Mode.String())
}

func TestTraceWaveMismatch(t *testing.T) {
	w := newWave(t, 32)
	l := layout.MustBuild(layout.ColInline, gfx90a, 2,
		layout.Config{BlockDim: 128, BlockK: 4, VectorWidth: 1, MaxVectorWidth: 2})
	_, err := w.Trace(l, Cumulative)
	require.ErrorContains(t, err, "64-lane")
	_, err = w.Coverage(l)
	require.Error(t, err)
}

// skewed wraps a valid layout and breaks one of its functions.
type skewed struct {
	layout.Layout
	base func(lane uint32) wmma.MatrixCoord
	inc  func(iteration uint32) wmma.MatrixCoord
}

func (s skewed) BaseOffset(lane uint32) wmma.MatrixCoord {
	if s.base != nil {
		return s.base(lane)
	}
	return s.Layout.BaseOffset(lane)
}

func (s skewed) IncrementalOffset(iteration uint32) wmma.MatrixCoord {
	if s.inc != nil {
		return s.inc(iteration)
	}
	return s.Layout.IncrementalOffset(iteration)
}

func TestCoverageDetectsProblems(t *testing.T) {
	w := newWave(t, 64)
	valid := layout.MustBuild(layout.ColInline, gfx90a, 2,
		layout.Config{BlockDim: 256, BlockK: 4, VectorWidth: 1, MaxVectorWidth: 2})

	report, err := w.Coverage(valid)
	require.NoError(t, err)
	require.True(t, report.OK())
	require.NoError(t, report.Err())
	require.Equal(t, 1024, report.Covered)

	// Lanes 0 and 1 read the same chunk: overlaps and gaps.
	collide := skewed{Layout: valid, base: func(lane uint32) wmma.MatrixCoord {
		return valid.BaseOffset(lane &^ 1)
	}}
	report, err = w.Coverage(collide)
	require.NoError(t, err)
	require.False(t, report.OK())
	require.Equal(t, 512, report.NumOverlaps)
	require.Equal(t, 512, report.NumGaps)
	require.Len(t, report.Gaps, MaxRecorded)
	require.Len(t, report.Overlaps, MaxRecorded)
	require.ErrorContains(t, report.Err(), "512 overlaps")

	// Shifting every lane by one row pushes the last lane past the tile.
	shifted := skewed{Layout: valid, base: func(lane uint32) wmma.MatrixCoord {
		return valid.BaseOffset(lane).Add(wmma.Coord(1, 0))
	}}
	report, err = w.Coverage(shifted)
	require.NoError(t, err)
	require.Positive(t, report.NumOutOfBounds)
	require.ErrorContains(t, report.Err(), "out-of-bounds")
}

func TestCheckConsistency(t *testing.T) {
	valid := layout.MustBuild(layout.RowOrtho, gfx90a, 2,
		layout.Config{BlockDim: 16, BlockK: 32, VectorWidth: 2, MaxVectorWidth: 4})
	require.NoError(t, CheckConsistency(valid))

	broken := skewed{Layout: valid, inc: func(iteration uint32) wmma.MatrixCoord {
		return valid.IncrementalOffset(iteration).Add(wmma.Coord(0, 1))
	}}
	require.ErrorContains(t, CheckConsistency(broken), "CumulativeOffset(1)")

	w := newWave(t, 64)
	_, err := w.Verify(broken)
	require.Error(t, err)
}

func TestVerify(t *testing.T) {
	w := newWave(t, 64)
	for _, kind := range layout.Kinds {
		l := layout.MustBuild(kind, gfx90a, 4,
			layout.Config{BlockDim: 512, BlockK: 16, VectorWidth: 4, MaxVectorWidth: 8})
		report, err := w.Verify(l)
		require.NoError(t, err, kind)
		require.Equal(t, kind, report.Kind)
		require.Equal(t, uint64(512*16), report.Accesses)
	}
}
