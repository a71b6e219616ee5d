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

package layout

import (
	"testing"

	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/stretchr/testify/require"
)

func mustColInline(t *testing.T, target wmma.Target, cfg Config) *ColInlineVW {
	t.Helper()
	io, err := cfg.IOTraits(target, 4)
	require.NoError(t, err)
	l, err := NewColInlineVW(io, cfg.MaxVectorWidth)
	require.NoError(t, err)
	return l
}

func TestColInlineLargeDim(t *testing.T) {
	l := mustColInline(t, cdna, Config{BlockDim: 256, BlockK: 4, VectorWidth: 1, MaxVectorWidth: 2})

	traits := l.Traits()
	require.True(t, traits.LargeDim)
	require.Equal(t, uint32(128), traits.MaxElementsPerIO)
	require.Equal(t, uint32(2), traits.BlockDimSegs)
	require.Equal(t, uint32(2), traits.VWSegs)
	require.Equal(t, uint32(16), l.Iterations())

	require.Equal(t, coords(
		0, 0, 1, 0, 128, 0, 129, 0,
		0, 1, 1, 1, 128, 1, 129, 1,
		0, 2, 1, 2, 128, 2, 129, 2,
		0, 3, 1, 3, 128, 3, 129, 3), laneSequence(l, 0))
	require.Equal(t, wmma.Coord(2, 0), l.BaseOffset(1))
	require.Equal(t, wmma.Coord(126, 0), l.BaseOffset(63))

	wantIncrements := coords(1, 0, 127, 0, 1, 0, -129, 1)
	for i, want := range wantIncrements {
		require.Equal(t, want, l.IncrementalOffset(uint32(i)), "IncrementalOffset(%d)", i)
	}
}

func TestColInlineSingleSegment(t *testing.T) {
	// BlockDim == MaxElementsPerIO: one BlockDim segment, the major cycle
	// advances BlockK every VWSegs iterations.
	l := mustColInline(t, cdna, Config{BlockDim: 128, BlockK: 4, VectorWidth: 1, MaxVectorWidth: 2})
	require.True(t, l.Traits().LargeDim)
	require.Equal(t, uint32(1), l.Traits().BlockDimSegs)
	require.Equal(t, uint32(8), l.Iterations())
	require.Equal(t, coords(0, 0, 1, 0, 0, 1, 1, 1, 0, 2, 1, 2, 0, 3, 1, 3), laneSequence(l, 0))
}

func TestColInlineSmallDim(t *testing.T) {
	l := mustColInline(t, cdna, Config{BlockDim: 32, BlockK: 16, VectorWidth: 2, MaxVectorWidth: 4})

	traits := l.Traits()
	require.False(t, traits.LargeDim)
	require.Equal(t, uint32(8), traits.MaxKPerIO)
	require.Equal(t, uint32(4), l.Iterations())

	require.Equal(t, wmma.Coord(4, 1), l.BaseOffset(9))
	require.Equal(t, wmma.Coord(28, 7), l.BaseOffset(63))
	require.Equal(t, coords(4, 1, 6, 1, 4, 9, 6, 9), laneSequence(l, 9))
	require.Equal(t, wmma.Coord(-2, 8), l.IncrementalOffset(1))
}

func TestColInlineRejects(t *testing.T) {
	// BlockK=3 with MaxVectorWidth=2 never reaches a lane: it is rejected both
	// by the I/O traits and by the layout itself.
	_, err := Build(ColInline, cdna, 2, Config{BlockDim: 64, BlockK: 3, VectorWidth: 1, MaxVectorWidth: 2})
	require.ErrorIs(t, err, wmma.ErrInvalidConfig)

	io := wmma.IOTraits{BlockDim: 64, BlockK: 3, VectorWidth: 1, ElementSize: 2, ThreadsPerIO: 64, ElementCount: 192, IOCount: 3}
	_, err = NewColInlineVW(io, 2)
	require.ErrorIs(t, err, wmma.ErrInvalidConfig)
	require.ErrorContains(t, err, "multiple of MaxVectorWidth")

	for _, cfg := range []Config{
		{BlockDim: 256, BlockK: 1, VectorWidth: 1, MaxVectorWidth: 2}, // BlockK < MaxVW
		{BlockDim: 32, BlockK: 4, VectorWidth: 1, MaxVectorWidth: 4},  // BlockK < MaxKPerIO
		{BlockDim: 2, BlockK: 256, VectorWidth: 1, MaxVectorWidth: 4}, // BlockDim < MaxVW
	} {
		_, err := Build(ColInline, cdna, 2, cfg)
		require.ErrorIs(t, err, wmma.ErrInvalidConfig, "config %s", cfg)
	}
}
