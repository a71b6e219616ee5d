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
	"github.com/x448/float16"
)

var (
	cdna = wmma.MustParseTarget("gfx90a")
	rdna = wmma.MustParseTarget("gfx1100")
)

func coords(pairs ...int32) []wmma.MatrixCoord {
	out := make([]wmma.MatrixCoord, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, wmma.Coord(pairs[i], pairs[i+1]))
	}
	return out
}

// laneSequence returns BaseOffset(lane) + CumulativeOffset(i) for all iterations.
func laneSequence(l Layout, lane uint32) []wmma.MatrixCoord {
	var seq []wmma.MatrixCoord
	for _, c := range CumulativeOffsets(l, lane) {
		seq = append(seq, c)
	}
	return seq
}

func mustColOrtho(t *testing.T, target wmma.Target, cfg Config) *ColOrthoVW {
	t.Helper()
	io, err := cfg.IOTraits(target, wmma.ElementSize[float16.Float16]())
	require.NoError(t, err)
	l, err := NewColOrthoVW(io, cfg.MaxVectorWidth)
	require.NoError(t, err)
	return l
}

func TestColOrthoLargeDim(t *testing.T) {
	l := mustColOrtho(t, cdna, Config{BlockDim: 128, BlockK: 8, VectorWidth: 2, MaxVectorWidth: 4})

	traits := l.Traits()
	require.True(t, traits.LargeDim)
	require.Equal(t, uint32(64), traits.WaveSize)
	require.Equal(t, uint32(2), traits.BlockDimSegs)
	require.Equal(t, uint32(2), traits.VWSegs)
	require.Equal(t, uint32(8), l.Iterations())

	require.Equal(t, coords(0, 0, 0, 2, 64, 0, 64, 2, 0, 4, 0, 6, 64, 4, 64, 6), laneSequence(l, 0))
	require.Equal(t, coords(5, 0, 5, 2, 69, 0, 69, 2, 5, 4, 5, 6, 69, 4, 69, 6), laneSequence(l, 5))

	// Lane ids wrap around the wave.
	require.Equal(t, l.BaseOffset(3), l.BaseOffset(67))

	wantIncrements := coords(0, 2, 64, -2, 0, 2, -64, 2, 0, 2, 64, -2, 0, 2)
	for i, want := range wantIncrements {
		require.Equal(t, want, l.IncrementalOffset(uint32(i)), "IncrementalOffset(%d)", i)
	}
}

func TestColOrthoSmallDim(t *testing.T) {
	l := mustColOrtho(t, cdna, Config{BlockDim: 16, BlockK: 32, VectorWidth: 2, MaxVectorWidth: 4})

	traits := l.Traits()
	require.False(t, traits.LargeDim)
	require.Equal(t, uint32(16), traits.MaxKPerIO)
	require.Equal(t, uint32(4), traits.WaveSegs)
	require.Equal(t, uint32(4), l.Iterations())

	require.Equal(t, wmma.Coord(1, 4), l.BaseOffset(17))
	require.Equal(t, wmma.Coord(15, 12), l.BaseOffset(63))
	require.Equal(t, coords(0, 0, 0, 2, 0, 16, 0, 18), laneSequence(l, 0))
	require.Equal(t, coords(1, 4, 1, 6, 1, 20, 1, 22), laneSequence(l, 17))
	require.Equal(t, wmma.Coord(0, 14), l.IncrementalOffset(1))
}

func TestColOrthoVectorWidthEqualsMax(t *testing.T) {
	l := mustColOrtho(t, rdna, Config{BlockDim: 32, BlockK: 8, VectorWidth: 4, MaxVectorWidth: 4})
	require.True(t, l.Traits().LargeDim)
	require.Equal(t, uint32(1), l.Traits().VWSegs)
	require.Equal(t, coords(7, 0, 7, 4), laneSequence(l, 7))
	require.Equal(t, wmma.Coord(0, 4), l.IncrementalOffset(0))
}

func TestColOrthoRejects(t *testing.T) {
	for _, cfg := range []Config{
		{BlockDim: 128, BlockK: 8, VectorWidth: 4, MaxVectorWidth: 2},           // VW > MaxVW
		{BlockDim: 128, BlockK: 8, VectorWidth: 2, MaxVectorWidth: 3},           // MaxVW not a power of two
		{BlockDim: 128, BlockK: 2, VectorWidth: 1, MaxVectorWidth: 4},           // BlockK < MaxVW
		{BlockDim: 16, BlockK: 8, VectorWidth: 2, MaxVectorWidth: 4},            // BlockK < MaxKPerIO
		{BlockDim: 1, BlockK: 1 << 30, VectorWidth: 1, MaxVectorWidth: 1 << 30}, // WaveSize × MaxVW wraps uint32
		{BlockDim: 65536, BlockK: 65536, VectorWidth: 1, MaxVectorWidth: 1},     // element count wraps uint32
		{BlockDim: 1 << 31, BlockK: 2, VectorWidth: 1, MaxVectorWidth: 1},       // Shape would be negative
	} {
		_, err := Build(ColOrtho, cdna, 2, cfg)
		require.ErrorIs(t, err, wmma.ErrInvalidConfig, "config %s", cfg)
	}
}
