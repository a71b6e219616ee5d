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

func TestTransposedMatchesColumnLayout(t *testing.T) {
	configs := []Config{
		{BlockDim: 128, BlockK: 8, VectorWidth: 2, MaxVectorWidth: 4},
		{BlockDim: 256, BlockK: 4, VectorWidth: 1, MaxVectorWidth: 2},
		{BlockDim: 32, BlockK: 16, VectorWidth: 2, MaxVectorWidth: 4},
		{BlockDim: 16, BlockK: 32, VectorWidth: 2, MaxVectorWidth: 4},
	}
	pairs := []struct{ row, col Kind }{
		{RowOrtho, ColOrtho},
		{RowInline, ColInline},
	}
	for _, target := range []wmma.Target{cdna, rdna} {
		for _, cfg := range configs {
			for _, pair := range pairs {
				col, err := Build(pair.col, target, 2, cfg)
				if err != nil {
					continue
				}
				row, err := Build(pair.row, target, 2, cfg)
				require.NoError(t, err, "%s valid but %s rejected", pair.col, pair.row)

				require.Equal(t, pair.row, row.Kind())
				require.Equal(t, col.Iterations(), row.Iterations())
				require.Equal(t, col.Shape().Transpose(), row.Shape())
				require.Equal(t, col.VectorStep().Transpose(), row.VectorStep())
				for lane := range target.WaveSize() {
					require.Equal(t, col.BaseOffset(lane).Transpose(), row.BaseOffset(lane))
				}
				for i := range col.Iterations() {
					require.Equal(t, col.CumulativeOffset(i).Transpose(), row.CumulativeOffset(i))
					require.Equal(t, col.IncrementalOffset(i).Transpose(), row.IncrementalOffset(i))
				}
			}
		}
	}
}

func TestTransposeUnwrap(t *testing.T) {
	io, err := wmma.NewIOTraits(cdna, 2, 128, 8, 2)
	require.NoError(t, err)
	row, err := NewRowOrthoVW(io, 4)
	require.NoError(t, err)
	require.Equal(t, ColOrtho, row.Unwrap().Kind())
	require.Equal(t, uint32(4), row.MaxVectorWidth())
	require.Equal(t, io, row.IOTraits())

	// Transposing a row layout again restores the column coordinates.
	back := Transpose(row)
	require.Equal(t, ColOrtho, back.Kind())
	require.Equal(t, row.Unwrap().BaseOffset(9), back.BaseOffset(9))

	_, err = NewRowInlineVW(io, 1)
	require.ErrorIs(t, err, wmma.ErrInvalidConfig)
}
