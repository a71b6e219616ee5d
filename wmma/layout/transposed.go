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
	"github.com/ajroetker/go-wavelayout/wmma"
)

// Transposed is a column layout with the two axes exchanged.
//
// Every method forwards to the wrapped layout and transposes its result, so
// a row layout cannot drift from the column layout it is derived from.
type Transposed[C Layout] struct {
	col C
}

// RowOrthoVW is ColOrthoVW with BlockDim on the second axis.
type RowOrthoVW = Transposed[*ColOrthoVW]

// RowInlineVW is ColInlineVW with BlockDim on the second axis.
type RowInlineVW = Transposed[*ColInlineVW]

var (
	_ Layout = (*RowOrthoVW)(nil)
	_ Layout = (*RowInlineVW)(nil)
)

// Transpose wraps a layout, exchanging its axes.
func Transpose[C Layout](col C) *Transposed[C] {
	return &Transposed[C]{col: col}
}

// NewRowOrthoVW builds a RowOrthoVW for the given traits.
func NewRowOrthoVW(io wmma.IOTraits, maxVectorWidth uint32) (*RowOrthoVW, error) {
	col, err := NewColOrthoVW(io, maxVectorWidth)
	if err != nil {
		return nil, err
	}
	return Transpose(col), nil
}

// NewRowInlineVW builds a RowInlineVW for the given traits.
func NewRowInlineVW(io wmma.IOTraits, maxVectorWidth uint32) (*RowInlineVW, error) {
	col, err := NewColInlineVW(io, maxVectorWidth)
	if err != nil {
		return nil, err
	}
	return Transpose(col), nil
}

// Unwrap returns the column layout.
func (t *Transposed[C]) Unwrap() C {
	return t.col
}

// BaseOffset returns the transposed base offset of the column layout.
func (t *Transposed[C]) BaseOffset(lane uint32) wmma.MatrixCoord {
	return t.col.BaseOffset(lane).Transpose()
}

// IncrementalOffset returns the transposed incremental offset of the column layout.
func (t *Transposed[C]) IncrementalOffset(iteration uint32) wmma.MatrixCoord {
	return t.col.IncrementalOffset(iteration).Transpose()
}

// CumulativeOffset returns the transposed cumulative offset of the column layout.
func (t *Transposed[C]) CumulativeOffset(iteration uint32) wmma.MatrixCoord {
	return t.col.CumulativeOffset(iteration).Transpose()
}

// Kind returns the transposed kind of the column layout.
func (t *Transposed[C]) Kind() Kind { return t.col.Kind().Transposed() }

// IOTraits returns the traits the layout was built from.
func (t *Transposed[C]) IOTraits() wmma.IOTraits { return t.col.IOTraits() }

// MaxVectorWidth returns the largest vector width of the tile shape.
func (t *Transposed[C]) MaxVectorWidth() uint32 { return t.col.MaxVectorWidth() }

// Iterations returns the number of iterations each lane performs.
func (t *Transposed[C]) Iterations() uint32 { return t.col.Iterations() }

// Shape returns (BlockK, BlockDim).
func (t *Transposed[C]) Shape() wmma.MatrixCoord { return t.col.Shape().Transpose() }

// VectorStep returns the transposed vector step of the column layout.
func (t *Transposed[C]) VectorStep() wmma.MatrixCoord { return t.col.VectorStep().Transpose() }
