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
	"fmt"
	"strings"

	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/pkg/errors"
)

// Config is the fixed parameter set of a layout. All values are positive
// powers of two and VectorWidth <= MaxVectorWidth.
type Config struct {
	BlockDim       uint32
	BlockK         uint32
	VectorWidth    uint32
	MaxVectorWidth uint32
}

// String implements fmt.Stringer.
func (c Config) String() string {
	return fmt.Sprintf("%dx%d vw=%d/%d", c.BlockDim, c.BlockK, c.VectorWidth, c.MaxVectorWidth)
}

// IOTraits returns the I/O traits of the configuration for elements of
// elementSize bytes on target.
func (c Config) IOTraits(target wmma.Target, elementSize uint32) (wmma.IOTraits, error) {
	return wmma.NewIOTraits(target, elementSize, c.BlockDim, c.BlockK, c.VectorWidth)
}

// checkVectorWidths validates the parameters shared by all generators.
func checkVectorWidths(io wmma.IOTraits, maxVectorWidth uint32) error {
	if !wmma.IsPow2(maxVectorWidth) {
		return errors.Wrapf(wmma.ErrInvalidConfig, "MaxVectorWidth=%d must be a positive power of two", maxVectorWidth)
	}
	if io.VectorWidth > maxVectorWidth {
		return errors.Wrapf(wmma.ErrInvalidConfig, "VectorWidth=%d exceeds MaxVectorWidth=%d", io.VectorWidth, maxVectorWidth)
	}
	if uint64(io.ThreadsPerIO)*uint64(maxVectorWidth) > uint64(io.ElementCount) {
		return errors.Wrapf(wmma.ErrInvalidConfig, "one %d-lane access of MaxVectorWidth=%d exceeds the %d-element tile",
			io.ThreadsPerIO, maxVectorWidth, io.ElementCount)
	}
	if !wmma.IsPow2(io.ThreadsPerIO) {
		return errors.Wrapf(wmma.ErrInvalidConfig, "wave size %d must be a power of two", io.ThreadsPerIO)
	}
	return nil
}

// Kind enumerates the layout generators.
type Kind int

const (
	// ColOrtho selects ColOrthoVW.
	ColOrtho Kind = iota

	// ColInline selects ColInlineVW.
	ColInline

	// RowOrtho selects RowOrthoVW, the transpose of ColOrthoVW.
	RowOrtho

	// RowInline selects RowInlineVW, the transpose of ColInlineVW.
	RowInline
)

// Kinds lists all layout kinds.
var Kinds = []Kind{ColOrtho, ColInline, RowOrtho, RowInline}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	switch k {
	case ColOrtho:
		return "col_ortho"
	case ColInline:
		return "col_inline"
	case RowOrtho:
		return "row_ortho"
	case RowInline:
		return "row_inline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TypeName returns the Go type implementing the kind, e.g. "ColOrthoVW".
func (k Kind) TypeName() string {
	switch k {
	case ColOrtho:
		return "ColOrthoVW"
	case ColInline:
		return "ColInlineVW"
	case RowOrtho:
		return "RowOrthoVW"
	case RowInline:
		return "RowInlineVW"
	default:
		return k.String()
	}
}

// IsRow reports whether the kind is one of the transposed generators.
func (k Kind) IsRow() bool {
	return k == RowOrtho || k == RowInline
}

// IsInline reports whether vectors extend along BlockDim.
func (k Kind) IsInline() bool {
	return k == ColInline || k == RowInline
}

// Transposed returns the kind with the axes exchanged: ColOrtho <-> RowOrtho
// and ColInline <-> RowInline.
func (k Kind) Transposed() Kind {
	switch k {
	case ColOrtho:
		return RowOrtho
	case RowOrtho:
		return ColOrtho
	case ColInline:
		return RowInline
	case RowInline:
		return ColInline
	default:
		return k
	}
}

// ParseKind accepts the String or TypeName forms, case-insensitive, with
// '-' or '_' separators ("col-ortho", "ColOrthoVW", "row_inline").
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	normalized = strings.TrimSuffix(normalized, "vw")
	for _, k := range Kinds {
		if strings.ReplaceAll(k.String(), "_", "") == normalized {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown layout kind %q", s)
}

// DataLayout is the order of the matrix in memory.
type DataLayout int

const (
	// RowMajor stores rows contiguously.
	RowMajor DataLayout = iota

	// ColMajor stores columns contiguously.
	ColMajor
)

// String implements fmt.Stringer.
func (d DataLayout) String() string {
	if d == ColMajor {
		return "col_major"
	}
	return "row_major"
}

// Orientation is the axis lanes are aligned with.
type Orientation int

const (
	// ColNT aligns contiguous lanes with matrix columns (BlockDim on the first axis).
	ColNT Orientation = iota

	// RowNT aligns contiguous lanes with matrix rows (BlockDim on the second axis).
	RowNT
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == RowNT {
		return "row_nt"
	}
	return "col_nt"
}

// Select returns the generator serving an orientation and a data layout.
//
// Vectors must extend along the contiguous axis in memory: for ColNT that is
// BlockK when the data is row-major (orthogonal to the lanes) and BlockDim when
// it is column-major (inline with the lanes). RowNT is the transpose.
func Select(orientation Orientation, data DataLayout) Kind {
	switch {
	case orientation == ColNT && data == RowMajor:
		return ColOrtho
	case orientation == ColNT:
		return ColInline
	case data == ColMajor:
		return RowOrtho
	default:
		return RowInline
	}
}
