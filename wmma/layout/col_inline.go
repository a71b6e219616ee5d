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
	"github.com/pkg/errors"
)

// InlineTraits are the constants ColInlineVW derives from its parameters.
type InlineTraits struct {
	// WaveSize is the number of lanes per wave (IOTraits.ThreadsPerIO).
	WaveSize uint32

	// MaxElementsPerIO is the number of elements one wave access of
	// MaxVectorWidth covers.
	MaxElementsPerIO uint32

	// MaxKPerIO is the number of BlockK columns one wave access covers (0 when LargeDim).
	MaxKPerIO uint32

	// LargeDim is set when BlockDim >= MaxElementsPerIO.
	LargeDim bool

	// BlockDimSegs is the number of MaxElementsPerIO segments of BlockDim (0 unless LargeDim).
	BlockDimSegs uint32

	// VWSegs is MaxVectorWidth / VectorWidth.
	VWSegs uint32

	Log2BlockDim         uint32
	Log2MaxElementsPerIO uint32
	Log2MaxKPerIO        uint32
	Log2MaxVW            uint32
	Log2VW               uint32
	Log2WaveSize         uint32
	Log2BlockDimSegs     uint32
	Log2VWSegs           uint32
}

func newInlineTraits(io wmma.IOTraits, maxVectorWidth uint32) InlineTraits {
	wave := io.ThreadsPerIO
	t := InlineTraits{
		WaveSize:         wave,
		MaxElementsPerIO: wave * maxVectorWidth,
		VWSegs:           maxVectorWidth / io.VectorWidth,
	}
	t.MaxKPerIO = t.MaxElementsPerIO / io.BlockDim
	t.LargeDim = io.BlockDim >= t.MaxElementsPerIO
	t.BlockDimSegs = io.BlockDim / t.MaxElementsPerIO
	t.Log2BlockDim = wmma.Log2(io.BlockDim)
	t.Log2MaxElementsPerIO = wmma.Log2(t.MaxElementsPerIO)
	t.Log2MaxKPerIO = wmma.Log2(t.MaxKPerIO)
	t.Log2MaxVW = wmma.Log2(maxVectorWidth)
	t.Log2VW = wmma.Log2(io.VectorWidth)
	t.Log2WaveSize = wmma.Log2(wave)
	t.Log2BlockDimSegs = wmma.Log2(t.BlockDimSegs)
	t.Log2VWSegs = wmma.Log2(t.VWSegs)
	return t
}

// ColInlineVW is the inline column layout: each lane owns MaxVectorWidth
// contiguous BlockDim elements and reads them VectorWidth at a time.
//
// Iterations first walk the MaxVectorWidth chunk (minor cycle of VWSegs
// iterations), then move to the next MaxElementsPerIO segment of BlockDim
// (major cycle of VWSegs × BlockDimSegs iterations), then advance one BlockK
// column. When BlockDim is shorter than a wave access, the wave covers
// MaxKPerIO columns at once and the major step moves MaxKPerIO columns.
//
// For WaveSize=64, a 256×4 tile, VectorWidth=1 and MaxVectorWidth=2, lane 0
// visits (0,0) (1,0) (128,0) (129,0) (0,1) (1,1) ... (129,3).
type ColInlineVW struct {
	io             wmma.IOTraits
	maxVectorWidth uint32
	traits         InlineTraits
	regime         regime
}

var _ Layout = (*ColInlineVW)(nil)

// NewColInlineVW builds a ColInlineVW for the given traits.
//
// BlockK must be a non-zero multiple of MaxVectorWidth, and so must BlockDim.
func NewColInlineVW(io wmma.IOTraits, maxVectorWidth uint32) (*ColInlineVW, error) {
	if err := checkVectorWidths(io, maxVectorWidth); err != nil {
		return nil, err
	}
	if io.BlockK < maxVectorWidth {
		return nil, errors.Wrapf(wmma.ErrInvalidConfig,
			"ColInlineVW: BlockK=%d must be at least MaxVectorWidth=%d", io.BlockK, maxVectorWidth)
	}
	if io.BlockK%maxVectorWidth != 0 {
		return nil, errors.Wrapf(wmma.ErrInvalidConfig,
			"ColInlineVW: BlockK=%d must be a multiple of MaxVectorWidth=%d", io.BlockK, maxVectorWidth)
	}
	if io.BlockDim%maxVectorWidth != 0 {
		return nil, errors.Wrapf(wmma.ErrInvalidConfig,
			"ColInlineVW: BlockDim=%d must be a multiple of MaxVectorWidth=%d", io.BlockDim, maxVectorWidth)
	}
	t := newInlineTraits(io, maxVectorWidth)
	l := &ColInlineVW{io: io, maxVectorWidth: maxVectorWidth, traits: t}
	if t.LargeDim {
		l.regime = newInlineLargeDim(io, maxVectorWidth, t)
	} else {
		if io.BlockK%t.MaxKPerIO != 0 {
			return nil, errors.Wrapf(wmma.ErrInvalidConfig,
				"ColInlineVW: BlockK=%d must be a multiple of the %d columns a wave covers per access",
				io.BlockK, t.MaxKPerIO)
		}
		l.regime = newInlineSmallDim(io, maxVectorWidth, t)
	}
	return l, nil
}

// BaseOffset returns the coordinate of lane at iteration 0.
func (l *ColInlineVW) BaseOffset(lane uint32) wmma.MatrixCoord {
	return l.regime.baseOffset(lane)
}

// IncrementalOffset returns the displacement from iteration to iteration+1.
func (l *ColInlineVW) IncrementalOffset(iteration uint32) wmma.MatrixCoord {
	return l.regime.incrementalOffset(iteration)
}

// CumulativeOffset returns the displacement from iteration 0 to iteration.
func (l *ColInlineVW) CumulativeOffset(iteration uint32) wmma.MatrixCoord {
	return l.regime.cumulativeOffset(iteration)
}

// Traits returns the derived constants.
func (l *ColInlineVW) Traits() InlineTraits { return l.traits }

// Kind returns ColInline.
func (l *ColInlineVW) Kind() Kind { return ColInline }

// IOTraits returns the traits the layout was built from.
func (l *ColInlineVW) IOTraits() wmma.IOTraits { return l.io }

// MaxVectorWidth returns the largest vector width of the tile shape.
func (l *ColInlineVW) MaxVectorWidth() uint32 { return l.maxVectorWidth }

// Iterations returns the number of iterations each lane performs.
func (l *ColInlineVW) Iterations() uint32 { return l.io.IOCount }

// Shape returns (BlockDim, BlockK).
func (l *ColInlineVW) Shape() wmma.MatrixCoord {
	return wmma.Coord(int32(l.io.BlockDim), int32(l.io.BlockK))
}

// VectorStep returns (1, 0): vectors extend along BlockDim.
func (l *ColInlineVW) VectorStep() wmma.MatrixCoord { return wmma.Coord(1, 0) }

// inlineLargeDim serves BlockDim >= MaxElementsPerIO.
type inlineLargeDim struct {
	log2MaxVW            uint32
	maxElementsPerIOMask uint32

	// X walks VW inside the MaxVW chunk (x0), and MaxElementsPerIO across
	// BlockDim segments (x1). Y steps once per major cycle.
	incX0MinorStep int32
	incX0MajorStep int32
	incX1MinorStep int32
	incX1MajorStep int32
	incYMajorStep  int32

	vwSegsModMask    uint32
	totalSegsModMask uint32

	blockDimSegsModMask  uint32
	log2VWSegs           uint32
	log2TotalSegs        uint32
	log2MaxElementsPerIO uint32
	log2VW               uint32
}

func newInlineLargeDim(io wmma.IOTraits, maxVectorWidth uint32, t InlineTraits) inlineLargeDim {
	return inlineLargeDim{
		log2MaxVW:            t.Log2MaxVW,
		maxElementsPerIOMask: t.MaxElementsPerIO - 1,
		incX0MinorStep:       int32(io.VectorWidth),
		incX0MajorStep:       int32(maxVectorWidth),
		incX1MinorStep:       int32(t.MaxElementsPerIO),
		incX1MajorStep:       int32(io.BlockDim),
		incYMajorStep:        1,
		vwSegsModMask:        wmma.LsbMask(t.Log2VWSegs),
		totalSegsModMask:     wmma.LsbMask(t.Log2VWSegs + t.Log2BlockDimSegs),
		blockDimSegsModMask:  wmma.LsbMask(t.Log2BlockDimSegs),
		log2VWSegs:           t.Log2VWSegs,
		log2TotalSegs:        t.Log2VWSegs + t.Log2BlockDimSegs,
		log2MaxElementsPerIO: t.Log2MaxElementsPerIO,
		log2VW:               t.Log2VW,
	}
}

func (r inlineLargeDim) baseOffset(lane uint32) wmma.MatrixCoord {
	return wmma.Coord(int32(lane<<r.log2MaxVW&r.maxElementsPerIOMask), 0)
}

func (r inlineLargeDim) incrementalOffset(iteration uint32) wmma.MatrixCoord {
	vwSegsStepMask := wmma.StepMask(iteration+1, r.vwSegsModMask)
	totalSegsStepMask := wmma.StepMask(iteration+1, r.totalSegsModMask)
	return wmma.Coord(
		r.incX0MinorStep-vwSegsStepMask&r.incX0MajorStep+
			vwSegsStepMask&r.incX1MinorStep-totalSegsStepMask&r.incX1MajorStep,
		totalSegsStepMask&r.incYMajorStep)
}

func (r inlineLargeDim) cumulativeOffset(iteration uint32) wmma.MatrixCoord {
	// X = iteration / VWSegs % BlockDimSegs * MaxElementsPerIO + iteration % VWSegs * VW
	// Y = iteration / (VWSegs * BlockDimSegs)
	x := (iteration>>r.log2VWSegs&r.blockDimSegsModMask)<<r.log2MaxElementsPerIO +
		(iteration&r.vwSegsModMask)<<r.log2VW
	y := iteration >> r.log2TotalSegs
	return wmma.Coord(int32(x), int32(y))
}

// inlineSmallDim serves BlockDim < MaxElementsPerIO: one wave access covers
// MaxKPerIO whole columns.
type inlineSmallDim struct {
	log2MaxVW     uint32
	blockDimMask  uint32
	log2BlockDim  uint32
	maxKPerIOMask uint32

	incXMinorStep int32
	incXMajorStep int32
	incYMajorStep int32
	vwSegsModMask uint32

	log2VWSegs    uint32
	log2MaxKPerIO uint32
	log2VW        uint32
}

func newInlineSmallDim(io wmma.IOTraits, maxVectorWidth uint32, t InlineTraits) inlineSmallDim {
	return inlineSmallDim{
		log2MaxVW:     t.Log2MaxVW,
		blockDimMask:  io.BlockDim - 1,
		log2BlockDim:  t.Log2BlockDim,
		maxKPerIOMask: t.MaxKPerIO - 1,
		incXMinorStep: int32(io.VectorWidth),
		incXMajorStep: int32(maxVectorWidth),
		incYMajorStep: int32(t.MaxKPerIO),
		vwSegsModMask: wmma.LsbMask(t.Log2VWSegs),
		log2VWSegs:    t.Log2VWSegs,
		log2MaxKPerIO: t.Log2MaxKPerIO,
		log2VW:        t.Log2VW,
	}
}

func (r inlineSmallDim) baseOffset(lane uint32) wmma.MatrixCoord {
	element := lane << r.log2MaxVW
	return wmma.Coord(
		int32(element&r.blockDimMask),
		int32(element>>r.log2BlockDim&r.maxKPerIOMask))
}

func (r inlineSmallDim) incrementalOffset(iteration uint32) wmma.MatrixCoord {
	// X = VW, or VW - MaxVW when the chunk wraps; Y = MaxKPerIO when it wraps.
	majorStepMask := wmma.StepMask(iteration+1, r.vwSegsModMask)
	return wmma.Coord(
		r.incXMinorStep-majorStepMask&r.incXMajorStep,
		majorStepMask&r.incYMajorStep)
}

func (r inlineSmallDim) cumulativeOffset(iteration uint32) wmma.MatrixCoord {
	x := (iteration & r.vwSegsModMask) << r.log2VW
	y := (iteration >> r.log2VWSegs) << r.log2MaxKPerIO
	return wmma.Coord(int32(x), int32(y))
}
