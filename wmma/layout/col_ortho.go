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

// OrthoTraits are the constants ColOrthoVW derives from its parameters.
type OrthoTraits struct {
	// WaveSize is the number of lanes per wave (IOTraits.ThreadsPerIO).
	WaveSize uint32

	// MaxKPerIO is the number of BlockK columns one wave access of
	// MaxVectorWidth covers (0 when LargeDim).
	MaxKPerIO uint32

	// LargeDim is set when BlockDim >= WaveSize: every lane owns a distinct row.
	LargeDim bool

	// BlockDimSegs is the number of wave-sized segments of BlockDim (0 unless LargeDim).
	BlockDimSegs uint32

	// VWSegs is MaxVectorWidth / VectorWidth.
	VWSegs uint32

	// WaveSegs is the number of BlockDim-tall lane groups in a wave (0 when LargeDim).
	WaveSegs uint32

	Log2BlockDim     uint32
	Log2MaxKPerIO    uint32
	Log2MaxVW        uint32
	Log2VW           uint32
	Log2WaveSize     uint32
	Log2BlockDimSegs uint32
	Log2VWSegs       uint32
	Log2WaveSegs     uint32
}

func newOrthoTraits(io wmma.IOTraits, maxVectorWidth uint32) OrthoTraits {
	wave := io.ThreadsPerIO
	t := OrthoTraits{
		WaveSize:     wave,
		MaxKPerIO:    wave * maxVectorWidth / io.BlockDim,
		LargeDim:     io.BlockDim >= wave,
		BlockDimSegs: io.BlockDim / wave,
		VWSegs:       maxVectorWidth / io.VectorWidth,
		WaveSegs:     wave / io.BlockDim,
	}
	t.Log2BlockDim = wmma.Log2(io.BlockDim)
	t.Log2MaxKPerIO = wmma.Log2(t.MaxKPerIO)
	t.Log2MaxVW = wmma.Log2(maxVectorWidth)
	t.Log2VW = wmma.Log2(io.VectorWidth)
	t.Log2WaveSize = wmma.Log2(wave)
	t.Log2BlockDimSegs = wmma.Log2(t.BlockDimSegs)
	t.Log2VWSegs = wmma.Log2(t.VWSegs)
	t.Log2WaveSegs = wmma.Log2(t.WaveSegs)
	return t
}

// ColOrthoVW is the orthogonal column layout: lane i owns row i mod WaveSize
// of its BlockDim segment and reads VectorWidth consecutive BlockK columns.
//
// Iterations first fill MaxVectorWidth columns (the minor cycle of VWSegs
// iterations), then move to the next BlockDim segment (the major cycle of
// VWSegs × BlockDimSegs iterations), then advance along BlockK.
//
// For WaveSize=64, a 128×8 tile, VectorWidth=2 and MaxVectorWidth=4, lane 0
// visits (0,0) (0,2) (64,0) (64,2) (0,4) (0,6) (64,4) (64,6).
type ColOrthoVW struct {
	io             wmma.IOTraits
	maxVectorWidth uint32
	traits         OrthoTraits
	regime         regime
}

var _ Layout = (*ColOrthoVW)(nil)

// NewColOrthoVW builds a ColOrthoVW for the given traits.
func NewColOrthoVW(io wmma.IOTraits, maxVectorWidth uint32) (*ColOrthoVW, error) {
	if err := checkVectorWidths(io, maxVectorWidth); err != nil {
		return nil, err
	}
	t := newOrthoTraits(io, maxVectorWidth)
	l := &ColOrthoVW{io: io, maxVectorWidth: maxVectorWidth, traits: t}
	if t.LargeDim {
		if io.BlockK%maxVectorWidth != 0 {
			return nil, errors.Wrapf(wmma.ErrInvalidConfig,
				"ColOrthoVW: BlockK=%d must be a multiple of MaxVectorWidth=%d", io.BlockK, maxVectorWidth)
		}
		l.regime = newOrthoLargeDim(io, maxVectorWidth, t)
	} else {
		if io.BlockK%t.MaxKPerIO != 0 {
			return nil, errors.Wrapf(wmma.ErrInvalidConfig,
				"ColOrthoVW: BlockK=%d must be a multiple of the %d columns a wave covers per access",
				io.BlockK, t.MaxKPerIO)
		}
		l.regime = newOrthoSmallDim(io, maxVectorWidth, t)
	}
	return l, nil
}

// BaseOffset returns the coordinate of lane at iteration 0.
func (l *ColOrthoVW) BaseOffset(lane uint32) wmma.MatrixCoord {
	return l.regime.baseOffset(lane)
}

// IncrementalOffset returns the displacement from iteration to iteration+1.
func (l *ColOrthoVW) IncrementalOffset(iteration uint32) wmma.MatrixCoord {
	return l.regime.incrementalOffset(iteration)
}

// CumulativeOffset returns the displacement from iteration 0 to iteration.
func (l *ColOrthoVW) CumulativeOffset(iteration uint32) wmma.MatrixCoord {
	return l.regime.cumulativeOffset(iteration)
}

// Traits returns the derived constants.
func (l *ColOrthoVW) Traits() OrthoTraits { return l.traits }

// Kind returns ColOrtho.
func (l *ColOrthoVW) Kind() Kind { return ColOrtho }

// IOTraits returns the traits the layout was built from.
func (l *ColOrthoVW) IOTraits() wmma.IOTraits { return l.io }

// MaxVectorWidth returns the largest vector width of the tile shape.
func (l *ColOrthoVW) MaxVectorWidth() uint32 { return l.maxVectorWidth }

// Iterations returns the number of iterations each lane performs.
func (l *ColOrthoVW) Iterations() uint32 { return l.io.IOCount }

// Shape returns (BlockDim, BlockK).
func (l *ColOrthoVW) Shape() wmma.MatrixCoord {
	return wmma.Coord(int32(l.io.BlockDim), int32(l.io.BlockK))
}

// VectorStep returns (0, 1): vectors extend along BlockK.
func (l *ColOrthoVW) VectorStep() wmma.MatrixCoord { return wmma.Coord(0, 1) }

// orthoLargeDim serves BlockDim >= WaveSize.
type orthoLargeDim struct {
	waveMask uint32

	// X steps WaveSize at each minor wrap and rewinds BlockDim at each major wrap.
	incXMinorStep int32
	incXMajorStep int32

	// Y steps VectorWidth and rewinds MaxVectorWidth at minor wraps that are
	// not major wraps.
	incYMinorStep int32
	incYMajorStep int32

	vwSegsModMask    uint32
	totalSegsModMask uint32

	blockDimSegsModMask uint32
	log2VWSegs          uint32
	log2TotalSegs       uint32
	log2WaveSize        uint32
	log2MaxVW           uint32
	log2VW              uint32
}

func newOrthoLargeDim(io wmma.IOTraits, maxVectorWidth uint32, t OrthoTraits) orthoLargeDim {
	return orthoLargeDim{
		waveMask:            t.WaveSize - 1,
		incXMinorStep:       int32(t.WaveSize),
		incXMajorStep:       -int32(io.BlockDim),
		incYMinorStep:       int32(io.VectorWidth),
		incYMajorStep:       -int32(maxVectorWidth),
		vwSegsModMask:       wmma.LsbMask(t.Log2VWSegs),
		totalSegsModMask:    wmma.LsbMask(t.Log2VWSegs + t.Log2BlockDimSegs),
		blockDimSegsModMask: wmma.LsbMask(t.Log2BlockDimSegs),
		log2VWSegs:          t.Log2VWSegs,
		log2TotalSegs:       t.Log2VWSegs + t.Log2BlockDimSegs,
		log2WaveSize:        t.Log2WaveSize,
		log2MaxVW:           t.Log2MaxVW,
		log2VW:              t.Log2VW,
	}
}

func (r orthoLargeDim) baseOffset(lane uint32) wmma.MatrixCoord {
	return wmma.Coord(int32(lane&r.waveMask), 0)
}

func (r orthoLargeDim) incrementalOffset(iteration uint32) wmma.MatrixCoord {
	minorStepMask := wmma.StepMask(iteration+1, r.vwSegsModMask)
	majorStepMask := wmma.StepMask(iteration+1, r.totalSegsModMask)
	return wmma.Coord(
		r.incXMinorStep&minorStepMask+r.incXMajorStep&majorStepMask,
		r.incYMinorStep+(minorStepMask^majorStepMask)&r.incYMajorStep)
}

func (r orthoLargeDim) cumulativeOffset(iteration uint32) wmma.MatrixCoord {
	// X = iteration / VWSegs % BlockDimSegs * WaveSize
	// Y = iteration / (VWSegs * BlockDimSegs) * MaxVW + iteration % VWSegs * VW
	x := (iteration >> r.log2VWSegs & r.blockDimSegsModMask) << r.log2WaveSize
	y := (iteration>>r.log2TotalSegs)<<r.log2MaxVW + (iteration&r.vwSegsModMask)<<r.log2VW
	return wmma.Coord(int32(x), int32(y))
}

// orthoSmallDim serves BlockDim < WaveSize: the wave spans WaveSegs groups of
// BlockDim lanes, each group starting MaxVectorWidth columns after the last.
type orthoSmallDim struct {
	blockDimMask  uint32
	log2BlockDim  uint32
	log2MaxVW     uint32
	maxKPerIOMask uint32

	incYMinorStep int32
	incYMajorStep int32
	vwSegsModMask uint32

	log2VWSegs    uint32
	log2MaxKPerIO uint32
	log2VW        uint32
}

func newOrthoSmallDim(io wmma.IOTraits, maxVectorWidth uint32, t OrthoTraits) orthoSmallDim {
	return orthoSmallDim{
		blockDimMask:  io.BlockDim - 1,
		log2BlockDim:  t.Log2BlockDim,
		log2MaxVW:     t.Log2MaxVW,
		maxKPerIOMask: t.MaxKPerIO - 1,
		incYMinorStep: int32(io.VectorWidth),
		incYMajorStep: int32(maxVectorWidth * (t.WaveSegs - 1)),
		vwSegsModMask: wmma.LsbMask(t.Log2VWSegs),
		log2VWSegs:    t.Log2VWSegs,
		log2MaxKPerIO: t.Log2MaxKPerIO,
		log2VW:        t.Log2VW,
	}
}

func (r orthoSmallDim) baseOffset(lane uint32) wmma.MatrixCoord {
	return wmma.Coord(
		int32(lane&r.blockDimMask),
		int32((lane>>r.log2BlockDim)<<r.log2MaxVW&r.maxKPerIOMask))
}

func (r orthoSmallDim) incrementalOffset(iteration uint32) wmma.MatrixCoord {
	// Every step moves VW columns; leaving a MaxVW segment also skips the
	// segments of the other WaveSegs - 1 lane groups.
	majorStepMask := wmma.StepMask(iteration+1, r.vwSegsModMask)
	return wmma.Coord(0, r.incYMinorStep+majorStepMask&r.incYMajorStep)
}

func (r orthoSmallDim) cumulativeOffset(iteration uint32) wmma.MatrixCoord {
	// Y = iteration / VWSegs * MaxKPerIO + iteration % VWSegs * VW
	y := (iteration>>r.log2VWSegs)<<r.log2MaxKPerIO + (iteration&r.vwSegsModMask)<<r.log2VW
	return wmma.Coord(0, int32(y))
}
