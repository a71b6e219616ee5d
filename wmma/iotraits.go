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

package wmma

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// registerBytes is the width of one lane register; sub-word elements are
// packed into it.
const registerBytes = 4

// IOTraits describes how a BlockDim × BlockK tile is split into per-lane
// accesses of VectorWidth elements on a given target.
type IOTraits struct {
	BlockDim    uint32
	BlockK      uint32
	VectorWidth uint32
	ElementSize uint32

	// ThreadsPerIO is the number of lanes taking part in one I/O: the wave size.
	ThreadsPerIO uint32

	// ElementsPerIO is the number of elements one wave moves per iteration.
	ElementsPerIO uint32

	// KPerIO is the number of BlockK columns covered per iteration (at least 1).
	KPerIO uint32

	// ElementCount is BlockDim × BlockK.
	ElementCount uint32

	// IOCount is the number of iterations each lane performs to cover the tile.
	IOCount uint32

	// UnpackedSize is the number of elements each lane holds.
	UnpackedSize uint32

	// PackedRatio is the number of elements packed in one register.
	PackedRatio uint32

	// PackedSize is the number of registers each lane holds.
	PackedSize uint32
}

// NewIOTraits computes the I/O traits of a tile on target.
//
// All dimensions must be powers of two, the tile must be a whole number of
// wave-wide accesses, and it must hold at most math.MaxInt32 elements.
func NewIOTraits(target Target, elementSize, blockDim, blockK, vectorWidth uint32) (IOTraits, error) {
	for _, p := range []struct {
		name  string
		value uint32
	}{
		{"BlockDim", blockDim},
		{"BlockK", blockK},
		{"VectorWidth", vectorWidth},
		{"element size", elementSize},
	} {
		if !IsPow2(p.value) {
			return IOTraits{}, errors.Wrapf(ErrInvalidConfig, "%s=%d must be a positive power of two", p.name, p.value)
		}
	}

	// Coordinates are int32, so the whole tile must be addressable by them.
	elementCount := uint64(blockDim) * uint64(blockK)
	if elementCount > math.MaxInt32 {
		return IOTraits{}, errors.Wrapf(ErrInvalidConfig,
			"tile %dx%d has %d elements, more than the %d a MatrixCoord can address",
			blockDim, blockK, elementCount, math.MaxInt32)
	}
	if elementsPerIO := uint64(target.WaveSize()) * uint64(vectorWidth); elementsPerIO > elementCount {
		return IOTraits{}, errors.Wrapf(ErrInvalidConfig,
			"tile %dx%d has %d elements, fewer than the %d a %d-lane wave moves with VectorWidth=%d",
			blockDim, blockK, elementCount, elementsPerIO, target.WaveSize(), vectorWidth)
	}

	io := IOTraits{
		BlockDim:     blockDim,
		BlockK:       blockK,
		VectorWidth:  vectorWidth,
		ElementSize:  elementSize,
		ThreadsPerIO: target.WaveSize(),
	}
	io.ElementsPerIO = io.ThreadsPerIO * vectorWidth
	io.KPerIO = max(1, io.ElementsPerIO/blockDim)
	io.ElementCount = blockDim * blockK
	if io.ElementCount%io.ElementsPerIO != 0 {
		return IOTraits{}, errors.Wrapf(ErrInvalidConfig,
			"tile %dx%d has %d elements, not a multiple of the %d elements a %d-lane wave moves with VectorWidth=%d",
			blockDim, blockK, io.ElementCount, io.ElementsPerIO, io.ThreadsPerIO, vectorWidth)
	}
	io.IOCount = io.ElementCount / io.ElementsPerIO
	io.UnpackedSize = io.ElementCount / io.ThreadsPerIO
	io.PackedRatio = max(1, registerBytes/elementSize)
	io.PackedSize = max(1, io.UnpackedSize/io.PackedRatio)
	return io, nil
}

// IOTraitsFor is NewIOTraits with the element size taken from T.
func IOTraitsFor[T Element](target Target, blockDim, blockK, vectorWidth uint32) (IOTraits, error) {
	return NewIOTraits(target, ElementSize[T](), blockDim, blockK, vectorWidth)
}

// WaveSize returns the number of lanes of the wave: ThreadsPerIO.
func (io IOTraits) WaveSize() uint32 {
	return io.ThreadsPerIO
}

// String implements fmt.Stringer.
func (io IOTraits) String() string {
	return fmt.Sprintf("IOTraits(%dx%d, vw=%d, %dB, wave=%d, iterations=%d)",
		io.BlockDim, io.BlockK, io.VectorWidth, io.ElementSize, io.ThreadsPerIO, io.IOCount)
}
