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
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Layout is implemented by the four generators.
//
// All methods are pure: they depend only on the arguments and on constants
// fixed at construction, so a Layout can be shared by any number of goroutines
// and its methods can be called in any order.
type Layout interface {
	// BaseOffset returns the coordinate of lane at iteration 0.
	BaseOffset(lane uint32) wmma.MatrixCoord

	// IncrementalOffset returns the displacement from iteration to iteration+1.
	IncrementalOffset(iteration uint32) wmma.MatrixCoord

	// CumulativeOffset returns the displacement from iteration 0 to iteration.
	CumulativeOffset(iteration uint32) wmma.MatrixCoord

	// Kind identifies the generator.
	Kind() Kind

	// IOTraits returns the traits the layout was built from.
	IOTraits() wmma.IOTraits

	// MaxVectorWidth returns the largest vector width of the tile shape.
	MaxVectorWidth() uint32

	// Iterations returns the number of iterations each lane performs.
	Iterations() uint32

	// Shape returns the extents of the tile along X and Y.
	Shape() wmma.MatrixCoord

	// VectorStep returns the unit displacement along which a lane's
	// VectorWidth elements extend.
	VectorStep() wmma.MatrixCoord
}

// regime is one of the two arithmetic specializations of a generator, chosen
// once from the LargeDim flag.
type regime interface {
	baseOffset(lane uint32) wmma.MatrixCoord
	incrementalOffset(iteration uint32) wmma.MatrixCoord
	cumulativeOffset(iteration uint32) wmma.MatrixCoord
}

// New builds the generator of the given kind.
func New(kind Kind, io wmma.IOTraits, maxVectorWidth uint32) (Layout, error) {
	switch kind {
	case ColOrtho:
		return NewColOrthoVW(io, maxVectorWidth)
	case ColInline:
		return NewColInlineVW(io, maxVectorWidth)
	case RowOrtho:
		return NewRowOrthoVW(io, maxVectorWidth)
	case RowInline:
		return NewRowInlineVW(io, maxVectorWidth)
	default:
		return nil, errors.Errorf("layout.New: unknown kind %s", kind)
	}
}

// Build computes the I/O traits of cfg for elements of elementSize bytes on
// target and builds the generator of the given kind.
func Build(kind Kind, target wmma.Target, elementSize uint32, cfg Config) (Layout, error) {
	io, err := cfg.IOTraits(target, elementSize)
	if err != nil {
		return nil, errors.WithMessagef(err, "layout %s %s on %s", kind, cfg, target)
	}
	l, err := New(kind, io, cfg.MaxVectorWidth)
	if err != nil {
		return nil, errors.WithMessagef(err, "layout %s %s on %s", kind, cfg, target)
	}
	return l, nil
}

// NewFor is Build with the element size taken from T.
func NewFor[T wmma.Element](kind Kind, target wmma.Target, cfg Config) (Layout, error) {
	return Build(kind, target, wmma.ElementSize[T](), cfg)
}

// MustBuild is like Build but panics on invalid configurations.
func MustBuild(kind Kind, target wmma.Target, elementSize uint32, cfg Config) Layout {
	l, err := Build(kind, target, elementSize, cfg)
	if err != nil {
		exceptions.Panicf("layout.MustBuild: %+v", err)
	}
	return l
}

// ConfigOf returns the Config a layout was built from.
func ConfigOf(l Layout) Config {
	io := l.IOTraits()
	return Config{
		BlockDim:       io.BlockDim,
		BlockK:         io.BlockK,
		VectorWidth:    io.VectorWidth,
		MaxVectorWidth: l.MaxVectorWidth(),
	}
}
