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
	"unsafe"
)

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
//
// Half-precision types stored as raw bits (e.g. float16.Float16 from
// github.com/x448/float16) satisfy this through ~uint16.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Element is a constraint for all types that can be stored in a matrix tile.
type Element interface {
	Floats | Integers
}

// ElementSize returns the size in bytes of one element of type T.
func ElementSize[T Element]() uint32 {
	var dummy T
	return uint32(unsafe.Sizeof(dummy))
}

// MatrixCoord is a 2-D matrix coordinate or displacement.
//
// X is the first axis and Y the second. Column layouts place BlockDim on X
// and BlockK on Y; row layouts swap them. Displacements may be negative.
type MatrixCoord struct {
	X, Y int32
}

// Coord is a shorthand for MatrixCoord{X: x, Y: y}.
func Coord(x, y int32) MatrixCoord {
	return MatrixCoord{X: x, Y: y}
}

// Add returns the component-wise sum c + o.
func (c MatrixCoord) Add(o MatrixCoord) MatrixCoord {
	return MatrixCoord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference c - o.
func (c MatrixCoord) Sub(o MatrixCoord) MatrixCoord {
	return MatrixCoord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Transpose exchanges the two axes.
func (c MatrixCoord) Transpose() MatrixCoord {
	return MatrixCoord{X: c.Y, Y: c.X}
}

// String implements fmt.Stringer.
func (c MatrixCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
