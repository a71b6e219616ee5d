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
	"iter"

	"github.com/ajroetker/go-wavelayout/wmma"
)

// Offsets yields, for each iteration, the coordinate lane accesses.
//
// It starts from BaseOffset and adds IncrementalOffset after each step, the
// way a load loop carries a running address.
func Offsets(l Layout, lane uint32) iter.Seq2[uint32, wmma.MatrixCoord] {
	return func(yield func(uint32, wmma.MatrixCoord) bool) {
		coord := l.BaseOffset(lane)
		n := l.Iterations()
		for i := uint32(0); i < n; i++ {
			if !yield(i, coord) {
				return
			}
			coord = coord.Add(l.IncrementalOffset(i))
		}
	}
}

// CumulativeOffsets is like Offsets but recomputes each coordinate as
// BaseOffset + CumulativeOffset(i), with no carried state.
func CumulativeOffsets(l Layout, lane uint32) iter.Seq2[uint32, wmma.MatrixCoord] {
	return func(yield func(uint32, wmma.MatrixCoord) bool) {
		base := l.BaseOffset(lane)
		n := l.Iterations()
		for i := uint32(0); i < n; i++ {
			if !yield(i, base.Add(l.CumulativeOffset(i))) {
				return
			}
		}
	}
}

// Elements yields every element coordinate lane accesses at iteration: the
// VectorWidth elements starting at BaseOffset + CumulativeOffset(iteration)
// along VectorStep.
func Elements(l Layout, lane, iteration uint32) iter.Seq[wmma.MatrixCoord] {
	return func(yield func(wmma.MatrixCoord) bool) {
		start := l.BaseOffset(lane).Add(l.CumulativeOffset(iteration))
		step := l.VectorStep()
		for range l.IOTraits().VectorWidth {
			if !yield(start) {
				return
			}
			start = start.Add(step)
		}
	}
}
