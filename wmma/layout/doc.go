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

// Package layout implements the wave layout generators: closed-form maps from
// (lane, iteration) to the coordinate of the tile element the lane accesses.
//
// Four generators are provided. ColOrthoVW and ColInlineVW hold the arithmetic;
// RowOrthoVW and RowInlineVW are the same generators with the two axes
// exchanged.
//
//   - ColOrthoVW: lanes walk BlockDim one row each, vectors extend along BlockK.
//   - ColInlineVW: lanes and vectors both walk contiguous elements of BlockDim.
//
// Every generator answers three questions for a lane:
//
//	base := l.BaseOffset(lane)             // coordinate at iteration 0
//	d := l.IncrementalOffset(i)            // step from iteration i to i+1
//	c := l.CumulativeOffset(i)             // total displacement from iteration 0
//
// with CumulativeOffset(i+1) == CumulativeOffset(i) + IncrementalOffset(i).
// The element spans at base + CumulativeOffset(i) for all lanes and all
// iterations tile the matrix exactly once.
//
// Each generator picks one of two arithmetic regimes when it is constructed,
// depending on whether BlockDim fills a whole wave access. The per-call
// functions then contain no branches: cycle wraps are turned into all-ones or
// all-zero masks (see wmma.StepMask) so all lanes of a wave follow the same
// instruction stream.
package layout
