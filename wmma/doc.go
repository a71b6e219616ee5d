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

// Package wmma holds the building blocks shared by the wave layout generators:
// element constraints, matrix coordinates, power-of-two index math, I/O traits
// and the GPU target (wave size) dispatch.
//
// A wave is the fixed-size group of lanes that execute in lock-step on the
// target. Layouts in the layout subpackage map (lane, iteration) pairs onto
// coordinates of a BlockDim × BlockK tile using only the helpers defined here.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-wavelayout/wmma"
//
//	// Per-lane I/O shape of a 128×8 half-precision tile loaded 2 elements at a time.
//	io, err := wmma.IOTraitsFor[float16.Float16](wmma.CurrentTarget(), 128, 8, 2)
//	if err != nil {
//		return err
//	}
//	fmt.Println(io.IOCount) // iterations each lane performs
package wmma
