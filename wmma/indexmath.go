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
	"math/bits"

	"golang.org/x/exp/constraints"
)

// IsPow2 reports whether n is a positive power of two.
func IsPow2[T constraints.Unsigned](n T) bool {
	return n != 0 && n&(n-1) == 0
}

// Log2 returns log2(n) for a power of two n.
// The result for any other value is the index of its lowest set bit, and 0 for n == 0.
func Log2[T constraints.Unsigned](n T) T {
	if n == 0 {
		return 0
	}
	return T(bits.TrailingZeros64(uint64(n)))
}

// LsbMask returns a mask with the lowest n bits set: 2^n - 1.
//
// Combined with Log2 it replaces x % d by x & LsbMask(Log2(d)) when d is a
// power of two.
func LsbMask(n uint32) uint32 {
	if n >= 32 {
		return ^uint32(0)
	}
	return 1<<n - 1
}

// StepMask returns an all-ones mask (-1) when value&modMask == 0 and 0
// otherwise.
//
// With modMask = LsbMask(Log2(period)) this flags the iterations where a cycle
// of the given period wraps around. The result is meant to be and-ed with a
// step size so that every lane runs the same instructions: there is no branch,
// the borrow of (remainder - 1) is shifted down into the sign.
//
// modMask must be below 1<<31.
func StepMask(value, modMask uint32) int32 {
	rem := value & modMask
	return -int32((rem - 1) >> 31)
}
