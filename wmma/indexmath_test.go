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
	"testing"
)

func TestIsPow2(t *testing.T) {
	for n := uint32(0); n <= 1024; n++ {
		want := n != 0 && n&(n-1) == 0
		if got := IsPow2(n); got != want {
			t.Errorf("IsPow2(%d) = %v, want %v", n, got, want)
		}
	}
	if !IsPow2(uint64(1) << 40) {
		t.Error("IsPow2(1<<40) = false, want true")
	}
}

func TestLog2(t *testing.T) {
	for shift := range uint32(32) {
		n := uint32(1) << shift
		if got := Log2(n); got != shift {
			t.Errorf("Log2(%d) = %d, want %d", n, got, shift)
		}
	}
	if got := Log2(uint32(0)); got != 0 {
		t.Errorf("Log2(0) = %d, want 0", got)
	}
	if got := Log2(uint8(128)); got != 7 {
		t.Errorf("Log2(uint8(128)) = %d, want 7", got)
	}
}

func TestLsbMask(t *testing.T) {
	tests := []struct {
		n    uint32
		want uint32
	}{
		{0, 0},
		{1, 1},
		{2, 3},
		{6, 63},
		{31, 0x7FFFFFFF},
		{32, 0xFFFFFFFF},
	}
	for _, tt := range tests {
		if got := LsbMask(tt.n); got != tt.want {
			t.Errorf("LsbMask(%d) = %#x, want %#x", tt.n, got, tt.want)
		}
	}
}

func TestLsbMaskReplacesModulo(t *testing.T) {
	for _, d := range []uint32{1, 2, 4, 64, 1024} {
		mask := LsbMask(Log2(d))
		for x := uint32(0); x < 5000; x += 7 {
			if got, want := x&mask, x%d; got != want {
				t.Fatalf("%d & LsbMask(Log2(%d)) = %d, want %d", x, d, got, want)
			}
		}
	}
}

func TestStepMask(t *testing.T) {
	for _, period := range []uint32{1, 2, 4, 8, 1 << 20} {
		modMask := LsbMask(Log2(period))
		for value := uint32(0); value < 64; value++ {
			var want int32
			if value%period == 0 {
				want = -1
			}
			if got := StepMask(value, modMask); got != want {
				t.Errorf("StepMask(%d, %#x) = %d, want %d", value, modMask, got, want)
			}
		}
	}
	// Largest remainder allowed by the modMask < 1<<31 contract.
	if got := StepMask(0x7FFFFFFF, 0x7FFFFFFF); got != 0 {
		t.Errorf("StepMask(max, max) = %d, want 0", got)
	}
}

func TestStepMaskSelectsStep(t *testing.T) {
	const minor, major int32 = 3, -12
	for value := uint32(1); value <= 16; value++ {
		mask := StepMask(value, LsbMask(2))
		got := minor + mask&major
		want := minor
		if value%4 == 0 {
			want += major
		}
		if got != want {
			t.Errorf("value %d: selected step %d, want %d", value, got, want)
		}
	}
}
