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

package wave

import (
	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/ajroetker/go-wavelayout/wmma/layout"
	"github.com/pkg/errors"
)

// Mode selects how a lane computes its coordinate at each iteration.
type Mode int

const (
	// Cumulative recomputes BaseOffset + CumulativeOffset(i) at each iteration.
	Cumulative Mode = iota

	// Incremental starts at BaseOffset and adds IncrementalOffset(i) after
	// each iteration, the way a load loop advances its pointer.
	Incremental
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == Incremental {
		return "incremental"
	}
	return "cumulative"
}

// Trace holds the coordinate every lane accessed at every iteration.
type Trace struct {
	Kind       layout.Kind
	Mode       Mode
	Iterations uint32

	// Coords is indexed by [lane][iteration].
	Coords [][]wmma.MatrixCoord
}

// Trace runs l on the wave and records every lane's coordinates.
// The layout's wave size must match the wave.
func (w *Wave) Trace(l layout.Layout, mode Mode) (*Trace, error) {
	if err := w.check(l); err != nil {
		return nil, err
	}
	n := l.Iterations()
	t := &Trace{
		Kind:       l.Kind(),
		Mode:       mode,
		Iterations: n,
		Coords:     make([][]wmma.MatrixCoord, w.size),
	}
	for lane := range t.Coords {
		t.Coords[lane] = make([]wmma.MatrixCoord, n)
	}

	// Each lane only touches its own row of Coords, like a register.
	switch mode {
	case Incremental:
		w.Run(n, func(lane, iteration uint32) {
			row := t.Coords[lane]
			if iteration == 0 {
				row[0] = l.BaseOffset(lane)
				return
			}
			row[iteration] = row[iteration-1].Add(l.IncrementalOffset(iteration - 1))
		})
	default:
		w.Run(n, func(lane, iteration uint32) {
			t.Coords[lane][iteration] = l.BaseOffset(lane).Add(l.CumulativeOffset(iteration))
		})
	}
	return t, nil
}

// Lane returns the coordinate sequence of one lane.
func (t *Trace) Lane(lane uint32) []wmma.MatrixCoord {
	return t.Coords[lane]
}

// Diff returns an error describing the first coordinate where t and other
// differ, or nil if they are identical.
func (t *Trace) Diff(other *Trace) error {
	if len(t.Coords) != len(other.Coords) || t.Iterations != other.Iterations {
		return errors.Errorf("trace shapes differ: %d lanes x %d iterations vs %d lanes x %d iterations",
			len(t.Coords), t.Iterations, len(other.Coords), other.Iterations)
	}
	for lane, row := range t.Coords {
		for iteration, c := range row {
			if o := other.Coords[lane][iteration]; c != o {
				return errors.Errorf("lane %d iteration %d: %s trace has %s, %s trace has %s",
					lane, iteration, t.Mode, c, other.Mode, o)
			}
		}
	}
	return nil
}

func (w *Wave) check(l layout.Layout) error {
	if got := l.IOTraits().WaveSize(); got != w.size {
		return errors.Errorf("layout %s was built for %d-lane waves, wave has %d lanes", l.Kind(), got, w.size)
	}
	return nil
}
