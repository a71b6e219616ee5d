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
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/ajroetker/go-wavelayout/wmma/layout"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
	"k8s.io/klog/v2"
)

// MaxRecorded bounds how many problems of each category a Report keeps.
// The counts are always complete.
const MaxRecorded = 32

// Access is one lane touching one element at one iteration.
type Access struct {
	Lane      uint32
	Iteration uint32
	Coord     wmma.MatrixCoord
}

// String implements fmt.Stringer.
func (a Access) String() string {
	return fmt.Sprintf("lane %d iteration %d at %s", a.Lane, a.Iteration, a.Coord)
}

// Overlap is an element accessed more than once.
type Overlap struct {
	First, Second Access
}

// Report is the result of Coverage.
type Report struct {
	Kind     layout.Kind
	Shape    wmma.MatrixCoord
	Elements int
	Accesses uint64
	Covered  int

	NumGaps        int
	NumOverlaps    int
	NumOutOfBounds int

	// Gaps, Overlaps and OutOfBounds hold up to MaxRecorded examples each.
	Gaps        []wmma.MatrixCoord
	Overlaps    []Overlap
	OutOfBounds []Access
}

// OK reports whether every element was accessed exactly once.
func (r *Report) OK() bool {
	return r.NumGaps == 0 && r.NumOverlaps == 0 && r.NumOutOfBounds == 0 && r.Covered == r.Elements
}

// Err returns nil if the coverage is exact, otherwise an error summarizing
// the first problems found.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	var parts []string
	if r.NumOutOfBounds > 0 {
		parts = append(parts, fmt.Sprintf("%d out-of-bounds accesses (%s)", r.NumOutOfBounds,
			strings.Join(lo.Map(lo.Subset(r.OutOfBounds, 0, 3), func(a Access, _ int) string { return a.String() }), "; ")))
	}
	if r.NumOverlaps > 0 {
		parts = append(parts, fmt.Sprintf("%d overlaps (%s)", r.NumOverlaps,
			strings.Join(lo.Map(lo.Subset(r.Overlaps, 0, 3), func(o Overlap, _ int) string {
				return fmt.Sprintf("%s already read by lane %d iteration %d", o.Second, o.First.Lane, o.First.Iteration)
			}), "; ")))
	}
	if r.NumGaps > 0 {
		parts = append(parts, fmt.Sprintf("%d elements never accessed (%s)", r.NumGaps,
			strings.Join(lo.Map(lo.Subset(r.Gaps, 0, 3), func(c wmma.MatrixCoord, _ int) string { return c.String() }), "; ")))
	}
	return errors.Errorf("%s coverage of %dx%d tile: %d/%d elements covered: %s",
		r.Kind, r.Shape.X, r.Shape.Y, r.Covered, r.Elements, strings.Join(parts, ", "))
}

// chunkStats is accumulated by one chunk of lanes; padded so that chunks do
// not share cache lines.
type chunkStats struct {
	accesses uint64
	_        cpu.CacheLinePad
}

// problems collects the recorded examples under a lock; it is only touched
// when something is wrong.
type problems struct {
	mu          sync.Mutex
	overlaps    []Overlap
	outOfBounds []Access
	numOverlaps int
	numOOB      int
}

// Coverage runs l on the wave and checks that the VectorWidth-wide spans at
// BaseOffset + CumulativeOffset(i), over all lanes and iterations, tile the
// l.Shape() matrix with no gap and no overlap.
func (w *Wave) Coverage(l layout.Layout) (*Report, error) {
	if err := w.check(l); err != nil {
		return nil, err
	}
	shape := l.Shape()
	n := l.Iterations()
	elements := int(shape.X) * int(shape.Y)

	// owners[x*Y+y] holds 1 + lane*n + iteration of the first access, 0 if none.
	owners := make([]atomic.Uint64, elements)
	stats := make([]chunkStats, w.NumChunks())
	var found problems

	w.run(n, func(chunk int, lane, iteration uint32) {
		id := 1 + uint64(lane)*uint64(n) + uint64(iteration)
		for coord := range layout.Elements(l, lane, iteration) {
			stats[chunk].accesses++
			access := Access{Lane: lane, Iteration: iteration, Coord: coord}
			if coord.X < 0 || coord.Y < 0 || coord.X >= shape.X || coord.Y >= shape.Y {
				found.addOutOfBounds(access)
				continue
			}
			owner := &owners[int(coord.X)*int(shape.Y)+int(coord.Y)]
			if !owner.CompareAndSwap(0, id) {
				prev := owner.Load() - 1
				found.addOverlap(Overlap{
					First:  Access{Lane: uint32(prev / uint64(n)), Iteration: uint32(prev % uint64(n)), Coord: coord},
					Second: access,
				})
			}
		}
	})

	r := &Report{
		Kind:           l.Kind(),
		Shape:          shape,
		Elements:       elements,
		NumOverlaps:    found.numOverlaps,
		NumOutOfBounds: found.numOOB,
		Overlaps:       found.overlaps,
		OutOfBounds:    found.outOfBounds,
	}
	for i := range stats {
		r.Accesses += stats[i].accesses
	}
	for idx := range owners {
		if owners[idx].Load() != 0 {
			r.Covered++
			continue
		}
		r.NumGaps++
		if len(r.Gaps) < MaxRecorded {
			r.Gaps = append(r.Gaps, wmma.Coord(int32(idx/int(shape.Y)), int32(idx%int(shape.Y))))
		}
	}
	klog.V(1).Infof("wave: %s coverage %d/%d elements, %d accesses, %d gaps, %d overlaps, %d out of bounds",
		r.Kind, r.Covered, r.Elements, r.Accesses, r.NumGaps, r.NumOverlaps, r.NumOutOfBounds)
	return r, nil
}

func (p *problems) addOverlap(o Overlap) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.numOverlaps++
	if len(p.overlaps) < MaxRecorded {
		p.overlaps = append(p.overlaps, o)
	}
}

func (p *problems) addOutOfBounds(a Access) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.numOOB++
	if len(p.outOfBounds) < MaxRecorded {
		p.outOfBounds = append(p.outOfBounds, a)
	}
}
