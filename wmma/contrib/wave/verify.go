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

// CheckConsistency verifies that CumulativeOffset(0) is zero and that
// CumulativeOffset(i+1) == CumulativeOffset(i) + IncrementalOffset(i) for
// every iteration of l.
func CheckConsistency(l layout.Layout) error {
	if c := l.CumulativeOffset(0); c != (wmma.MatrixCoord{}) {
		return errors.Errorf("%s: CumulativeOffset(0) = %s, want (0, 0)", l.Kind(), c)
	}
	n := l.Iterations()
	for i := uint32(0); i+1 < n; i++ {
		cur, next, inc := l.CumulativeOffset(i), l.CumulativeOffset(i+1), l.IncrementalOffset(i)
		if want := cur.Add(inc); want != next {
			return errors.Errorf("%s: CumulativeOffset(%d) = %s, but CumulativeOffset(%d) + IncrementalOffset(%d) = %s + %s = %s",
				l.Kind(), i+1, next, i, i, cur, inc, want)
		}
	}
	return nil
}

// Verify runs every check on l: consistency, identical incremental and
// cumulative traces for all lanes, and exact coverage.
func (w *Wave) Verify(l layout.Layout) (*Report, error) {
	if err := CheckConsistency(l); err != nil {
		return nil, err
	}
	cumulative, err := w.Trace(l, Cumulative)
	if err != nil {
		return nil, err
	}
	incremental, err := w.Trace(l, Incremental)
	if err != nil {
		return nil, err
	}
	if err := cumulative.Diff(incremental); err != nil {
		return nil, errors.WithMessagef(err, "%s", l.Kind())
	}
	report, err := w.Coverage(l)
	if err != nil {
		return nil, err
	}
	return report, report.Err()
}
