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

package main

import (
	"fmt"
	"strconv"

	"github.com/ajroetker/go-wavelayout/wmma/contrib/wave"
	"github.com/ajroetker/go-wavelayout/wmma/contrib/workerpool"
	"github.com/ajroetker/go-wavelayout/wmma/layout"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// newWave returns a wave for l's target on a fresh pool; the caller closes
// the pool.
func (o *options) newWave(l layout.Layout) (*wave.Wave, *workerpool.Pool, error) {
	pool := workerpool.New(o.workers)
	w, err := wave.New(l.IOTraits().WaveSize(), pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return w, pool, nil
}

func newOffsetsCmd(opts *options) *cobra.Command {
	var (
		firstLane, numLanes uint32
		incremental         bool
	)
	cmd := &cobra.Command{
		Use:   "offsets",
		Short: "Print the coordinates of a range of lanes at every iteration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := opts.build()
			if err != nil {
				return err
			}
			waveSize := l.IOTraits().WaveSize()
			if numLanes == 0 || firstLane >= waveSize {
				return errors.Errorf("lanes [%d, %d) outside of the %d-lane wave", firstLane, firstLane+numLanes, waveSize)
			}
			numLanes = min(numLanes, waveSize-firstLane)

			w, pool, err := opts.newWave(l)
			if err != nil {
				return err
			}
			defer pool.Close()
			mode := wave.Cumulative
			if incremental {
				mode = wave.Incremental
			}
			trace, err := w.Trace(l, mode)
			if err != nil {
				return err
			}

			headers := []string{"iteration"}
			for lane := firstLane; lane < firstLane+numLanes; lane++ {
				headers = append(headers, fmt.Sprintf("lane %d", lane))
			}
			t := newTable(headers...)
			for iteration := range trace.Iterations {
				row := []string{strconv.Itoa(int(iteration))}
				for lane := firstLane; lane < firstLane+numLanes; lane++ {
					row = append(row, trace.Lane(lane)[iteration].String())
				}
				t.Row(row...)
			}
			printTable(cmd.OutOrStdout(), fmt.Sprintf("%s %s (%s offsets)", l.Kind().TypeName(), opts.config(), mode), t)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&firstLane, "first-lane", 0, "first lane to print")
	cmd.Flags().Uint32Var(&numLanes, "lanes", 4, "number of lanes to print")
	cmd.Flags().BoolVar(&incremental, "incremental", false, "accumulate IncrementalOffset instead of recomputing CumulativeOffset")
	return cmd
}
