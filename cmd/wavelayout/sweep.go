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
	"math"
	"strconv"

	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/ajroetker/go-wavelayout/wmma/contrib/wave"
	"github.com/ajroetker/go-wavelayout/wmma/contrib/workerpool"
	"github.com/ajroetker/go-wavelayout/wmma/layout"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// sweepCase is one point of the sweep grid and its outcome.
type sweepCase struct {
	kind   layout.Kind
	config layout.Config

	// rejected is set when the configuration is invalid for kind.
	rejected bool
	err      error
}

// sweepGrid enumerates every kind and every combination of the given sizes
// with VectorWidth <= MaxVectorWidth.
func sweepGrid(kinds []layout.Kind, blockDims, blockKs, widths []uint32) []sweepCase {
	var grid []sweepCase
	for _, kind := range kinds {
		for _, bd := range blockDims {
			for _, bk := range blockKs {
				for _, maxVW := range widths {
					for _, vw := range lo.Filter(widths, func(vw uint32, _ int) bool { return vw <= maxVW }) {
						grid = append(grid, sweepCase{kind: kind, config: layout.Config{
							BlockDim: bd, BlockK: bk, VectorWidth: vw, MaxVectorWidth: maxVW,
						}})
					}
				}
			}
		}
	}
	return grid
}

// toUint32s converts flag values, rejecting those a uint32 cannot hold.
func toUint32s(name string, values []uint) ([]uint32, error) {
	out := make([]uint32, len(values))
	for i, v := range values {
		if uint64(v) > math.MaxUint32 {
			return nil, errors.Errorf("%s value %d exceeds %d", name, v, uint32(math.MaxUint32))
		}
		out[i] = uint32(v)
	}
	return out, nil
}

func newSweepCmd(opts *options) *cobra.Command {
	var (
		kindNames                  []string
		blockDims, blockKs, widths []uint
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Verify every valid configuration of a parameter grid",
		Long: "Sweep builds every layout of the grid (--block-dims × --block-ks × --widths for VectorWidth and MaxVectorWidth),\n" +
			"skips the configurations the generators reject and verifies the others on an emulated wave.\n" +
			"The global --block-dim, --block-k, --vw and --max-vw flags are ignored.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := opts.parseTarget()
			if err != nil {
				return err
			}
			size, err := opts.elementSize()
			if err != nil {
				return err
			}
			kinds := make([]layout.Kind, 0, len(kindNames))
			for _, name := range lo.Uniq(kindNames) {
				kind, err := layout.ParseKind(name)
				if err != nil {
					return err
				}
				kinds = append(kinds, kind)
			}
			var sizes [3][]uint32
			for i, f := range []struct {
				name   string
				values []uint
			}{{"--block-dims", blockDims}, {"--block-ks", blockKs}, {"--widths", widths}} {
				if sizes[i], err = toUint32s(f.name, f.values); err != nil {
					return err
				}
			}
			grid := sweepGrid(kinds, sizes[0], sizes[1], sizes[2])
			if len(grid) == 0 {
				return errors.New("empty sweep grid")
			}

			// Grid points run concurrently on pool; each wave runs its lanes
			// inline on a single-worker pool.
			pool := workerpool.New(opts.workers)
			defer pool.Close()
			lanes := workerpool.New(1)
			defer lanes.Close()
			w, err := wave.ForTarget(target, lanes)
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(grid),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription(fmt.Sprintf("sweep %s", target)),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish())
			pool.ParallelForAtomic(len(grid), func(i int) {
				defer func() { _ = bar.Add(1) }()
				c := &grid[i]
				l, err := layout.Build(c.kind, target, size, c.config)
				if errors.Is(err, wmma.ErrInvalidConfig) {
					c.rejected = true
					klog.V(1).Infof("sweep: %s %s rejected: %v", c.kind, c.config, err)
					return
				}
				if err == nil {
					_, err = w.Verify(l)
				}
				if err != nil {
					c.err = err
					klog.Errorf("sweep: %s %s: %v", c.kind, c.config, err)
				}
			})
			_ = bar.Finish()

			return printSweep(cmd, target, grid, kinds)
		},
	}
	flags := cmd.Flags()
	flags.StringSliceVar(&kindNames, "kinds", lo.Map(layout.Kinds, func(k layout.Kind, _ int) string { return k.String() }), "layouts to sweep")
	flags.UintSliceVar(&blockDims, "block-dims", []uint{16, 32, 64, 128, 256}, "BlockDim values")
	flags.UintSliceVar(&blockKs, "block-ks", []uint{1, 2, 4, 8, 16, 32}, "BlockK values")
	flags.UintSliceVar(&widths, "widths", []uint{1, 2, 4, 8}, "VectorWidth and MaxVectorWidth values")
	return cmd
}

// printSweep prints a per-kind summary and returns an error if any
// accepted configuration failed verification.
func printSweep(cmd *cobra.Command, target wmma.Target, grid []sweepCase, kinds []layout.Kind) error {
	byKind := lo.GroupBy(grid, func(c sweepCase) layout.Kind { return c.kind })
	t := newTable("layout", "configs", "rejected", "verified", "failed")
	for _, kind := range kinds {
		cases := byKind[kind]
		rejected := lo.CountBy(cases, func(c sweepCase) bool { return c.rejected })
		failed := lo.CountBy(cases, func(c sweepCase) bool { return c.err != nil })
		t.Row(kind.TypeName(), strconv.Itoa(len(cases)), strconv.Itoa(rejected),
			strconv.Itoa(len(cases)-rejected-failed), strconv.Itoa(failed))
	}
	out := cmd.OutOrStdout()
	printTable(out, fmt.Sprintf("sweep on %s (%d lanes)", target, target.WaveSize()), t)

	failures := lo.Filter(grid, func(c sweepCase, _ int) bool { return c.err != nil })
	if len(failures) == 0 {
		return nil
	}
	ft := newTable("layout", "config", "error").StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return failStyle
	})
	for _, c := range failures {
		ft.Row(c.kind.TypeName(), c.config.String(), c.err.Error())
	}
	printTable(out, "failures", ft)
	return errors.Errorf("%d of %d configurations failed verification", len(failures), len(grid))
}
