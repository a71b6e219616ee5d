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

	"github.com/ajroetker/go-wavelayout/wmma/layout"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newTraitsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "traits",
		Short: "Print the I/O traits and derived constants of a layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := opts.build()
			if err != nil {
				return err
			}
			target, _ := opts.parseTarget()
			io := l.IOTraits()
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "target: %s (%s, %d-lane waves)\n\n", target, target.Family, target.WaveSize())

			t := newTable("I/O trait", "value")
			t.Row("BlockDim × BlockK", fmt.Sprintf("%d × %d", io.BlockDim, io.BlockK))
			t.Row("VectorWidth / MaxVectorWidth", fmt.Sprintf("%d / %d", io.VectorWidth, l.MaxVectorWidth()))
			t.Row("ElementSize", humanize.Bytes(uint64(io.ElementSize)))
			t.Row("ThreadsPerIO", uintString(io.ThreadsPerIO))
			t.Row("ElementsPerIO", uintString(io.ElementsPerIO))
			t.Row("KPerIO", uintString(io.KPerIO))
			t.Row("ElementCount", humanize.Comma(int64(io.ElementCount)))
			t.Row("Tile size", humanize.Bytes(uint64(io.ElementCount)*uint64(io.ElementSize)))
			t.Row("IOCount", uintString(io.IOCount))
			t.Row("UnpackedSize", uintString(io.UnpackedSize))
			t.Row("PackedRatio", uintString(io.PackedRatio))
			t.Row("PackedSize (registers)", uintString(io.PackedSize))
			printTable(w, "I/O traits", t)

			printTable(w, fmt.Sprintf("%s traits", l.Kind().TypeName()), generatorTraits(l))
			return nil
		},
	}
}

// generatorTraits tabulates the constants derived by the column generator
// underlying l.
func generatorTraits(l layout.Layout) *table.Table {
	t := newTable("constant", "value")
	switch col := columnOf(l).(type) {
	case *layout.ColOrthoVW:
		tr := col.Traits()
		t.Row("LargeDim", strconv.FormatBool(tr.LargeDim))
		t.Row("MaxKPerIO", uintString(tr.MaxKPerIO))
		t.Row("BlockDimSegs", uintString(tr.BlockDimSegs))
		t.Row("VWSegs", uintString(tr.VWSegs))
		t.Row("WaveSegs", uintString(tr.WaveSegs))
	case *layout.ColInlineVW:
		tr := col.Traits()
		t.Row("LargeDim", strconv.FormatBool(tr.LargeDim))
		t.Row("MaxElementsPerIO", uintString(tr.MaxElementsPerIO))
		t.Row("MaxKPerIO", uintString(tr.MaxKPerIO))
		t.Row("BlockDimSegs", uintString(tr.BlockDimSegs))
		t.Row("VWSegs", uintString(tr.VWSegs))
	}
	t.Row("Shape", l.Shape().String())
	t.Row("VectorStep", l.VectorStep().String())
	return t
}

// columnOf strips the transposition from a row layout.
func columnOf(l layout.Layout) layout.Layout {
	switch row := l.(type) {
	case *layout.RowOrthoVW:
		return row.Unwrap()
	case *layout.RowInlineVW:
		return row.Unwrap()
	}
	return l
}

func uintString(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
