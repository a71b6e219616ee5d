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

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newVerifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check consistency and exact coverage of a layout on an emulated wave",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := opts.build()
			if err != nil {
				return err
			}
			w, pool, err := opts.newWave(l)
			if err != nil {
				return err
			}
			defer pool.Close()

			report, err := w.Verify(l)
			if err != nil {
				return err
			}
			t := newTable("check", "result")
			t.Row("elements", humanize.Comma(int64(report.Elements)))
			t.Row("accesses", humanize.Comma(int64(report.Accesses)))
			t.Row("covered", humanize.Comma(int64(report.Covered)))
			t.Row("gaps", humanize.Comma(int64(report.NumGaps)))
			t.Row("overlaps", humanize.Comma(int64(report.NumOverlaps)))
			t.Row("out of bounds", humanize.Comma(int64(report.NumOutOfBounds)))
			printTable(cmd.OutOrStdout(), fmt.Sprintf("%s %s on %d lanes", l.Kind().TypeName(), opts.config(), w.Size()), t)
			if err := report.Err(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}
