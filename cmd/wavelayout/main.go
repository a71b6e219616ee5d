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

// Command wavelayout prints and verifies the per-lane coordinates of the wave
// layouts.
//
// Usage:
//
//	wavelayout traits  --layout col_ortho --block-dim 128 --block-k 8 --vw 2 --max-vw 4
//	wavelayout offsets --layout col_inline --block-dim 256 --block-k 4 --vw 1 --max-vw 2 --lanes 4
//	wavelayout verify  --layout row_ortho --target gfx1100 --block-dim 32 --block-k 16 --vw 2 --max-vw 4
//	wavelayout sweep   --target gfx942 --block-dims 16,64,256 --block-ks 4,16
//
// The target defaults to $WMMA_TARGET (or gfx90a); -v=2 logs the wave emulator.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/ajroetker/go-wavelayout/wmma/layout"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/x448/float16"
	"k8s.io/klog/v2"
)

// elementSizes maps --dtype values to element sizes in bytes.
var elementSizes = map[string]uint32{
	"f16":  wmma.ElementSize[float16.Float16](),
	"bf16": wmma.ElementSize[uint16](),
	"f32":  wmma.ElementSize[float32](),
	"f64":  wmma.ElementSize[float64](),
	"i8":   wmma.ElementSize[int8](),
	"i32":  wmma.ElementSize[int32](),
}

// options are the flags shared by all subcommands.
type options struct {
	target   string
	dtype    string
	kind     string
	blockDim uint32
	blockK   uint32
	vw       uint32
	maxVW    uint32
	workers  int
}

func (o *options) register(flags *pflag.FlagSet) {
	flags.StringVar(&o.target, "target", wmma.CurrentTarget().Name,
		"GPU architecture ("+strings.Join(wmma.TargetNames(), ",")+")")
	flags.StringVar(&o.dtype, "dtype", "f16", "element type ("+strings.Join(dtypeNames(), ",")+")")
	flags.StringVar(&o.kind, "layout", layout.ColOrtho.String(), "layout: col_ortho, col_inline, row_ortho or row_inline")
	flags.Uint32Var(&o.blockDim, "block-dim", 128, "BlockDim of the tile")
	flags.Uint32Var(&o.blockK, "block-k", 8, "BlockK of the tile")
	flags.Uint32Var(&o.vw, "vw", 2, "VectorWidth of each access")
	flags.Uint32Var(&o.maxVW, "max-vw", 4, "MaxVectorWidth of the tile shape")
	flags.IntVar(&o.workers, "workers", 0, "worker goroutines emulating the wave (0 = GOMAXPROCS)")
}

func (o *options) parseTarget() (wmma.Target, error) {
	return wmma.ParseTarget(o.target)
}

func (o *options) elementSize() (uint32, error) {
	size, found := elementSizes[o.dtype]
	if !found {
		return 0, errors.Errorf("unknown --dtype %q (known: %s)", o.dtype, strings.Join(dtypeNames(), ","))
	}
	return size, nil
}

func (o *options) config() layout.Config {
	return layout.Config{BlockDim: o.blockDim, BlockK: o.blockK, VectorWidth: o.vw, MaxVectorWidth: o.maxVW}
}

// build returns the layout selected by the flags.
func (o *options) build() (layout.Layout, error) {
	target, err := o.parseTarget()
	if err != nil {
		return nil, err
	}
	kind, err := layout.ParseKind(o.kind)
	if err != nil {
		return nil, err
	}
	size, err := o.elementSize()
	if err != nil {
		return nil, err
	}
	return layout.Build(kind, target, size, o.config())
}

func dtypeNames() []string {
	return []string{"f16", "bf16", "f32", "f64", "i8", "i32"}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "wavelayout",
		Short:         "Inspect and verify wave tile layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.register(root.PersistentFlags())

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.AddCommand(
		newTraitsCmd(opts),
		newOffsetsCmd(opts),
		newVerifyCmd(opts),
		newSweepCmd(opts),
	)
	return root
}

func main() {
	defer klog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
