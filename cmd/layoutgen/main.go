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

// Command layoutgen generates a constant-folded Go implementation of one wave
// layout for one fixed configuration.
//
// Usage:
//
//	layoutgen -layout col_ortho -target gfx90a -block-dim 128 -block-k 8 -vw 2 -max-vw 4 -pkg tiles -output .
//
// Or via go:generate:
//
//	//go:generate layoutgen -layout row_inline -target gfx1100 -block-dim 64 -block-k 16 -vw 4 -max-vw 4 -pkg $GOPACKAGE
//
// The configuration is validated before anything is written. The generated
// file also carries constant guard expressions, so hand-editing its constants
// into an invalid configuration fails to compile.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/ajroetker/go-wavelayout/wmma/layout"
	"k8s.io/klog/v2"
)

var (
	layoutName  = flag.String("layout", "col_ortho", "Layout: col_ortho, col_inline, row_ortho or row_inline")
	targetName  = flag.String("target", wmma.CurrentTarget().Name, "Target ("+strings.Join(wmma.TargetNames(), ",")+")")
	blockDim    = flag.Uint("block-dim", 128, "BlockDim of the tile")
	blockK      = flag.Uint("block-k", 8, "BlockK of the tile")
	vectorWidth = flag.Uint("vw", 2, "VectorWidth of each access")
	maxVW       = flag.Uint("max-vw", 4, "MaxVectorWidth of the tile shape")
	elementSize = flag.Uint("elem-size", 2, "Element size in bytes")
	packageOut  = flag.String("pkg", "", "Output package name (default: $GOPACKAGE)")
	typeName    = flag.String("type", "", "Generated type name (default: derived from the configuration)")
	outputDir   = flag.String("output", ".", "Output directory, or - for stdout")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	gen, err := newGenerator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}
	path, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if path != "-" {
		fmt.Printf("Successfully generated %s\n", path)
	}
}

func newGenerator() (*Generator, error) {
	kind, err := layout.ParseKind(*layoutName)
	if err != nil {
		return nil, err
	}
	target, err := wmma.ParseTarget(*targetName)
	if err != nil {
		return nil, err
	}
	pkg := *packageOut
	if pkg == "" {
		pkg = os.Getenv("GOPACKAGE")
	}
	if pkg == "" {
		return nil, fmt.Errorf("-pkg is required outside of go:generate")
	}
	return &Generator{
		Kind:   kind,
		Target: target,
		Config: layout.Config{
			BlockDim:       uint32(*blockDim),
			BlockK:         uint32(*blockK),
			VectorWidth:    uint32(*vectorWidth),
			MaxVectorWidth: uint32(*maxVW),
		},
		ElementSize: uint32(*elementSize),
		Package:     pkg,
		TypeName:    *typeName,
		OutputDir:   *outputDir,
	}, nil
}
