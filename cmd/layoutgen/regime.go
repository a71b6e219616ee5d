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
	"strings"

	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/ajroetker/go-wavelayout/wmma/layout"
	"github.com/pkg/errors"
)

// constant is a derived constant emitted as a literal. Of is the expression,
// over the parameter constants, that the literal is the base-2 logarithm of;
// a guard checks that they agree.
type constant struct {
	Name  string
	Value uint32
	Of    string
}

// guard is a constant index expression that is zero exactly when the
// condition described by Doc holds.
type guard struct {
	Doc  string
	Expr string
}

// offset is the body of one generated method: statements, then the column
// layout coordinates X and Y.
type offset struct {
	Stmts []string
	X, Y  string
}

// regime holds everything that depends on the generator and its regime.
type regime struct {
	Name      string
	Log2s     []constant
	Guards    []guard
	Base      offset
	Increment offset
	Cumulate  offset
}

// Expressions below use "$" for the generated constant prefix.

func pow2Guards(names ...string) []guard {
	guards := make([]guard, 0, len(names))
	for _, name := range names {
		guards = append(guards, guard{
			Doc:  name + " is a positive power of two",
			Expr: fmt.Sprintf("$%s&($%s-1) + 0/$%s", name, name, name),
		})
	}
	return guards
}

func commonGuards() []guard {
	guards := pow2Guards("BlockDim", "BlockK", "VectorWidth", "MaxVectorWidth", "WaveSize")
	return append(guards,
		guard{"VectorWidth <= MaxVectorWidth", "$VectorWidth / ($MaxVectorWidth + 1)"},
		guard{"the tile is a whole number of wave accesses", "$BlockDim * $BlockK % ($WaveSize * $VectorWidth)"},
	)
}

func log2(name string, value uint32, of string) constant {
	return constant{Name: name, Value: wmma.Log2(value), Of: of}
}

// newRegime derives the generated code for l.
func newRegime(l layout.Layout) (regime, error) {
	io := l.IOTraits()
	vwSegs := l.MaxVectorWidth() / io.VectorWidth
	common := []constant{
		log2("Log2VW", io.VectorWidth, "$VectorWidth"),
		log2("Log2MaxVW", l.MaxVectorWidth(), "$MaxVectorWidth"),
		log2("Log2VWSegs", vwSegs, "$MaxVectorWidth / $VectorWidth"),
	}
	const (
		minorMask = "minor := wmma.StepMask(iteration+1, 1<<$Log2VWSegs-1)"
		majorMask = "major := wmma.StepMask(iteration+1, 1<<($Log2VWSegs+$Log2BlockDimSegs)-1)"
	)

	switch col := columnOf(l).(type) {
	case *layout.ColOrthoVW:
		t := col.Traits()
		if t.LargeDim {
			return regime{
				Name: "ColOrthoVW, BlockDim >= WaveSize",
				Log2s: append(common,
					log2("Log2WaveSize", t.WaveSize, "$WaveSize"),
					log2("Log2BlockDimSegs", t.BlockDimSegs, "$BlockDim / $WaveSize")),
				Guards: append(commonGuards(),
					guard{"BlockDim >= WaveSize", "$WaveSize / ($BlockDim + 1)"},
					guard{"BlockK is a multiple of MaxVectorWidth", "$BlockK % $MaxVectorWidth"}),
				Base: offset{X: "int32(lane & ($WaveSize - 1))", Y: "0"},
				Increment: offset{
					Stmts: []string{minorMask, majorMask},
					X:     "$WaveSize&minor - $BlockDim&major",
					Y:     "$VectorWidth + (minor^major)&-$MaxVectorWidth",
				},
				Cumulate: offset{
					Stmts: []string{
						"x := (iteration >> $Log2VWSegs & ($BlockDim/$WaveSize - 1)) << $Log2WaveSize",
						"y := iteration>>($Log2VWSegs+$Log2BlockDimSegs)<<$Log2MaxVW + (iteration&(1<<$Log2VWSegs-1))<<$Log2VW",
					},
					X: "int32(x)",
					Y: "int32(y)",
				},
			}, nil
		}
		return regime{
			Name: "ColOrthoVW, BlockDim < WaveSize",
			Log2s: append(common,
				log2("Log2BlockDim", io.BlockDim, "$BlockDim"),
				log2("Log2MaxKPerIO", t.MaxKPerIO, "$WaveSize * $MaxVectorWidth / $BlockDim")),
			Guards: append(commonGuards(),
				guard{"BlockDim < WaveSize", "$BlockDim / $WaveSize"},
				guard{"BlockK is a multiple of the columns one wave access covers", "$BlockK % ($WaveSize * $MaxVectorWidth / $BlockDim)"}),
			Base: offset{
				X: "int32(lane & ($BlockDim - 1))",
				Y: "int32((lane >> $Log2BlockDim) << $Log2MaxVW & ($WaveSize*$MaxVectorWidth/$BlockDim - 1))",
			},
			Increment: offset{
				Stmts: []string{strings.Replace(minorMask, "minor", "major", 1)},
				X:     "0",
				Y:     "$VectorWidth + major&($MaxVectorWidth*($WaveSize/$BlockDim-1))",
			},
			Cumulate: offset{
				Stmts: []string{"y := (iteration>>$Log2VWSegs)<<$Log2MaxKPerIO + (iteration&(1<<$Log2VWSegs-1))<<$Log2VW"},
				X:     "0",
				Y:     "int32(y)",
			},
		}, nil

	case *layout.ColInlineVW:
		t := col.Traits()
		guards := append(commonGuards(),
			guard{"BlockK >= MaxVectorWidth", "$MaxVectorWidth / ($BlockK + 1)"},
			guard{"BlockK is a multiple of MaxVectorWidth", "$BlockK % $MaxVectorWidth"},
			guard{"BlockDim is a multiple of MaxVectorWidth", "$BlockDim % $MaxVectorWidth"})
		if t.LargeDim {
			return regime{
				Name: "ColInlineVW, BlockDim >= WaveSize * MaxVectorWidth",
				Log2s: append(common,
					log2("Log2MaxElementsPerIO", t.MaxElementsPerIO, "$WaveSize * $MaxVectorWidth"),
					log2("Log2BlockDimSegs", t.BlockDimSegs, "$BlockDim / ($WaveSize * $MaxVectorWidth)")),
				Guards: append(guards,
					guard{"BlockDim >= WaveSize * MaxVectorWidth", "$WaveSize * $MaxVectorWidth / ($BlockDim + 1)"}),
				Base: offset{X: "int32(lane << $Log2MaxVW & ($WaveSize*$MaxVectorWidth - 1))", Y: "0"},
				Increment: offset{
					Stmts: []string{minorMask, majorMask},
					X:     "$VectorWidth - minor&$MaxVectorWidth + minor&($WaveSize*$MaxVectorWidth) - major&$BlockDim",
					Y:     "major & 1",
				},
				Cumulate: offset{
					Stmts: []string{
						"x := (iteration>>$Log2VWSegs&($BlockDim/($WaveSize*$MaxVectorWidth)-1))<<$Log2MaxElementsPerIO + (iteration&(1<<$Log2VWSegs-1))<<$Log2VW",
						"y := iteration >> ($Log2VWSegs + $Log2BlockDimSegs)",
					},
					X: "int32(x)",
					Y: "int32(y)",
				},
			}, nil
		}
		return regime{
			Name: "ColInlineVW, BlockDim < WaveSize * MaxVectorWidth",
			Log2s: append(common,
				log2("Log2BlockDim", io.BlockDim, "$BlockDim"),
				log2("Log2MaxKPerIO", t.MaxKPerIO, "$WaveSize * $MaxVectorWidth / $BlockDim")),
			Guards: append(guards,
				guard{"BlockDim < WaveSize * MaxVectorWidth", "$BlockDim / ($WaveSize * $MaxVectorWidth)"},
				guard{"BlockK is a multiple of the columns one wave access covers", "$BlockK % ($WaveSize * $MaxVectorWidth / $BlockDim)"}),
			Base: offset{
				Stmts: []string{"element := lane << $Log2MaxVW"},
				X:     "int32(element & ($BlockDim - 1))",
				Y:     "int32(element >> $Log2BlockDim & ($WaveSize*$MaxVectorWidth/$BlockDim - 1))",
			},
			Increment: offset{
				Stmts: []string{strings.Replace(minorMask, "minor", "major", 1)},
				X:     "$VectorWidth - major&$MaxVectorWidth",
				Y:     "major & ($WaveSize * $MaxVectorWidth / $BlockDim)",
			},
			Cumulate: offset{
				Stmts: []string{
					"x := (iteration & (1<<$Log2VWSegs - 1)) << $Log2VW",
					"y := (iteration >> $Log2VWSegs) << $Log2MaxKPerIO",
				},
				X: "int32(x)",
				Y: "int32(y)",
			},
		}, nil
	}
	return regime{}, errors.Errorf("unsupported layout %T", l)
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
