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
	"go/scanner"
	"go/token"
	"testing"

	"github.com/ajroetker/go-wavelayout/cmd/layoutgen/internal/tiles"
	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/ajroetker/go-wavelayout/wmma/layout"
)

// compiledTile is the method set of every generated type.
type compiledTile interface {
	Iterations() uint32
	BaseOffset(lane uint32) wmma.MatrixCoord
	IncrementalOffset(iteration uint32) wmma.MatrixCoord
	CumulativeOffset(iteration uint32) wmma.MatrixCoord
}

// compiledTiles are the checked-in outputs for generatorCases, keyed by case name.
var compiledTiles = map[string]compiledTile{
	"OrthoLarge":  tiles.ColOrthoVW128x8VW2Max4Gfx90a{},
	"OrthoSmall":  tiles.ColOrthoVW16x16VW1Max4Gfx90a{},
	"InlineLarge": tiles.ColInlineVW256x4VW1Max2Gfx942{},
	"InlineSmall": tiles.ColInlineVW32x8VW2Max4Gfx1100{},
	"RowOrtho":    tiles.RowOrthoVW64x4VW4Max4Gfx1100{},
	"RowInline":   tiles.RowInlineVW64x16VW1Max8Gfx90a{},
}

func TestCompiledTilesMatchLayouts(t *testing.T) {
	for _, tt := range generatorCases {
		t.Run(tt.name, func(t *testing.T) {
			tile, ok := compiledTiles[tt.name]
			if !ok {
				t.Fatalf("no compiled tile for %s", tt.name)
			}
			target := wmma.MustParseTarget(tt.target)
			l, err := layout.Build(tt.kind, target, 2, tt.config)
			if err != nil {
				t.Fatalf("layout.Build(%s %s %s) failed: %v", tt.kind, tt.target, tt.config, err)
			}
			if got, want := tile.Iterations(), l.Iterations(); got != want {
				t.Fatalf("Iterations() = %d, want %d", got, want)
			}
			for lane := range target.WaveSize() {
				if got, want := tile.BaseOffset(lane), l.BaseOffset(lane); got != want {
					t.Errorf("BaseOffset(%d) = %s, want %s", lane, got, want)
				}
			}
			for iteration := range l.Iterations() {
				if got, want := tile.CumulativeOffset(iteration), l.CumulativeOffset(iteration); got != want {
					t.Errorf("CumulativeOffset(%d) = %s, want %s", iteration, got, want)
				}
				if got, want := tile.IncrementalOffset(iteration), l.IncrementalOffset(iteration); got != want {
					t.Errorf("IncrementalOffset(%d) = %s, want %s", iteration, got, want)
				}
			}
		})
	}
}

// sourceTokens scans src into its tokens, comments and automatic semicolons
// included, so two sources compare equal when only their spacing differs.
func sourceTokens(t *testing.T, name string, src []byte) []string {
	t.Helper()
	fset := token.NewFileSet()
	var s scanner.Scanner
	s.Init(fset.AddFile(name, fset.Base(), len(src)), src, func(pos token.Position, msg string) {
		t.Errorf("%s: %s", pos, msg)
	}, scanner.ScanComments)
	var toks []string
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			return toks
		}
		toks = append(toks, tok.String()+" "+lit)
	}
}
