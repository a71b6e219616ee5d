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
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/ajroetker/go-wavelayout/wmma/layout"
)

const wmmaPath = "github.com/ajroetker/go-wavelayout/wmma"

// wmmaSignatures declares the part of package wmma generated code uses.
const wmmaSignatures = `package wmma

type MatrixCoord struct{ X, Y int32 }

func Coord(x, y int32) MatrixCoord { return MatrixCoord{x, y} }

func StepMask(value, modMask uint32) int32 { return 0 }
`

type signatureImporter struct {
	fset *token.FileSet
}

func (imp signatureImporter) Import(path string) (*types.Package, error) {
	if path != wmmaPath {
		return nil, fmt.Errorf("unexpected import %q", path)
	}
	f, err := parser.ParseFile(imp.fset, "wmma.go", wmmaSignatures, 0)
	if err != nil {
		return nil, err
	}
	return new(types.Config).Check(path, imp.fset, []*ast.File{f}, nil)
}

// typeCheck parses and type-checks generated source, returning every error.
func typeCheck(t *testing.T, src string) []error {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "gen.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	var errs []error
	conf := types.Config{
		Importer: signatureImporter{fset},
		Error:    func(err error) { errs = append(errs, err) },
	}
	_, _ = conf.Check("tiles", fset, []*ast.File{f}, nil)
	return errs
}

func generate(t *testing.T, kind layout.Kind, target string, cfg layout.Config) string {
	t.Helper()
	g := &Generator{Kind: kind, Target: wmma.MustParseTarget(target), Config: cfg, ElementSize: 2, Package: "tiles"}
	src, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate(%s %s %s) failed: %v", kind, target, cfg, err)
	}
	return string(src)
}

var typeDecl = regexp.MustCompile(`type (\w+) struct\{\}`)

// setConstant rewrites the value of the generated constant name.
func setConstant(t *testing.T, src, name string, value int) string {
	t.Helper()
	m := typeDecl.FindStringSubmatch(src)
	if m == nil {
		t.Fatalf("no type declaration in:\n%s", src)
	}
	prefix := strings.ToLower(m[1][:1]) + m[1][1:]
	re := regexp.MustCompile(`(?m)^(\t` + prefix + name + `\s*=\s*)\d+$`)
	if !re.MatchString(src) {
		t.Fatalf("constant %s not found in:\n%s", name, src)
	}
	return re.ReplaceAllString(src, fmt.Sprintf("${1}%d", value))
}

var generatorCases = []struct {
	name   string
	kind   layout.Kind
	target string
	config layout.Config
	regime string
}{
	{"OrthoLarge", layout.ColOrtho, "gfx90a", layout.Config{BlockDim: 128, BlockK: 8, VectorWidth: 2, MaxVectorWidth: 4}, "BlockDim >= WaveSize"},
	{"OrthoSmall", layout.ColOrtho, "gfx90a", layout.Config{BlockDim: 16, BlockK: 16, VectorWidth: 1, MaxVectorWidth: 4}, "BlockDim < WaveSize"},
	{"InlineLarge", layout.ColInline, "gfx942", layout.Config{BlockDim: 256, BlockK: 4, VectorWidth: 1, MaxVectorWidth: 2}, "BlockDim >= WaveSize * MaxVectorWidth"},
	{"InlineSmall", layout.ColInline, "gfx1100", layout.Config{BlockDim: 32, BlockK: 8, VectorWidth: 2, MaxVectorWidth: 4}, "BlockDim < WaveSize * MaxVectorWidth"},
	{"RowOrtho", layout.RowOrtho, "gfx1100", layout.Config{BlockDim: 64, BlockK: 4, VectorWidth: 4, MaxVectorWidth: 4}, "BlockDim >= WaveSize"},
	{"RowInline", layout.RowInline, "gfx90a", layout.Config{BlockDim: 64, BlockK: 16, VectorWidth: 1, MaxVectorWidth: 8}, "BlockDim < WaveSize * MaxVectorWidth"},
}

func TestGenerateTypeChecks(t *testing.T) {
	for _, tt := range generatorCases {
		t.Run(tt.name, func(t *testing.T) {
			src := generate(t, tt.kind, tt.target, tt.config)
			if !strings.HasPrefix(src, "// Code generated by layoutgen") {
				t.Errorf("missing generated-code header:\n%s", src)
			}
			if !strings.Contains(src, "Regime: ") || !strings.Contains(src, tt.regime) {
				t.Errorf("regime %q not documented:\n%s", tt.regime, src)
			}
			for _, err := range typeCheck(t, src) {
				t.Errorf("type error: %v", err)
			}
		})
	}
}

func TestGuardsRejectEditedConstants(t *testing.T) {
	tests := []struct {
		name     string
		caseName string
		constant string
		value    int
	}{
		{"BlockKNotPow2", "OrthoLarge", "BlockK", 12},
		{"BlockKNotMultipleOfMaxVW", "OrthoLarge", "BlockK", 2},
		{"BlockDimBelowWave", "OrthoLarge", "BlockDim", 32},
		{"VWAboveMax", "OrthoSmall", "VectorWidth", 8},
		{"BlockKNotMultipleOfMaxKPerIO", "OrthoSmall", "BlockK", 8},
		{"BlockKBelowMaxVW", "InlineSmall", "BlockK", 2},
		{"ZeroBlockDim", "InlineLarge", "BlockDim", 0},
		{"WaveSize", "RowOrtho", "WaveSize", 64},
		{"Log2OutOfDate", "RowInline", "Log2VW", 1},
	}
	sources := map[string]string{}
	for _, c := range generatorCases {
		sources[c.name] = generate(t, c.kind, c.target, c.config)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := setConstant(t, sources[tt.caseName], tt.constant, tt.value)
			if errs := typeCheck(t, src); len(errs) == 0 {
				t.Errorf("%s = %d in %s compiled, want a guard failure", tt.constant, tt.value, tt.caseName)
			}
		})
	}
}

func TestGenerateTransposes(t *testing.T) {
	cfg := layout.Config{BlockDim: 128, BlockK: 8, VectorWidth: 2, MaxVectorWidth: 4}
	col := generate(t, layout.ColOrtho, "gfx90a", cfg)
	row := generate(t, layout.RowOrtho, "gfx90a", cfg)
	if !strings.Contains(col, "return wmma.Coord(int32(lane") {
		t.Errorf("ColOrthoVW base offset should vary X:\n%s", col)
	}
	if !strings.Contains(row, "return wmma.Coord(0, int32(lane") {
		t.Errorf("RowOrthoVW base offset should vary Y:\n%s", row)
	}
	if !strings.Contains(row, "type RowOrthoVW128x8VW2Max4Gfx90a struct{}") {
		t.Errorf("unexpected type name:\n%s", row)
	}
}

func TestGenerateRejects(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
	}{
		{"BlockKNotPow2", Generator{Kind: layout.ColInline, Config: layout.Config{BlockDim: 128, BlockK: 3, VectorWidth: 1, MaxVectorWidth: 2}}},
		{"BlockKBelowMaxVW", Generator{Kind: layout.ColInline, Config: layout.Config{BlockDim: 128, BlockK: 1, VectorWidth: 1, MaxVectorWidth: 2}}},
		{"VWAboveMax", Generator{Kind: layout.RowOrtho, Config: layout.Config{BlockDim: 128, BlockK: 8, VectorWidth: 4, MaxVectorWidth: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.gen.Target = wmma.MustParseTarget("gfx90a")
			tt.gen.ElementSize = 2
			tt.gen.Package = "tiles"
			_, err := tt.gen.Generate()
			if !errors.Is(err, wmma.ErrInvalidConfig) {
				t.Errorf("Generate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}

	g := Generator{Kind: layout.ColOrtho, Target: wmma.MustParseTarget("gfx90a"), ElementSize: 2, Package: "tiles",
		TypeName: "lowercase", Config: layout.Config{BlockDim: 128, BlockK: 8, VectorWidth: 2, MaxVectorWidth: 4}}
	if _, err := g.Generate(); err == nil {
		t.Errorf("Generate() with unexported type name succeeded")
	}
}

func TestNames(t *testing.T) {
	g := &Generator{Kind: layout.ColInline, Target: wmma.MustParseTarget("gfx1100"),
		Config: layout.Config{BlockDim: 32, BlockK: 8, VectorWidth: 2, MaxVectorWidth: 4}}
	if got, want := g.typeName(), "ColInlineVW32x8VW2Max4Gfx1100"; got != want {
		t.Errorf("typeName() = %q, want %q", got, want)
	}
	if got, want := g.FileName(), "col_inline_32x8_vw2_4_gfx1100.gen.go"; got != want {
		t.Errorf("FileName() = %q, want %q", got, want)
	}
	g.TypeName = "Tile"
	if got := g.typeName(); got != "Tile" {
		t.Errorf("typeName() = %q, want the override", got)
	}

	for name, want := range map[string]bool{"Tile": true, "Tile2_x": true, "tile": false, "2Tile": false, "Ti-le": false, "": false} {
		if got := isExported(name); got != want {
			t.Errorf("isExported(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestRunWritesFile(t *testing.T) {
	for _, tt := range generatorCases {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			g := &Generator{Kind: tt.kind, Target: wmma.MustParseTarget(tt.target), ElementSize: 2, Package: "tiles",
				Config: tt.config, OutputDir: dir}
			path, err := g.Run()
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if path != filepath.Join(dir, g.FileName()) {
				t.Errorf("Run() wrote %q", path)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(got), "package tiles") {
				t.Errorf("written file lacks package clause:\n%s", got)
			}

			// The checked-in copy must be what the generator emits today.
			checkedIn := filepath.Join("internal", "tiles", g.FileName())
			want, err := os.ReadFile(checkedIn)
			if err != nil {
				t.Fatalf("%v: run go generate ./cmd/layoutgen/internal/tiles", err)
			}
			gotToks, wantToks := sourceTokens(t, path, got), sourceTokens(t, checkedIn, want)
			for i := range min(len(gotToks), len(wantToks)) {
				if gotToks[i] != wantToks[i] {
					t.Fatalf("%s is stale at token %d: generated %q, checked in %q", checkedIn, i, gotToks[i], wantToks[i])
				}
			}
			if len(gotToks) != len(wantToks) {
				t.Fatalf("%s is stale: generated %d tokens, checked in %d", checkedIn, len(gotToks), len(wantToks))
			}
		})
	}
}
