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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/ajroetker/go-wavelayout/wmma"
	"github.com/ajroetker/go-wavelayout/wmma/layout"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
	"k8s.io/klog/v2"
)

// Generator emits the constant-folded implementation of one layout.
type Generator struct {
	Kind        layout.Kind
	Target      wmma.Target
	Config      layout.Config
	ElementSize uint32

	// Package is the package clause of the generated file.
	Package string

	// TypeName overrides the generated type name.
	TypeName string

	// OutputDir receives the generated file; "-" writes to stdout.
	OutputDir string
}

// fileData feeds fileTemplate.
type fileData struct {
	Command    string
	Package    string
	Type       string
	Prefix     string
	Layout     string
	Regime     string
	Target     wmma.Target
	Config     layout.Config
	WaveSize   uint32
	Transposed bool
	Log2s      []constant
	Guards     []guard
	Base       offset
	Increment  offset
	Cumulate   offset
}

var fileTemplate = template.Must(template.New("layout").Funcs(template.FuncMap{
	"coord": func(transposed bool, o offset) string {
		if transposed {
			return fmt.Sprintf("wmma.Coord(%s, %s)", o.Y, o.X)
		}
		return fmt.Sprintf("wmma.Coord(%s, %s)", o.X, o.Y)
	},
}).Parse(`// Code generated by {{.Command}}. DO NOT EDIT.

package {{.Package}}

import "github.com/ajroetker/go-wavelayout/wmma"

// {{.Type}} is the {{.Layout}} layout of a {{.Config.BlockDim}}x{{.Config.BlockK}} tile
// for {{.Target}}, with VectorWidth={{.Config.VectorWidth}} and MaxVectorWidth={{.Config.MaxVectorWidth}}.
//
// Regime: {{.Regime}}.
type {{.Type}} struct{}

const (
	$WaveSize       = {{.WaveSize}}
	$BlockDim       = {{.Config.BlockDim}}
	$BlockK         = {{.Config.BlockK}}
	$VectorWidth    = {{.Config.VectorWidth}}
	$MaxVectorWidth = {{.Config.MaxVectorWidth}}

	// $Iterations is the number of accesses of each lane.
	$Iterations = $BlockDim * $BlockK / ($WaveSize * $VectorWidth)
{{range .Log2s}}
	${{.Name}} = {{.Value}}{{end}}
)

// Each index is zero exactly when its condition holds: changing the constants
// above to an invalid configuration fails to compile.
var (
{{- range .Guards}}
	_ = [1]struct{}{}[{{.Expr}}] // {{.Doc}}{{end}}
{{- range .Log2s}}
	_ = [1]struct{}{}[1<<${{.Name}} ^ ({{.Of}})] // ${{.Name}} is log2({{.Of}}){{end}}
)

// Iterations returns the number of accesses of each lane.
func ({{.Type}}) Iterations() uint32 {
	return $Iterations
}

// BaseOffset returns the coordinate of lane at iteration 0.
func ({{.Type}}) BaseOffset(lane uint32) wmma.MatrixCoord {
{{- range .Base.Stmts}}
	{{.}}{{end}}
	return {{coord .Transposed .Base}}
}

// IncrementalOffset returns the step from iteration to iteration+1.
func ({{.Type}}) IncrementalOffset(iteration uint32) wmma.MatrixCoord {
{{- range .Increment.Stmts}}
	{{.}}{{end}}
	return {{coord .Transposed .Increment}}
}

// CumulativeOffset returns the offset of iteration from BaseOffset.
func ({{.Type}}) CumulativeOffset(iteration uint32) wmma.MatrixCoord {
{{- range .Cumulate.Stmts}}
	{{.}}{{end}}
	return {{coord .Transposed .Cumulate}}
}
`))

// typeName returns the default generated type name, e.g.
// "ColOrthoVW128x8VW2Max4Gfx90a".
func (g *Generator) typeName() string {
	if g.TypeName != "" {
		return g.TypeName
	}
	c := g.Config
	return fmt.Sprintf("%s%dx%dVW%dMax%d%s", g.Kind.TypeName(), c.BlockDim, c.BlockK, c.VectorWidth,
		c.MaxVectorWidth, cases.Title(language.English).String(g.Target.Name))
}

// FileName returns the name of the generated file.
func (g *Generator) FileName() string {
	c := g.Config
	return fmt.Sprintf("%s_%dx%d_vw%d_%d_%s.gen.go", g.Kind, c.BlockDim, c.BlockK, c.VectorWidth, c.MaxVectorWidth, g.Target.Name)
}

// command reconstructs the invocation for the generated header.
func (g *Generator) command() string {
	c := g.Config
	return fmt.Sprintf("layoutgen -layout %s -target %s -block-dim %d -block-k %d -vw %d -max-vw %d",
		g.Kind, g.Target.Name, c.BlockDim, c.BlockK, c.VectorWidth, c.MaxVectorWidth)
}

// Generate validates the configuration and returns the formatted source.
func (g *Generator) Generate() ([]byte, error) {
	l, err := layout.Build(g.Kind, g.Target, g.ElementSize, g.Config)
	if err != nil {
		return nil, err
	}
	r, err := newRegime(l)
	if err != nil {
		return nil, err
	}
	name := g.typeName()
	if !isExported(name) {
		return nil, errors.Errorf("type name %q must be an exported Go identifier", name)
	}
	data := fileData{
		Command:    g.command(),
		Package:    g.Package,
		Type:       name,
		Prefix:     string(unicode.ToLower(rune(name[0]))) + name[1:],
		Layout:     l.Kind().TypeName(),
		Regime:     r.Name,
		Target:     g.Target,
		Config:     g.Config,
		WaveSize:   g.Target.WaveSize(),
		Transposed: g.Kind.IsRow(),
		Log2s:      r.Log2s,
		Guards:     r.Guards,
		Base:       r.Base,
		Increment:  r.Increment,
		Cumulate:   r.Cumulate,
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "execute template")
	}
	src := strings.ReplaceAll(buf.String(), "$", data.Prefix)
	formatted, err := imports.Process(g.FileName(), []byte(src), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "format generated %s:\n%s", g.FileName(), src)
	}
	klog.V(1).Infof("layoutgen: %s (%s), %d guards", name, r.Name, len(r.Guards)+len(r.Log2s))
	return formatted, nil
}

// Run generates the file and writes it to OutputDir. It returns the path
// written, or "-" for stdout.
func (g *Generator) Run() (string, error) {
	src, err := g.Generate()
	if err != nil {
		return "", err
	}
	if g.OutputDir == "-" {
		_, err = os.Stdout.Write(src)
		return "-", err
	}
	path := filepath.Join(g.OutputDir, g.FileName())
	if err := os.WriteFile(path, src, 0644); err != nil {
		return "", errors.Wrap(err, "write generated file")
	}
	return path, nil
}

func isExported(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if !unicode.IsLetter(r) && r != '_' && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return unicode.IsUpper(rune(name[0]))
}
