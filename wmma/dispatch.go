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

package wmma

import (
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrInvalidConfig is wrapped by every error reporting a tile, vector width
// or target combination that no layout can serve.
var ErrInvalidConfig = errors.New("invalid wave layout configuration")

// ErrUnknownTarget is returned by ParseTarget for unrecognized architectures.
var ErrUnknownTarget = errors.New("unknown target")

// TargetEnv is the environment variable selecting the default target at init.
const TargetEnv = "WMMA_TARGET"

// DefaultTargetName is used when TargetEnv is unset.
const DefaultTargetName = "gfx90a"

// Family groups architectures that share a wave size.
type Family int

const (
	// FamilyCDNA are the compute (Instinct) architectures, running 64-lane waves.
	FamilyCDNA Family = iota

	// FamilyRDNA are the graphics architectures with WMMA, running 32-lane waves.
	FamilyRDNA
)

// String returns a human-readable name for the family.
func (f Family) String() string {
	switch f {
	case FamilyCDNA:
		return "cdna"
	case FamilyRDNA:
		return "rdna"
	default:
		return "unknown"
	}
}

// WaveSize returns the number of lanes in one wave for the family.
func (f Family) WaveSize() uint32 {
	switch f {
	case FamilyRDNA:
		return 32
	default:
		return 64
	}
}

// Target identifies the GPU architecture the layouts are computed for.
// The only property the layouts consume is the wave size.
type Target struct {
	Name   string
	Family Family
}

// WaveSize returns the number of lanes in one wave on this target.
func (t Target) WaveSize() uint32 {
	return t.Family.WaveSize()
}

// String implements fmt.Stringer.
func (t Target) String() string {
	return t.Name
}

var knownTargets = map[string]Family{
	"gfx908":  FamilyCDNA,
	"gfx90a":  FamilyCDNA,
	"gfx940":  FamilyCDNA,
	"gfx941":  FamilyCDNA,
	"gfx942":  FamilyCDNA,
	"gfx1100": FamilyRDNA,
	"gfx1101": FamilyRDNA,
	"gfx1102": FamilyRDNA,
	"gfx1200": FamilyRDNA,
	"gfx1201": FamilyRDNA,
}

// ParseTarget returns the Target for an architecture name such as "gfx90a".
// Feature suffixes ("gfx90a:sramecc+:xnack-") are ignored.
func ParseTarget(name string) (Target, error) {
	arch, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(name)), ":")
	family, found := knownTargets[arch]
	if !found {
		return Target{}, errors.Wrapf(ErrUnknownTarget, "%q (known: %s)", name, strings.Join(TargetNames(), ","))
	}
	return Target{Name: arch, Family: family}, nil
}

// MustParseTarget is like ParseTarget but panics on unknown names.
func MustParseTarget(name string) Target {
	t, err := ParseTarget(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TargetNames returns the sorted names of all known targets.
func TargetNames() []string {
	names := make([]string, 0, len(knownTargets))
	for name := range knownTargets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Targets returns all known targets sorted by name.
func Targets() []Target {
	names := TargetNames()
	targets := make([]Target, len(names))
	for i, name := range names {
		targets[i] = Target{Name: name, Family: knownTargets[name]}
	}
	return targets
}

// currentTarget is the target selected at init from TargetEnv.
var currentTarget Target

func init() {
	currentTarget = targetFromEnv()
}

func targetFromEnv() Target {
	name := os.Getenv(TargetEnv)
	if name == "" {
		return MustParseTarget(DefaultTargetName)
	}
	t, err := ParseTarget(name)
	if err != nil {
		klog.Warningf("%s=%q: %v, falling back to %s", TargetEnv, name, err, DefaultTargetName)
		return MustParseTarget(DefaultTargetName)
	}
	return t
}

// CurrentTarget returns the target selected at process start, from the
// WMMA_TARGET environment variable or DefaultTargetName.
func CurrentTarget() Target {
	return currentTarget
}
