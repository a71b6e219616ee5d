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


// Package tiles holds layoutgen output for one configuration of each
// generator regime. The layoutgen tests check every offset against the
// runtime layouts and regenerate each file to catch drift.
package tiles

//go:generate go run ../.. -layout col_ortho -target gfx90a -block-dim 128 -block-k 8 -vw 2 -max-vw 4
//go:generate go run ../.. -layout col_ortho -target gfx90a -block-dim 16 -block-k 16 -vw 1 -max-vw 4
//go:generate go run ../.. -layout col_inline -target gfx942 -block-dim 256 -block-k 4 -vw 1 -max-vw 2
//go:generate go run ../.. -layout col_inline -target gfx1100 -block-dim 32 -block-k 8 -vw 2 -max-vw 4
//go:generate go run ../.. -layout row_ortho -target gfx1100 -block-dim 64 -block-k 4 -vw 4 -max-vw 4
//go:generate go run ../.. -layout row_inline -target gfx90a -block-dim 64 -block-k 16 -vw 1 -max-vw 8
