// Copyright 2025 Naren Yellavula
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

package workload

// SequentialGenerator inserts 0..n-1 in ascending order, which forces a
// rotation on every other insert.
type SequentialGenerator struct{}

func (g *SequentialGenerator) Name() string { return "sequential" }

func (g *SequentialGenerator) Supports(name string) bool {
	return name == "sequential" || name == "seq" || name == "asc"
}

func (g *SequentialGenerator) Priority() int {
	return 1
}

func (g *SequentialGenerator) Generate(n int, seed int64) []Op {
	keys := make([]int, max(n, 0))
	for i := range keys {
		keys[i] = i
	}
	return inserts(keys)
}

// ReverseGenerator inserts n-1..0, the mirror image of SequentialGenerator.
type ReverseGenerator struct{}

func (g *ReverseGenerator) Name() string { return "reverse" }

func (g *ReverseGenerator) Supports(name string) bool {
	return name == "reverse" || name == "desc"
}

func (g *ReverseGenerator) Priority() int {
	return 1
}

func (g *ReverseGenerator) Generate(n int, seed int64) []Op {
	keys := make([]int, max(n, 0))
	for i := range keys {
		keys[i] = n - 1 - i
	}
	return inserts(keys)
}
