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

// ZigzagGenerator alternates between the low and the high end of 0..n-1
// (0, n-1, 1, n-2, ...), so inserts land on both sides and trigger the
// double rotation cases.
type ZigzagGenerator struct{}

func (g *ZigzagGenerator) Name() string { return "zigzag" }

func (g *ZigzagGenerator) Supports(name string) bool {
	return name == "zigzag"
}

func (g *ZigzagGenerator) Priority() int {
	return 2
}

func (g *ZigzagGenerator) Generate(n int, seed int64) []Op {
	keys := make([]int, 0, max(n, 0))
	lo, hi := 0, n-1
	for lo <= hi {
		keys = append(keys, lo)
		if lo != hi {
			keys = append(keys, hi)
		}
		lo++
		hi--
	}
	return inserts(keys)
}
