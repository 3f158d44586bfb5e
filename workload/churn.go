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

const (
	DefaultEraseRatio = 0.3
	DefaultFindRatio  = 0.2
)

// ChurnGenerator mixes inserts of random keys with erases of keys that are
// currently present and finds of arbitrary keys. It is the pattern that
// exercises deletion rebalancing.
type ChurnGenerator struct {
	eraseRatio float64
	findRatio  float64
}

func NewChurnGenerator(eraseRatio, findRatio float64) *ChurnGenerator {
	return &ChurnGenerator{eraseRatio: eraseRatio, findRatio: findRatio}
}

func (g *ChurnGenerator) Name() string { return "churn" }

func (g *ChurnGenerator) Supports(name string) bool {
	return name == "churn" || name == "mixed"
}

func (g *ChurnGenerator) Priority() int {
	return 4
}

func (g *ChurnGenerator) Generate(n int, seed int64) []Op {
	if n <= 0 {
		return []Op{}
	}
	rng := newRand(seed)
	keySpace := n * keySpaceFactor

	ops := make([]Op, 0, n)
	present := make([]int, 0, n)
	index := make(map[int]int, n) // key -> position in present

	for len(ops) < n {
		roll := rng.Float64()
		switch {
		case roll < g.eraseRatio && len(present) > 0:
			i := rng.IntN(len(present))
			k := present[i]
			last := present[len(present)-1]
			present[i] = last
			index[last] = i
			present = present[:len(present)-1]
			delete(index, k)
			ops = append(ops, Op{Kind: Erase, Key: k})
		case roll < g.eraseRatio+g.findRatio:
			ops = append(ops, Op{Kind: Find, Key: rng.IntN(keySpace)})
		default:
			k := rng.IntN(keySpace)
			if _, ok := index[k]; !ok {
				index[k] = len(present)
				present = append(present, k)
			}
			ops = append(ops, Op{Kind: Insert, Key: k})
		}
	}
	return ops
}
