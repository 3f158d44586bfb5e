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

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/willf/bloom"
)

const (
	DefaultFalsePositiveRate = 0.01
	// Keys are drawn from [0, n*keySpaceFactor).
	keySpaceFactor = 4
)

// newRand returns a deterministic source for seed.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// RandomGenerator inserts n distinct random keys. A bloom filter tracks the
// keys handed out so far; it has no false negatives, so no key repeats, and a
// false positive only means a fresh candidate is skipped.
type RandomGenerator struct {
	falsePositiveRate float64
}

func NewRandomGenerator(falsePositiveRate float64) *RandomGenerator {
	return &RandomGenerator{falsePositiveRate: falsePositiveRate}
}

func (g *RandomGenerator) Name() string { return "random" }

func (g *RandomGenerator) Supports(name string) bool {
	return name == "random" || name == "rand" || name == "shuffle"
}

func (g *RandomGenerator) Priority() int {
	return 3
}

func (g *RandomGenerator) Generate(n int, seed int64) []Op {
	if n <= 0 {
		return []Op{}
	}
	rng := newRand(seed)
	filter := bloom.NewWithEstimates(uint(n), g.falsePositiveRate)

	var buf [8]byte
	keys := make([]int, 0, n)
	for len(keys) < n {
		k := rng.IntN(n * keySpaceFactor)
		binary.BigEndian.PutUint64(buf[:], uint64(k))
		if filter.Test(buf[:]) {
			continue
		}
		filter.Add(buf[:])
		keys = append(keys, k)
	}
	return inserts(keys)
}
