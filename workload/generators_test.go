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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(ops []Op) []int {
	keys := make([]int, len(ops))
	for i, op := range ops {
		keys[i] = op.Key
	}
	return keys
}

func TestOrderedGenerators(t *testing.T) {
	tests := []struct {
		generator Generator
		expected  []int
	}{
		{&SequentialGenerator{}, []int{0, 1, 2, 3, 4}},
		{&ReverseGenerator{}, []int{4, 3, 2, 1, 0}},
		{&ZigzagGenerator{}, []int{0, 4, 1, 3, 2}},
	}

	for _, tc := range tests {
		ops := tc.generator.Generate(5, 0)
		assert.Equal(t, tc.expected, keysOf(ops), tc.generator.Name())
		for _, op := range ops {
			assert.Equal(t, Insert, op.Kind)
		}
	}

	assert.Equal(t, []int{0, 3, 1, 2}, keysOf((&ZigzagGenerator{}).Generate(4, 0)))
}

func TestGeneratorsHandleEmptySize(t *testing.T) {
	for _, g := range NewRegistry().generators {
		assert.Empty(t, g.Generate(0, 1), g.Name())
		assert.Empty(t, g.Generate(-3, 1), g.Name())
	}
}

func TestRandomGeneratorUniqueAndDeterministic(t *testing.T) {
	g := NewRandomGenerator(DefaultFalsePositiveRate)

	ops := g.Generate(2000, 42)
	require.Len(t, ops, 2000)

	seen := map[int]bool{}
	for _, op := range ops {
		assert.Equal(t, Insert, op.Kind)
		assert.False(t, seen[op.Key], "key %d repeated", op.Key)
		assert.GreaterOrEqual(t, op.Key, 0)
		assert.Less(t, op.Key, 2000*keySpaceFactor)
		seen[op.Key] = true
	}

	assert.Equal(t, ops, g.Generate(2000, 42))
	assert.NotEqual(t, ops, g.Generate(2000, 43))
}

func TestChurnGeneratorErasesOnlyPresentKeys(t *testing.T) {
	g := NewChurnGenerator(DefaultEraseRatio, DefaultFindRatio)
	ops := g.Generate(5000, 7)
	require.Len(t, ops, 5000)

	present := map[int]bool{}
	counts := map[OpKind]int{}
	for _, op := range ops {
		counts[op.Kind]++
		switch op.Kind {
		case Insert:
			present[op.Key] = true
		case Erase:
			require.True(t, present[op.Key], "erase of absent key %d", op.Key)
			delete(present, op.Key)
		}
	}

	assert.Positive(t, counts[Insert])
	assert.Positive(t, counts[Erase])
	assert.Positive(t, counts[Find])
}
