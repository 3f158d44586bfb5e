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

package avl

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// heightBound is the worst-case AVL height for n elements.
func heightBound(n int) float64 {
	return 1.4405 * math.Log2(float64(n+2))
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42, 2025} {
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		tree := New[int]()
		model := map[int]bool{}
		inserted, erased := 0, 0

		for i := 0; i < 3000; i++ {
			v := rng.IntN(500)
			if rng.IntN(3) == 0 {
				got := tree.Erase(v)
				assert.Equal(t, model[v], got, "erase %d", v)
				if got {
					erased++
				}
				delete(model, v)
			} else {
				got := tree.Insert(v)
				assert.Equal(t, !model[v], got, "insert %d", v)
				if got {
					inserted++
				}
				model[v] = true
			}

			if i%97 == 0 {
				require.NoError(t, tree.Check(), "seed %d step %d", seed, i)
			}
		}

		require.NoError(t, tree.Check())
		assert.Equal(t, inserted-erased, tree.Len())
		assert.Equal(t, len(model), tree.Len())
		assert.LessOrEqual(t, float64(tree.Height()), heightBound(tree.Len()))

		want := make([]int, 0, len(model))
		for v := range model {
			want = append(want, v)
		}
		slices.Sort(want)
		assert.Equal(t, want, tree.Values())
	}
}

func TestSequentialInsertHeightBound(t *testing.T) {
	tree := New[int]()
	for v := range 4096 {
		tree.Insert(v)
	}
	require.NoError(t, tree.Check())
	assert.LessOrEqual(t, float64(tree.Height()), heightBound(tree.Len()))

	for v := 0; v < 4096; v += 2 {
		require.True(t, tree.Erase(v))
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, 2048, tree.Len())
	assert.LessOrEqual(t, float64(tree.Height()), heightBound(tree.Len()))
}

func TestRoundTrip(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{8, 3, 11, 1, 6} {
		tree.Insert(v)
	}
	for _, v := range []int{8, 3, 11, 1, 6, 99} {
		tree.Insert(v)
		_, found := tree.Find(v)
		assert.True(t, found, "find %d after insert", v)

		tree.Erase(v)
		_, found = tree.Find(v)
		assert.False(t, found, "find %d after erase", v)
		require.NoError(t, tree.Check())
	}
	assert.Equal(t, 0, tree.Len())
}

func TestTraversals(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{50, 20, 80, 10, 30, 70, 90, 60} {
		tree.Insert(v)
	}

	assert.Equal(t, []int{10, 20, 30, 50, 60, 70, 80, 90}, slices.Collect(tree.All()))
	assert.Equal(t, []int{90, 80, 70, 60, 50, 30, 20, 10}, slices.Collect(tree.Backward()))
	assert.Equal(t, []int{30, 50, 60}, slices.Collect(tree.Range(25, 70)))
	assert.Equal(t, []int{50}, slices.Collect(tree.Range(50, 51)))
	assert.Empty(t, slices.Collect(tree.Range(91, 200)))
	assert.Empty(t, slices.Collect(tree.Range(60, 60)))

	// Restartable and stoppable.
	seq := tree.All()
	var firstTwo []int
	for v := range seq {
		firstTwo = append(firstTwo, v)
		if len(firstTwo) == 2 {
			break
		}
	}
	assert.Equal(t, []int{10, 20}, firstTwo)
	assert.Equal(t, 8, len(slices.Collect(seq)))

	assert.Empty(t, slices.Collect(New[int]().All()))
	assert.Empty(t, slices.Collect(New[int]().Backward()))
}

func BenchmarkInsert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for v := range 1024 {
			tree.Insert(v)
		}
	}
}

func BenchmarkFind(b *testing.B) {
	tree := New[int]()
	for v := range 1 << 16 {
		tree.Insert(v)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Contains(i & (1<<16 - 1))
	}
}
