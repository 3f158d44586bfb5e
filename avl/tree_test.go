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
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type AVLTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string // In-order traversal expectation after operations
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Left-Heavy)",
			InitialKeys:   []string{"cherry"},
			KeysToInsert:  []string{"banana", "apple"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Deletion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"cherry", "banana", "apple", "date"},
			KeysToDelete:  []string{"apple"},
			ExpectedOrder: []string{"banana", "cherry", "date"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
		{
			Name:          "Duplicates Ignored",
			InitialKeys:   []string{"kiwi", "fig"},
			KeysToInsert:  []string{"kiwi", "fig", "lime"},
			ExpectedOrder: []string{"fig", "kiwi", "lime"},
		},
		{
			Name:          "Delete Missing And Root",
			InitialKeys:   []string{"b", "a", "c"},
			KeysToDelete:  []string{"zzz", "b"},
			ExpectedOrder: []string{"a", "c"},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []string{"m", "f", "t", "a", "h"},
			KeysToDelete:  []string{"f", "m", "a", "t", "h"},
			ExpectedOrder: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[string]()
			for _, key := range tc.InitialKeys {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				tree.Erase(key)
			}

			require.NoError(t, tree.Check())
			assert.Equal(t, tc.ExpectedOrder, tree.Values())
			assert.Equal(t, len(tc.ExpectedOrder), tree.Len())
		})
	}
}

// shape returns the root and its two children, -1 marking a missing child.
func shape(t *testing.T, tree *Tree[int]) (root, left, right int) {
	t.Helper()
	require.NotEqual(t, none, tree.root)
	n := tree.at(tree.root)
	left, right = -1, -1
	if n.left != none {
		left = tree.at(n.left).value
	}
	if n.right != none {
		right = tree.at(n.right).value
	}
	return n.value, left, right
}

func TestInsertRotationScenarios(t *testing.T) {
	tests := []struct {
		name   string
		insert []int
	}{
		{"right-right single left rotation", []int{10, 20, 30}},
		{"left-left single right rotation", []int{30, 20, 10}},
		{"left-right double rotation", []int{30, 10, 20}},
		{"right-left double rotation", []int{10, 30, 20}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := New[int]()
			for _, v := range tc.insert {
				require.True(t, tree.Insert(v))
			}
			require.NoError(t, tree.Check())

			root, left, right := shape(t, tree)
			assert.Equal(t, 20, root)
			assert.Equal(t, 10, left)
			assert.Equal(t, 30, right)
			assert.Equal(t, 1, tree.Height())
			assert.Equal(t, 3, tree.Len())
		})
	}
}

func TestEraseRebalances(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{10, 20, 30, 40, 50, 25} {
		tree.Insert(v)
	}
	require.NoError(t, tree.Check())
	root, left, right := shape(t, tree)
	assert.Equal(t, []int{30, 20, 40}, []int{root, left, right})

	assert.True(t, tree.Erase(40))
	require.NoError(t, tree.Check())
	assert.True(t, tree.Erase(50))
	require.NoError(t, tree.Check())

	assert.Equal(t, []int{10, 20, 25, 30}, tree.Values())
	root, left, right = shape(t, tree)
	assert.Equal(t, []int{20, 10, 30}, []int{root, left, right})
	assert.Equal(t, 2, tree.Height())
}

func TestEraseTwoChildrenKeepsNode(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(v)
	}
	rootSlot := tree.root

	require.True(t, tree.Erase(50))
	require.NoError(t, tree.Check())

	// The root slot now carries the in-order successor.
	assert.Equal(t, rootSlot, tree.root)
	v, err := tree.Root()
	require.NoError(t, err)
	assert.Equal(t, 60, v)
	assert.Equal(t, []int{20, 30, 40, 60, 70, 80}, tree.Values())
}

func TestNoOpOnEmptyAndAbsent(t *testing.T) {
	tree := New[int]()
	assert.False(t, tree.Erase(1))
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, -1, tree.Height())
	_, found := tree.Find(1)
	assert.False(t, found)

	tree.Insert(1)
	tree.Insert(2)
	assert.False(t, tree.Erase(3))
	assert.Equal(t, 2, tree.Len())
	require.NoError(t, tree.Check())
}

func TestInsertDuplicateIsIdempotent(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{4, 2, 6, 1, 3} {
		tree.Insert(v)
	}
	before := tree.Diagram()

	assert.False(t, tree.Insert(3))
	assert.False(t, tree.Insert(4))
	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, before, tree.Diagram())
}

func TestFindReturnsStoredElement(t *testing.T) {
	type entry struct {
		key string
		val int
	}
	tree := NewFunc(func(a, b entry) int { return strings.Compare(a.key, b.key) })

	require.True(t, tree.Insert(entry{"alpha", 1}))
	require.False(t, tree.Insert(entry{"alpha", 2}))

	got, found := tree.Find(entry{key: "alpha"})
	require.True(t, found)
	assert.Equal(t, 1, got.val)
	assert.True(t, tree.Contains(entry{key: "alpha"}))
	assert.False(t, tree.Contains(entry{key: "beta"}))
}

func TestEmptyTreeAccessors(t *testing.T) {
	tree := New[int]()

	_, err := tree.Min()
	assert.True(t, errors.Is(err, ErrEmpty))
	_, err = tree.Max()
	assert.True(t, errors.Is(err, ErrEmpty))
	_, err = tree.Root()
	assert.True(t, errors.Is(err, ErrEmpty))

	tree.Insert(7)
	tree.Insert(3)
	tree.Insert(9)
	lo, err := tree.Min()
	require.NoError(t, err)
	hi, err := tree.Max()
	require.NoError(t, err)
	assert.Equal(t, 3, lo)
	assert.Equal(t, 9, hi)
}

func TestCloneIsIndependent(t *testing.T) {
	tree := New[int]()
	for v := range 20 {
		tree.Insert(v)
	}
	clone := tree.Clone()
	require.NoError(t, clone.Check())
	assert.Equal(t, tree.Values(), clone.Values())

	clone.Erase(5)
	clone.Insert(100)
	tree.Erase(10)

	assert.True(t, tree.Contains(5))
	assert.False(t, tree.Contains(100))
	assert.True(t, clone.Contains(10))
	require.NoError(t, tree.Check())
	require.NoError(t, clone.Check())
}

func TestClear(t *testing.T) {
	tree := New[int]()
	for v := range 10 {
		tree.Insert(v)
	}
	tree.Clear()

	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.Values())
	require.NoError(t, tree.Check())

	assert.True(t, tree.Insert(42))
	assert.Equal(t, []int{42}, tree.Values())
}

func TestStringAndDiagram(t *testing.T) {
	tree := New[int]()
	assert.Equal(t, "<>", tree.String())
	assert.Equal(t, "(empty)\n", tree.Diagram())

	for _, v := range []int{10, 20, 30} {
		tree.Insert(v)
	}
	assert.Equal(t, "<10 20 30>", tree.String())

	diagram := tree.Diagram()
	assert.True(t, strings.HasPrefix(diagram, "20 (h=1)"))
	assert.Contains(t, diagram, "10 (h=0)")
	assert.Contains(t, diagram, "30 (h=0)")
}
