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

// Package avl implements a balanced ordered set on top of an AVL tree.
//
// Nodes are kept in a flat arena owned by the tree and refer to each other by
// index, parents included. A Tree is not safe for concurrent use; callers that
// share one must serialize access themselves.
package avl

import (
	"cmp"
	"fmt"
	"strings"
)

// Tree is an ordered set of unique elements. The zero value is not usable;
// construct one with New or NewFunc.
type Tree[T any] struct {
	nodes   []node[T]
	root    handle
	compare func(a, b T) int
}

// New returns an empty tree ordered by the natural order of T.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number, zero or a positive number when a is less than, equal to or
// greater than b.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{root: none, compare: compare}
}

// Len returns the number of stored elements.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Height returns the height of the tree, -1 when empty and 0 for a single
// element.
func (t *Tree[T]) Height() int {
	return int(t.height(t.root))
}

// Insert adds value to the set. It reports false, leaving the tree untouched,
// when an equal element is already present.
func (t *Tree[T]) Insert(value T) bool {
	if t.root == none {
		t.root = t.alloc(value, none)
		return true
	}

	current := t.root
	for {
		n := t.at(current)
		c := t.compare(value, n.value)
		switch {
		case c == 0:
			return false
		case c < 0:
			if n.left == none {
				leaf := t.alloc(value, current)
				t.at(current).left = leaf
				t.retrace(current)
				return true
			}
			current = n.left
		default:
			if n.right == none {
				leaf := t.alloc(value, current)
				t.at(current).right = leaf
				t.retrace(current)
				return true
			}
			current = n.right
		}
	}
}

// Find returns the stored element equal to value.
func (t *Tree[T]) Find(value T) (T, bool) {
	if h := t.lookup(value); h != none {
		return t.at(h).value, true
	}
	var zero T
	return zero, false
}

// Contains reports whether an element equal to value is stored.
func (t *Tree[T]) Contains(value T) bool {
	return t.lookup(value) != none
}

func (t *Tree[T]) lookup(value T) handle {
	h := t.root
	for h != none {
		n := t.at(h)
		c := t.compare(value, n.value)
		switch {
		case c == 0:
			return h
		case c < 0:
			h = n.left
		default:
			h = n.right
		}
	}
	return none
}

// Erase removes the element equal to value and reports whether one was
// found. Erasing an absent value is a no-op.
func (t *Tree[T]) Erase(value T) bool {
	target := t.lookup(value)
	if target == none {
		return false
	}

	n := t.at(target)
	if n.left != none && n.right != none {
		// Two children: the node keeps its slot and takes the successor's
		// value, the successor is the one physically removed.
		successor := t.leftmost(n.right)
		n.value = t.at(successor).value
		target = successor
	}

	t.unlink(target)
	return true
}

// unlink removes h, which has at most one child, frees its slot and
// rebalances from its former parent upward.
func (t *Tree[T]) unlink(h handle) {
	n := t.at(h)
	child := n.left
	if child == none {
		child = n.right
	}
	parent := n.parent

	if child != none {
		t.at(child).parent = parent
	}
	t.replaceChild(parent, h, child)

	last := handle(len(t.nodes) - 1)
	t.release(h)
	if parent == last {
		parent = h
	}

	t.retrace(parent)
}

// Clear removes every element.
func (t *Tree[T]) Clear() {
	clear(t.nodes)
	t.nodes = t.nodes[:0]
	t.root = none
}

// Clone returns a deep copy of t. The copy shares no nodes with t; element
// values are copied by assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	nodes := make([]node[T], len(t.nodes))
	copy(nodes, t.nodes)
	return &Tree[T]{nodes: nodes, root: t.root, compare: t.compare}
}

// Root returns the element at the root of the tree.
func (t *Tree[T]) Root() (T, error) {
	if t.root == none {
		var zero T
		return zero, ErrEmpty
	}
	return t.at(t.root).value, nil
}

// Min returns the smallest element.
func (t *Tree[T]) Min() (T, error) {
	if t.root == none {
		var zero T
		return zero, ErrEmpty
	}
	return t.at(t.leftmost(t.root)).value, nil
}

// Max returns the largest element.
func (t *Tree[T]) Max() (T, error) {
	if t.root == none {
		var zero T
		return zero, ErrEmpty
	}
	return t.at(t.rightmost(t.root)).value, nil
}

// String renders the elements in ascending order, e.g. "<1 2 3>".
func (t *Tree[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	first := true
	for v := range t.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte('>')
	return sb.String()
}
