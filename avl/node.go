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

// handle is an index into the tree's node arena.
type handle int32

const none handle = -1

type node[T any] struct {
	value  T
	height int32 // leaf = 0
	left   handle
	right  handle
	parent handle // non-owning
}

func (t *Tree[T]) at(h handle) *node[T] {
	return &t.nodes[h]
}

// height returns the stored height of h, -1 for none.
func (t *Tree[T]) height(h handle) int32 {
	if h == none {
		return -1
	}
	return t.nodes[h].height
}

func (t *Tree[T]) updateHeight(h handle) {
	n := t.at(h)
	n.height = max(t.height(n.left), t.height(n.right)) + 1
}

// balance is height(left) - height(right).
func (t *Tree[T]) balance(h handle) int32 {
	if h == none {
		return 0
	}
	n := t.at(h)
	return t.height(n.left) - t.height(n.right)
}

// alloc appends a detached leaf and returns its handle.
func (t *Tree[T]) alloc(value T, parent handle) handle {
	t.nodes = append(t.nodes, node[T]{
		value:  value,
		left:   none,
		right:  none,
		parent: parent,
	})
	return handle(len(t.nodes) - 1)
}

// replaceChild points whatever referenced old (parent's child slot, or the
// root) at repl instead.
func (t *Tree[T]) replaceChild(parent, old, repl handle) {
	if parent == none {
		t.root = repl
		return
	}
	p := t.at(parent)
	if p.left == old {
		p.left = repl
	} else {
		p.right = repl
	}
}

// release frees the slot of a node that is already unlinked from the tree.
// The last slot is moved into the hole so the arena stays dense; a handle
// equal to the old last index is now h.
func (t *Tree[T]) release(h handle) {
	last := handle(len(t.nodes) - 1)
	if h != last {
		t.nodes[h] = t.nodes[last]
		n := t.at(h)
		if n.left != none {
			t.at(n.left).parent = h
		}
		if n.right != none {
			t.at(n.right).parent = h
		}
		t.replaceChild(n.parent, last, h)
	}
	t.nodes[last] = node[T]{}
	t.nodes = t.nodes[:last]
}

func (t *Tree[T]) leftmost(h handle) handle {
	for t.at(h).left != none {
		h = t.at(h).left
	}
	return h
}

func (t *Tree[T]) rightmost(h handle) handle {
	for t.at(h).right != none {
		h = t.at(h).right
	}
	return h
}
