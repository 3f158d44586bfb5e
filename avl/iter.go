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

import "iter"

// All returns the elements in ascending order. Each call of the returned
// sequence walks the tree from the start. The tree must not be modified while
// the sequence is being consumed.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == none {
			return
		}
		for h := t.leftmost(t.root); h != none; h = t.next(h) {
			if !yield(t.at(h).value) {
				return
			}
		}
	}
}

// Backward returns the elements in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == none {
			return
		}
		for h := t.rightmost(t.root); h != none; h = t.prev(h) {
			if !yield(t.at(h).value) {
				return
			}
		}
	}
}

// Range returns, in ascending order, every element v with lo <= v < hi.
func (t *Tree[T]) Range(lo, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := t.ceiling(lo); h != none; h = t.next(h) {
			v := t.at(h).value
			if t.compare(v, hi) >= 0 {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns a slice holding the elements in ascending order.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.Len())
	for v := range t.All() {
		out = append(out, v)
	}
	return out
}

// next returns the in-order successor of h, or none.
func (t *Tree[T]) next(h handle) handle {
	if r := t.at(h).right; r != none {
		return t.leftmost(r)
	}
	for {
		parent := t.at(h).parent
		if parent == none || t.at(parent).left == h {
			return parent
		}
		h = parent
	}
}

// prev returns the in-order predecessor of h, or none.
func (t *Tree[T]) prev(h handle) handle {
	if l := t.at(h).left; l != none {
		return t.rightmost(l)
	}
	for {
		parent := t.at(h).parent
		if parent == none || t.at(parent).right == h {
			return parent
		}
		h = parent
	}
}

// ceiling returns the smallest node whose value is >= value, or none.
func (t *Tree[T]) ceiling(value T) handle {
	found := none
	h := t.root
	for h != none {
		n := t.at(h)
		c := t.compare(value, n.value)
		switch {
		case c == 0:
			return h
		case c < 0:
			found = h
			h = n.left
		default:
			h = n.right
		}
	}
	return found
}
