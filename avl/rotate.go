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

// rotateLeft lifts the right child of h into h's position and returns it.
// Only h and the pivot get their heights recomputed; ancestors are left to
// the caller's upward walk.
func (t *Tree[T]) rotateLeft(h handle) handle {
	n := t.at(h)
	if n.right == none {
		return h // Nothing to rotate
	}

	pivot := n.right
	p := t.at(pivot)
	parent := n.parent

	// Pivot's left subtree moves under h
	n.right = p.left
	if p.left != none {
		t.at(p.left).parent = h
	}

	p.left = h
	n.parent = pivot
	p.parent = parent
	t.replaceChild(parent, h, pivot)

	t.updateHeight(h)
	t.updateHeight(pivot)
	return pivot
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree[T]) rotateRight(h handle) handle {
	n := t.at(h)
	if n.left == none {
		return h // Nothing to rotate
	}

	pivot := n.left
	p := t.at(pivot)
	parent := n.parent

	// Pivot's right subtree moves under h
	n.left = p.right
	if p.right != none {
		t.at(p.right).parent = h
	}

	p.right = h
	n.parent = pivot
	p.parent = parent
	t.replaceChild(parent, h, pivot)

	t.updateHeight(h)
	t.updateHeight(pivot)
	return pivot
}

// rebalance restores the AVL condition at h, assuming both subtrees are
// valid AVL trees whose heights differ by at most two. It returns the root
// of the (possibly rotated) subtree.
func (t *Tree[T]) rebalance(h handle) handle {
	bf := t.balance(h)

	// Left-heavy
	if bf > 1 {
		left := t.at(h).left
		if t.balance(left) < 0 {
			// Left-Right case
			t.rotateLeft(left)
		}
		return t.rotateRight(h)
	}

	// Right-heavy
	if bf < -1 {
		right := t.at(h).right
		if t.balance(right) > 0 {
			// Right-Left case
			t.rotateRight(right)
		}
		return t.rotateLeft(h)
	}

	return h
}

// retrace walks from h up to the root fixing heights and rotating where the
// balance has reached +-2. It stops early once a subtree comes out with the
// same height it had before the mutation, since nothing above can change.
func (t *Tree[T]) retrace(h handle) {
	for h != none {
		before := t.at(h).height
		t.updateHeight(h)
		h = t.rebalance(h)
		if t.at(h).height == before {
			return
		}
		h = t.at(h).parent
	}
}
