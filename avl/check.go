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

import "github.com/pkg/errors"

// Check walks the whole tree and verifies ordering, stored heights, the AVL
// balance condition, parent links and the element count. It returns the
// first violation found, wrapping ErrCorrupt, or nil.
func (t *Tree[T]) Check() error {
	if t.root == none {
		if len(t.nodes) != 0 {
			return errors.Wrapf(ErrCorrupt, "empty root but %d nodes allocated", len(t.nodes))
		}
		return nil
	}
	if p := t.at(t.root).parent; p != none {
		return errors.Wrapf(ErrCorrupt, "root has parent %d", p)
	}

	seen := 0
	if _, err := t.checkNode(t.root, nil, nil, &seen); err != nil {
		return err
	}
	if seen != len(t.nodes) {
		return errors.Wrapf(ErrCorrupt, "reached %d nodes, %d allocated", seen, len(t.nodes))
	}
	return nil
}

// checkNode verifies the subtree at h, whose values must lie strictly
// between lo and hi when those are set, and returns its real height.
func (t *Tree[T]) checkNode(h handle, lo, hi *T, seen *int) (int32, error) {
	if h == none {
		return -1, nil
	}
	if int(h) >= len(t.nodes) {
		return 0, errors.Wrapf(ErrCorrupt, "handle %d out of range", h)
	}
	*seen++
	if *seen > len(t.nodes) {
		return 0, errors.Wrap(ErrCorrupt, "cycle detected")
	}

	n := t.at(h)
	if lo != nil && t.compare(n.value, *lo) <= 0 {
		return 0, errors.Wrapf(ErrCorrupt, "%v is not greater than %v", n.value, *lo)
	}
	if hi != nil && t.compare(n.value, *hi) >= 0 {
		return 0, errors.Wrapf(ErrCorrupt, "%v is not less than %v", n.value, *hi)
	}
	for _, child := range []handle{n.left, n.right} {
		if child != none && int(child) < len(t.nodes) && t.at(child).parent != h {
			return 0, errors.Wrapf(ErrCorrupt, "child of %v points at parent %d, want %d", n.value, t.at(child).parent, h)
		}
	}

	lh, err := t.checkNode(n.left, lo, &n.value, seen)
	if err != nil {
		return 0, err
	}
	rh, err := t.checkNode(n.right, &n.value, hi, seen)
	if err != nil {
		return 0, err
	}

	height := max(lh, rh) + 1
	if n.height != height {
		return 0, errors.Wrapf(ErrCorrupt, "%v stores height %d, actual %d", n.value, n.height, height)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, errors.Wrapf(ErrCorrupt, "%v has balance %d", n.value, bf)
	}
	return height, nil
}
