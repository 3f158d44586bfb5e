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
	"fmt"

	"github.com/xlab/treeprint"
)

// Diagram renders the shape of the tree, one node per line, with each child
// tagged L or R and the node's height in parentheses.
func (t *Tree[T]) Diagram() string {
	if t.root == none {
		return "(empty)\n"
	}
	root := t.at(t.root)
	tree := treeprint.NewWithRoot(t.label(root))
	t.addChildren(tree, root)
	return tree.String()
}

func (t *Tree[T]) label(n *node[T]) string {
	return fmt.Sprintf("%v (h=%d)", n.value, n.height)
}

func (t *Tree[T]) addChildren(branch treeprint.Tree, n *node[T]) {
	for _, side := range []struct {
		meta  string
		child handle
	}{{"L", n.left}, {"R", n.right}} {
		if side.child == none {
			continue
		}
		c := t.at(side.child)
		if c.left == none && c.right == none {
			branch.AddMetaNode(side.meta, t.label(c))
			continue
		}
		t.addChildren(branch.AddMetaBranch(side.meta, t.label(c)), c)
	}
}
