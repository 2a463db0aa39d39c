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

import "github.com/cybrota/pointavl/point"

// Insert - add a point to the tree, keeping it balanced.
// Returns false, leaving the tree untouched, when the order considers the
// point equal to any stored point, or ranks it level with one.
func (tree *Tree) Insert(p point.Point) bool {
	if tree.search(p) != nil {
		return false
	}
	added := false
	tree.root, added = tree.insert(tree.root, p)
	if added {
		tree.count += 1
	}
	return added
}

func (tree *Tree) insert(n *node, p point.Point) (*node, bool) {
	if n == nil {
		return newNode(p), true
	}

	added := false
	switch {
	case tree.order.Equal(p, n.point):
		return n, false
	case tree.order.Less(p, n.point):
		n.left, added = tree.insert(n.left, p)
	case tree.order.Greater(p, n.point):
		n.right, added = tree.insert(n.right, p)
	default:
		// same rank under the order but a different point
		return n, false
	}

	if !added {
		return n, false
	}
	return rebalance(n), true
}
