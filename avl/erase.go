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

// Erase - remove the point equal to p, if any, keeping the tree balanced.
// Returns true if a point was removed.
func (tree *Tree) Erase(p point.Point) bool {
	target := tree.search(p)
	if target == nil {
		return false
	}
	removed := false
	tree.root, removed = tree.erase(tree.root, target)
	if removed {
		tree.count -= 1
	}
	return removed
}

// erase unlinks target, reached by the order of its stored point.
func (tree *Tree) erase(n *node, target *node) (*node, bool) {
	if n == nil {
		return nil, false // not in tree
	}

	removed := false
	switch {
	case n == target:
		// No children
		if n.left == nil && n.right == nil {
			return nil, true
		}
		// One child (right)
		if n.left == nil {
			child := n.right
			n.right = nil
			return child, true
		}
		// One child (left)
		if n.right == nil {
			child := n.left
			n.left = nil
			return child, true
		}
		// Two children: n keeps its place in the tree and takes over the
		// point of its in-order successor, which is then unlinked from the
		// right sub-tree
		n.point = findMin(n.right).point
		n.right = removeMin(n.right)
		removed = true
	case tree.order.Less(target.point, n.point):
		n.left, removed = tree.erase(n.left, target)
	case tree.order.Greater(target.point, n.point):
		n.right, removed = tree.erase(n.right, target)
	default:
		return n, false
	}

	if !removed {
		return n, false
	}
	return rebalance(n), true
}

// removeMin unlinks the leftmost node of a sub-tree. This is the path an
// erase of that node's point takes, since it is less than every other point
// below n.
func removeMin(n *node) *node {
	if n.left == nil {
		child := n.right
		n.right = nil
		return child
	}
	n.left = removeMin(n.left)
	return rebalance(n)
}
