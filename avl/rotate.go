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

// rotateLeft lifts the right child of n into its place and returns it as
// the new root of the sub-tree.
func rotateLeft(n *node) *node {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	// n is now below pivot, so its height must be fixed first
	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rotateRight lifts the left child of n into its place and returns it as
// the new root of the sub-tree.
func rotateRight(n *node) *node {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rebalance refreshes the height of n and restores the AVL balance of the
// sub-tree rooted at n. Both children must already be balanced. The caller
// stores the returned node in place of n.
func rebalance(n *node) *node {
	updateHeight(n)

	bf := balanceFactor(n)

	// Right-heavy
	if bf < -1 {
		if balanceFactor(n.right) <= 0 {
			return rotateLeft(n)
		}
		// Right-Left case
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	// Left-heavy
	if bf > 1 {
		if balanceFactor(n.left) >= 0 {
			return rotateRight(n)
		}
		// Left-Right case
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}

	return n
}
