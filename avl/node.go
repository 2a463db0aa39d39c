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

const (
	nilHeight  = -1 // height of a missing sub-tree
	leafHeight = 0
)

type node struct {
	point  point.Point
	left   *node // left sub-tree, every point less than this one
	right  *node // right sub-tree, every point greater than this one
	height int
}

func newNode(p point.Point) *node {
	return &node{point: p, height: leafHeight}
}

func height(n *node) int {
	if n == nil {
		return nilHeight
	}
	return n.height
}

func updateHeight(n *node) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// leftmost node of a sub-tree, the in-order successor when called on the
// right child of a node
func findMin(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}
