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

// Tree - holds the root node of a tree and the order its points follow
type Tree struct {
	root  *node
	order point.Order
	count int
}

// New - create an initially empty tree. A nil order selects
// point.DefaultOrder.
func New(order point.Order) *Tree {
	if order == nil {
		order = point.DefaultOrder
	}
	return &Tree{
		root:  nil,
		order: order,
		count: 0,
	}
}

// FromPairs - create a tree holding one point per coordinate pair, inserted
// in the order the pairs are given
func FromPairs(order point.Order, pairs [][2]float64) *Tree {
	tree := New(order)
	for _, pair := range pairs {
		tree.Insert(point.FromPair(pair))
	}
	return tree
}

// Order - the order points in this tree are placed by
func (tree *Tree) Order() point.Order {
	return tree.order
}

// IsEmpty - true if the tree holds no points
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Len - number of points currently in the tree
func (tree *Tree) Len() int {
	return tree.count
}

// Height - height of the root, -1 for an empty tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Clear - release every node
func (tree *Tree) Clear() {
	release(tree.root)
	tree.root = nil
	tree.count = 0
}

// Clone - deep copy of the tree, sharing no nodes with the original
func (tree *Tree) Clone() *Tree {
	return &Tree{
		root:  clone(tree.root),
		order: tree.order,
		count: tree.count,
	}
}

// Assign - replace the contents of tree by a deep copy of src. A nil src
// empties the tree and keeps its order.
func (tree *Tree) Assign(src *Tree) {
	if tree == src {
		return
	}
	tree.Clear()
	if src == nil {
		return
	}
	tree.root = clone(src.root)
	tree.order = src.order
	tree.count = src.count
}

func clone(n *node) *node {
	if n == nil {
		return nil
	}
	return &node{
		point:  n.point,
		left:   clone(n.left),
		right:  clone(n.right),
		height: n.height,
	}
}

// post-order: children are unlinked before their parent is dropped
func release(n *node) {
	if n == nil {
		return
	}
	release(n.left)
	release(n.right)
	n.left = nil
	n.right = nil
}
