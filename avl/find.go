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

// Find - iterator at the node holding a point equal to p, or End() if there
// is none. Iterating on from the result walks the sub-tree below that node.
func (tree *Tree) Find(p point.Point) *Iterator {
	return newIterator(tree.search(p))
}

// FindConst - read-only variant of Find
func (tree *Tree) FindConst(p point.Point) *ConstIterator {
	return &ConstIterator{it: *newIterator(tree.search(p))}
}

// Contains - true if a point equal to p is in the tree
func (tree *Tree) Contains(p point.Point) bool {
	return tree.search(p) != nil
}

// search finds the stored point Equal to p. Equal points may rank either side
// of p, so every sub-tree whose range meets p's Span is visited.
func (tree *Tree) search(p point.Point) *node {
	return tree.searchFrom(tree.root, p)
}

func (tree *Tree) searchFrom(n *node, p point.Point) *node {
	for n != nil {
		if tree.order.Equal(p, n.point) {
			return n
		}
		switch tree.order.Span(p, n.point) {
		case -1:
			n = n.right
		case 1:
			n = n.left
		default:
			if found := tree.searchFrom(n.left, p); found != nil {
				return found
			}
			n = n.right
		}
	}
	return nil
}
