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
	"iter"

	"github.com/cybrota/pointavl/point"
)

// Iterator walks a tree in pre-order starting at the node it was created
// on. The end position holds no node.
//
//	for it := tree.Begin(); !it.Equal(tree.End()); it.Next() {
//		fmt.Print(it.Value().Line())
//	}
type Iterator struct {
	cur   *node
	stack []*node // nodes still to visit, top is the next current
}

func newIterator(n *node) *Iterator {
	it := &Iterator{cur: n}
	if n != nil {
		it.stack = []*node{n}
	}
	return it
}

// Begin - iterator at the root of the tree
func (tree *Tree) Begin() *Iterator {
	return newIterator(tree.root)
}

// End - the position after the last point
func (tree *Tree) End() *Iterator {
	return newIterator(nil)
}

// Next moves to the following node in pre-order. At the end it is a no-op.
func (it *Iterator) Next() {
	if len(it.stack) == 0 {
		it.cur = nil
		return
	}

	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	// right is pushed first so the left sub-tree is visited next
	if top.right != nil {
		it.stack = append(it.stack, top.right)
	}
	if top.left != nil {
		it.stack = append(it.stack, top.left)
	}

	if len(it.stack) == 0 {
		it.cur = nil
		return
	}
	it.cur = it.stack[len(it.stack)-1]
}

// Done reports whether the iterator is at the end position.
func (it *Iterator) Done() bool {
	return it.cur == nil
}

// Equal reports whether both iterators are at the same node. A nil other
// stands for the end position.
func (it *Iterator) Equal(other *Iterator) bool {
	if other == nil {
		return it.cur == nil
	}
	return it.cur == other.cur
}

// Value returns the point stored at the current node, or nil at the end.
// Changing the point in a way that alters its rank breaks the tree.
func (it *Iterator) Value() *point.Point {
	if it.cur == nil {
		return nil
	}
	return &it.cur.point
}

// Const returns a read-only iterator at the same position.
func (it *Iterator) Const() *ConstIterator {
	return &ConstIterator{it: Iterator{
		cur:   it.cur,
		stack: append([]*node(nil), it.stack...),
	}}
}

// ConstIterator walks a tree like Iterator but only hands out copies of the
// stored points.
type ConstIterator struct {
	it Iterator
}

// CBegin - read-only iterator at the root of the tree
func (tree *Tree) CBegin() *ConstIterator {
	return &ConstIterator{it: *newIterator(tree.root)}
}

// CEnd - read-only end position
func (tree *Tree) CEnd() *ConstIterator {
	return &ConstIterator{}
}

// Next moves to the following node in pre-order.
func (c *ConstIterator) Next() {
	c.it.Next()
}

// Done reports whether the iterator is at the end position.
func (c *ConstIterator) Done() bool {
	return c.it.Done()
}

// Equal reports whether both iterators are at the same node; a nil other is
// the end position.
func (c *ConstIterator) Equal(other *ConstIterator) bool {
	if other == nil {
		return c.it.cur == nil
	}
	return c.it.Equal(&other.it)
}

// Value returns a copy of the current point; ok is false at the end.
func (c *ConstIterator) Value() (p point.Point, ok bool) {
	if c.it.cur == nil {
		return point.Point{}, false
	}
	return c.it.cur.point, true
}

// All - pre-order sequence of the points in the tree. Every call to the
// returned function starts a fresh walk from the root.
func (tree *Tree) All() iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		for it := tree.Begin(); !it.Done(); it.Next() {
			if !yield(it.cur.point) {
				return
			}
		}
	}
}
