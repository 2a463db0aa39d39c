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

// Package avl - a height balanced binary search tree of points.
//
// Every node caches its height (a leaf has height 0, a missing child counts
// as -1) and the tree is rebalanced with single or double rotations on the
// way back up from every insert and erase, so the height stays O(log n).
//
// Points are placed by an external point.Order. A point the order considers
// equal to any stored point, or ranks level with one, is not inserted. Equal
// points need not share a search path, so lookups visit every sub-tree within
// the order's Span of the target.
//
// Iteration is pre-order (node, left, right) and driven by an explicit
// stack of pending nodes rather than recursion.
//
// Note: a tree is not thread safe, so either access it only in a single
// goroutine or guard it with a mutex. Changing a tree while an iterator over
// it is alive leaves that iterator pointing at stale nodes.
package avl
