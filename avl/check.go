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
	"errors"
	"fmt"

	"github.com/cybrota/pointavl/point"
)

// ErrInvariant is wrapped by every error Check returns.
var ErrInvariant = errors.New("avl: invariant violated")

// Check - verify balance, ordering, cached heights, the node count and that no
// two stored points are equal.
// Returns nil for a consistent tree.
func (tree *Tree) Check() error {
	count, err := tree.check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.count {
		return fmt.Errorf("%w: %d reachable nodes, count says %d", ErrInvariant, count, tree.count)
	}
	return tree.checkDistinct()
}

// checkDistinct looks for two stored points the order calls Equal. Such
// points sit within one Span of each other in order.
func (tree *Tree) checkDistinct() error {
	var sorted []point.Point
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		sorted = append(sorted, n.point)
		walk(n.right)
	}
	walk(tree.root)

	for i, p := range sorted {
		for _, q := range sorted[i+1:] {
			if tree.order.Span(p, q) > 0 {
				break
			}
			if tree.order.Equal(p, q) {
				return fmt.Errorf("%w: %s and %s are both stored", ErrInvariant, p, q)
			}
		}
	}
	return nil
}

// internal: lo and hi bound the points allowed below n, nil for unbounded
func (tree *Tree) check(n *node, lo, hi *point.Point) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && !tree.order.Less(*lo, n.point) {
		return 0, fmt.Errorf("%w: %s is not greater than ancestor %s", ErrInvariant, n.point, *lo)
	}
	if hi != nil && !tree.order.Less(n.point, *hi) {
		return 0, fmt.Errorf("%w: %s is not less than ancestor %s", ErrInvariant, n.point, *hi)
	}

	nl, err := tree.check(n.left, lo, &n.point)
	if err != nil {
		return 0, err
	}
	nr, err := tree.check(n.right, &n.point, hi)
	if err != nil {
		return 0, err
	}

	if want := max(height(n.left), height(n.right)) + 1; n.height != want {
		return 0, fmt.Errorf("%w: %s has height %d, expected %d", ErrInvariant, n.point, n.height, want)
	}
	if bf := balanceFactor(n); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: %s has balance factor %d", ErrInvariant, n.point, bf)
	}
	return 1 + nl + nr, nil
}
