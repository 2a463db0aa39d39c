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

// Package stack is a last-in-first-out container of points, used as the
// baseline the tree is measured against.
package stack

import (
	"errors"
	"iter"

	"github.com/cybrota/pointavl/point"
)

// ErrEmpty is returned when the top of an empty stack is read or removed.
var ErrEmpty = errors.New("the stack is empty, illegal operation")

// Stack keeps its points in a slice, the top being the last element.
type Stack struct {
	items []point.Point
}

// New creates an empty stack.
func New() *Stack {
	return &Stack{}
}

// FromPairs pushes one point per pair, the first pair at the bottom.
func FromPairs(pairs [][2]float64) *Stack {
	s := &Stack{items: make([]point.Point, 0, len(pairs))}
	for _, pair := range pairs {
		s.Push(point.FromPair(pair))
	}
	return s
}

// Push adds p on top.
func (s *Stack) Push(p point.Point) {
	s.items = append(s.items, p)
}

// Pop removes the top point.
func (s *Stack) Pop() error {
	if s.Empty() {
		return ErrEmpty
	}
	s.items = s.items[:len(s.items)-1]
	return nil
}

// Top returns a copy of the top point without removing it.
func (s *Stack) Top() (point.Point, error) {
	if s.Empty() {
		return point.Point{}, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// TopRef returns the top point in place so it can be changed.
func (s *Stack) TopRef() (*point.Point, error) {
	if s.Empty() {
		return nil, ErrEmpty
	}
	return &s.items[len(s.items)-1], nil
}

// Empty reports whether the stack holds no points.
func (s *Stack) Empty() bool {
	return len(s.items) == 0
}

// Size returns the number of points held.
func (s *Stack) Size() int {
	return len(s.items)
}

// All yields the points from the top of the stack down.
func (s *Stack) All() iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}
