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

package stack

import (
	"errors"
	"slices"
	"testing"

	"github.com/cybrota/pointavl/point"
)

func TestEmptyStack(t *testing.T) {
	s := New()

	if !s.Empty() || s.Size() != 0 {
		t.Fatalf("new stack: Empty()=%v Size()=%d; want true, 0", s.Empty(), s.Size())
	}
	if err := s.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Pop() on empty stack = %v; want %v", err, ErrEmpty)
	}
	if _, err := s.Top(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Top() on empty stack = %v; want %v", err, ErrEmpty)
	}
	if _, err := s.TopRef(); !errors.Is(err, ErrEmpty) {
		t.Errorf("TopRef() on empty stack = %v; want %v", err, ErrEmpty)
	}
}

func TestPushPop(t *testing.T) {
	s := FromPairs([][2]float64{{1, 1}, {2, 2}, {3, 3}})

	if s.Size() != 3 {
		t.Fatalf("Size() = %d; want 3", s.Size())
	}

	want := []point.Point{point.New(3, 3), point.New(2, 2), point.New(1, 1)}
	for _, w := range want {
		top, err := s.Top()
		if err != nil {
			t.Fatalf("Top() error: %v", err)
		}
		if top != w {
			t.Errorf("Top() = %s; want %s", top, w)
		}
		if err := s.Pop(); err != nil {
			t.Fatalf("Pop() error: %v", err)
		}
	}
	if !s.Empty() {
		t.Errorf("stack should be empty after popping every point")
	}
}

func TestTopRef(t *testing.T) {
	s := New()
	s.Push(point.New(1, 2))

	ref, err := s.TopRef()
	if err != nil {
		t.Fatalf("TopRef() error: %v", err)
	}
	ref.X = 7

	if top, _ := s.Top(); top != point.New(7, 2) {
		t.Errorf("Top() after change = %s; want (7,2)", top)
	}
}

func TestAllIsTopFirst(t *testing.T) {
	s := FromPairs([][2]float64{{1, 0}, {2, 0}, {3, 0}})

	got := slices.Collect(s.All())
	want := []point.Point{point.New(3, 0), point.New(2, 0), point.New(1, 0)}
	if !slices.Equal(got, want) {
		t.Errorf("All() = %v; want %v", got, want)
	}
}
