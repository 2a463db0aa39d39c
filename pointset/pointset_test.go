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

package pointset

import (
	"slices"
	"testing"

	"github.com/cybrota/pointavl/point"
)

func TestInsertAndFind(t *testing.T) {
	s := FromPairs([][2]float64{{1, 1}, {2, 2}, {35.21, 31.77}})

	if s.Len() != 3 {
		t.Fatalf("Len() = %d; want 3", s.Len())
	}

	testCases := []struct {
		Name   string
		Target point.Point
		Found  bool
	}{
		{"Exact", point.New(2, 2), true},
		{"Within tolerance", point.New(35.21009, 31.76991), true},
		{"Neighbouring cell", point.New(0.99995, 1.00005), true},
		{"Outside tolerance", point.New(2.0003, 2), false},
		{"Absent", point.New(-4, 7), false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, ok := s.Find(tc.Target)
			if ok != tc.Found {
				t.Fatalf("Find(%s) found = %v; want %v", tc.Target, ok, tc.Found)
			}
			if ok && !got.Equal(tc.Target) {
				t.Errorf("Find(%s) = %s", tc.Target, got)
			}
		})
	}
}

func TestInsertRejectsEqualPoints(t *testing.T) {
	s := New(0)

	if !s.Insert(point.New(5, 5)) {
		t.Fatalf("first insert must succeed")
	}
	if s.Insert(point.New(5.00001, 4.99999)) {
		t.Errorf("insert of an equal point must be rejected")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d; want 1", s.Len())
	}
}

func TestCloseButDistinctPoints(t *testing.T) {
	s := New(4)
	a := point.New(1.00001, 1.00001)
	b := point.New(1.00001, 1.00014)
	s.Insert(a)
	s.Insert(b)

	if s.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", s.Len())
	}
	if !s.Contains(a) || !s.Contains(b) {
		t.Errorf("both points must be found")
	}
}

func TestAll(t *testing.T) {
	pairs := [][2]float64{{3, 3}, {1, 1}, {2, 2}}
	s := FromPairs(pairs)

	got := slices.Collect(s.All())
	slices.SortFunc(got, func(a, b point.Point) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
	want := []point.Point{point.New(1, 1), point.New(2, 2), point.New(3, 3)}
	if !slices.Equal(got, want) {
		t.Errorf("All() = %v; want %v", got, want)
	}
}
