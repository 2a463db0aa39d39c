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

// Package pointset is an unordered hash set of points, the second baseline
// the tree is benchmarked against.
//
// Points are hashed into a grid of point.Epsilon sized cells. Two points
// equal within the tolerance are at most one cell apart on each axis, so a
// lookup visits the 3x3 block of cells around the target. Cell keys are
// kept in a bloom filter that spares the bucket lookup for empty cells.
package pointset

import (
	"iter"
	"math"
	"strconv"

	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"

	"github.com/cybrota/pointavl/point"
)

const (
	defaultCapacity   = 1024
	falsePositiveRate = 0.01
)

type bucket struct {
	points []point.Point
}

// Set holds points that are distinct within point.Epsilon.
type Set struct {
	buckets *cache.Cache
	filter  *bloom.BloomFilter
	count   int
}

// New creates an empty set sized for about capacity points. The size only
// tunes the bloom filter; the set grows past it.
func New(capacity int) *Set {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Set{
		// entries never expire and no janitor goroutine is started
		buckets: cache.New(cache.NoExpiration, 0),
		filter:  bloom.NewWithEstimates(uint(capacity), falsePositiveRate),
	}
}

// FromPairs inserts one point per pair.
func FromPairs(pairs [][2]float64) *Set {
	s := New(len(pairs))
	for _, pair := range pairs {
		s.Insert(point.FromPair(pair))
	}
	return s
}

func cell(v float64) int64 {
	return int64(math.Floor(v / point.Epsilon))
}

func cellKey(cx, cy int64) string {
	buf := make([]byte, 0, 40)
	buf = strconv.AppendInt(buf, cx, 10)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, cy, 10)
	return string(buf)
}

// Insert adds p unless an equal point is already present.
func (s *Set) Insert(p point.Point) bool {
	if s.Contains(p) {
		return false
	}
	key := cellKey(cell(p.X), cell(p.Y))
	if v, found := s.buckets.Get(key); found {
		b := v.(*bucket)
		b.points = append(b.points, p)
	} else {
		s.buckets.Set(key, &bucket{points: []point.Point{p}}, cache.NoExpiration)
		s.filter.AddString(key)
	}
	s.count++
	return true
}

// Find returns the stored point equal to p within point.Epsilon.
func (s *Set) Find(p point.Point) (point.Point, bool) {
	cx, cy := cell(p.X), cell(p.Y)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			key := cellKey(cx+dx, cy+dy)
			if !s.filter.TestString(key) {
				continue
			}
			v, found := s.buckets.Get(key)
			if !found {
				continue // bloom false positive
			}
			for _, q := range v.(*bucket).points {
				if q.Equal(p) {
					return q, true
				}
			}
		}
	}
	return point.Point{}, false
}

// Contains reports whether a point equal to p is stored.
func (s *Set) Contains(p point.Point) bool {
	_, found := s.Find(p)
	return found
}

// Len returns the number of stored points.
func (s *Set) Len() int {
	return s.count
}

// All yields every point in no particular order.
func (s *Set) All() iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		for _, item := range s.buckets.Items() {
			for _, p := range item.Object.(*bucket).points {
				if !yield(p) {
					return
				}
			}
		}
	}
}
