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

// Package scan searches any sequence element by element, whatever container
// produced it.
package scan

import (
	"iter"

	"github.com/cybrota/pointavl/point"
)

// Find returns the first element of seq accepted by match.
func Find[E any](seq iter.Seq[E], match func(E) bool) (E, bool) {
	for e := range seq {
		if match(e) {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// Index returns the position of the first element accepted by match, or -1.
func Index[E any](seq iter.Seq[E], match func(E) bool) int {
	i := 0
	for e := range seq {
		if match(e) {
			return i
		}
		i++
	}
	return -1
}

// FindPoint returns the first point of seq equal to target within
// point.Epsilon.
func FindPoint(seq iter.Seq[point.Point], target point.Point) (point.Point, bool) {
	return Find(seq, target.Equal)
}
