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

package point

import "math"

// Order is a strict total order over points plus the approximate equality
// used to recognise a stored point again.
type Order interface {
	Less(a, b Point) bool
	Greater(a, b Point) bool
	Equal(a, b Point) bool
	// Span tells where b ranks relative to every point Equal to a: -1 when
	// b ranks below all of them, +1 when above, 0 when b may be one of them.
	Span(a, b Point) int
}

// DefaultReference is the location points are measured from unless a
// configuration says otherwise.
var DefaultReference = Point{X: 35.213506, Y: 31.772425}

// DefaultOrder orders points by their distance from DefaultReference.
var DefaultOrder Order = DistanceOrder{Ref: DefaultReference}

// DistanceOrder orders points by their distance from Ref: a point closer to
// Ref is smaller.
type DistanceOrder struct {
	Ref Point
}

func (o DistanceOrder) Less(a, b Point) bool {
	return a.DistanceTo(o.Ref) < b.DistanceTo(o.Ref)
}

func (o DistanceOrder) Greater(a, b Point) bool {
	return a.DistanceTo(o.Ref) > b.DistanceTo(o.Ref)
}

// reach bounds the distance difference of two Equal points, Epsilon on each
// axis, plus slack for rounding in math.Hypot
const reach = Epsilon*math.Sqrt2 + 1e-12

// Span compares distances: points Equal to a lie within reach of a's
// distance from Ref.
func (o DistanceOrder) Span(a, b Point) int {
	da, db := a.DistanceTo(o.Ref), b.DistanceTo(o.Ref)
	switch {
	case db < da-reach:
		return -1
	case db > da+reach:
		return 1
	}
	return 0
}

// Equal uses coordinate tolerance, not distance. Two distinct points at the
// same distance from Ref are neither less, greater nor equal.
func (o DistanceOrder) Equal(a, b Point) bool {
	return a.Equal(b)
}
