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

// Package point holds the two-dimensional record stored by the containers in
// this module, together with the ordering used to place records in a tree.
package point

import (
	"math"
	"strconv"
)

// Epsilon is the per-coordinate tolerance under which two points are the same.
const Epsilon = 0.0001

// Point is a location given by its x and y coordinates.
type Point struct {
	X float64
	Y float64
}

// New creates a point from its coordinates.
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromPair creates a point from an (x, y) coordinate pair.
func FromPair(pair [2]float64) Point {
	return Point{X: pair[0], Y: pair[1]}
}

// Equal reports whether both coordinates of p and q differ by at most Epsilon.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) <= Epsilon && math.Abs(p.Y-q.Y) <= Epsilon
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// String renders the point as (x,y). Coordinates keep six significant digits.
func (p Point) String() string {
	buf := make([]byte, 0, 32)
	buf = append(buf, '(')
	buf = strconv.AppendFloat(buf, p.X, 'g', 6, 64)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, p.Y, 'g', 6, 64)
	buf = append(buf, ')')
	return string(buf)
}

// Line renders the point as (x,y) followed by a line break.
func (p Point) Line() string {
	return p.String() + "\n"
}
