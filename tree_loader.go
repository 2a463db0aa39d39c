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

package main

import (
	"log"

	"github.com/cybrota/pointavl/avl"
	"github.com/cybrota/pointavl/point"
	"github.com/cybrota/pointavl/pointfile"
)

// populateTree inserts every pair in file order and returns how many were
// rejected as equal or equidistant to a stored point.
func populateTree(tree *avl.Tree, pairs [][2]float64) int {
	rejected := 0
	for _, pair := range pairs {
		if !tree.Insert(point.FromPair(pair)) {
			rejected++
		}
	}
	return rejected
}

// readPointsAndPopulateTree loads the coordinate file at path into a new tree.
func readPointsAndPopulateTree(path string, order point.Order) (*avl.Tree, [][2]float64, error) {
	pairs, err := pointfile.Load(path)
	if err != nil {
		return nil, nil, err
	}

	tree := avl.New(order)
	if rejected := populateTree(tree, pairs); rejected > 0 {
		log.Printf("%d of %d points in %s were not inserted: an equal or equidistant point was already stored", rejected, len(pairs), path)
	}
	return tree, pairs, nil
}
