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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **pointavl %s**

A height-balanced binary search tree of two-dimensional points, with a benchmark
comparing it against a stack and a hash set.

Built with Go %s

# 1. Commands
* **bench <file>** times insertion and search on every container (--raw prints nanoseconds only)
* **print <file>** prints the tree in pre-order, one (x,y) per line (--shape draws it sideways)
* **find <file> <x> <y>** tells whether a point is stored in the tree
* **explore [file]** opens an interactive view to insert, erase and find points
* **settings** shows ~/.pointavl.yaml, creating it when missing

# 2. Coordinate files
One pair per line, separated by a comma or white space. Blank lines and lines
starting with # are skipped.

# 3. Ordering
Points are ordered by their distance from a reference point (order.reference_x,
order.reference_y). Two points closer than 0.0001 in both coordinates are equal;
points at the same distance as a stored point are not inserted.

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
