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
	"fmt"
	"io"
	"strings"
)

// WriteTo - write every point in pre-order, one "(x,y)" per line
func (tree *Tree) WriteTo(w io.Writer) (int64, error) {
	total := int64(0)
	for p := range tree.All() {
		n, err := io.WriteString(w, p.Line())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String - the pre-order listing produced by WriteTo
func (tree *Tree) String() string {
	var b strings.Builder
	tree.WriteTo(&b)
	return b.String()
}

// to control the dump routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Dump - write an ASCII graphic of the tree lying on its side, right
// sub-trees above their parent. Returns the number of levels written.
func (tree *Tree) Dump(w io.Writer) int {
	return dump(w, tree.root, "", rootBranch)
}

func dump(w io.Writer, n *node, prefix string, br branch) int {
	if n == nil {
		return 0
	}
	rd := 0
	ld := 0
	if n.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = dump(w, n.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%s h=%d %+d\n", n.point, n.height, balanceFactor(n))
	if n.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = dump(w, n.left, prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}
