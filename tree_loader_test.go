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
	"os"
	"path/filepath"
	"testing"

	"github.com/cybrota/pointavl/point"
)

func TestReadPointsAndPopulateTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")
	content := "# diagonal\n0,0\n1 1\n2, 2\n1.00001,1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tree, pairs, err := readPointsAndPopulateTree(path, point.DistanceOrder{})
	if err != nil {
		t.Fatalf("readPointsAndPopulateTree() error: %v", err)
	}
	if len(pairs) != 4 {
		t.Errorf("got %d pairs; want 4", len(pairs))
	}
	if tree.Len() != 3 {
		t.Errorf("tree holds %d points; want 3", tree.Len())
	}
	if got, want := tree.String(), "(1,1)\n(0,0)\n(2,2)\n"; got != want {
		t.Errorf("pre-order = %q; want %q", got, want)
	}
}

func TestReadPointsMissingFile(t *testing.T) {
	_, _, err := readPointsAndPopulateTree(filepath.Join(t.TempDir(), "nope.txt"), nil)
	if err == nil {
		t.Errorf("a missing file must fail")
	}
}
