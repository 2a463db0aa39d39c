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

package pointfile

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	testCases := []struct {
		Name  string
		Input string
		Want  [][2]float64
	}{
		{
			Name:  "Comma separated",
			Input: "1,2\n3.5,-4\n",
			Want:  [][2]float64{{1, 2}, {3.5, -4}},
		},
		{
			Name:  "White space separated",
			Input: "1 2\n3\t4",
			Want:  [][2]float64{{1, 2}, {3, 4}},
		},
		{
			Name:  "Comma and spaces",
			Input: "  31.7749, 35.2016  \n",
			Want:  [][2]float64{{31.7749, 35.2016}},
		},
		{
			Name:  "Comments and blank lines",
			Input: "# x y\n\n1 1\n   \n# done\n",
			Want:  [][2]float64{{1, 1}},
		},
		{
			Name:  "Empty",
			Input: "",
			Want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tc.Input))
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if !slices.Equal(got, tc.Want) {
				t.Errorf("Read() = %v; want %v", got, tc.Want)
			}
		})
	}
}

func TestReadMalformed(t *testing.T) {
	testCases := []struct {
		Name  string
		Input string
		Line  string
	}{
		{"One value", "1 2\n3\n", "line 2"},
		{"Three values", "1 2 3\n", "line 1"},
		{"Not a number", "1 2\n\nx 4\n", "line 3"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.Input))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("Read() error = %v; want %v", err, ErrMalformed)
			}
			if !strings.Contains(err.Error(), tc.Line) {
				t.Errorf("error %q should name %q", err, tc.Line)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")
	if err := os.WriteFile(path, []byte("1,1\n2,2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	pairs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(pairs) != 2 {
		t.Errorf("Load() returned %d pairs; want 2", len(pairs))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("Load() of a missing file must fail")
	}
}
