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

package bench

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cybrota/pointavl/point"
)

var samplePairs = [][2]float64{
	{31.7749, 35.2016},
	{31.7686, 35.2128},
	{31.81428051893798, 35.18577781093502},
	{32.0853, 34.7818},
}

func TestRun(t *testing.T) {
	testCases := []struct {
		Name   string
		Target point.Point
		Found  bool
	}{
		{"Present target", DefaultTarget, true},
		{"Target within tolerance", point.New(31.77494, 35.20156), true},
		{"Absent target", point.New(1, 1), false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			report, err := Run(context.Background(), samplePairs, Options{Target: tc.Target, Repeat: 3})
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if report.Points != len(samplePairs) {
				t.Errorf("Points = %d; want %d", report.Points, len(samplePairs))
			}
			if len(report.Results) != 8 {
				t.Fatalf("got %d results; want 8", len(report.Results))
			}
			for _, res := range report.Results {
				want := tc.Found && res.Operation != "insert"
				if res.Found != want {
					t.Errorf("%s %s: Found = %v; want %v", res.Container, res.Operation, res.Found, want)
				}
				if res.Mean < 0 {
					t.Errorf("%s %s: negative mean %v", res.Container, res.Operation, res.Mean)
				}
			}
		})
	}
}

func TestRunDefaultTarget(t *testing.T) {
	report, err := Run(context.Background(), [][2]float64{{DefaultTarget.X, DefaultTarget.Y}}, Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if report.Target != DefaultTarget {
		t.Errorf("Target = %s; want %s", report.Target, DefaultTarget)
	}
	for _, res := range report.Results {
		if want := res.Operation != "insert"; res.Found != want {
			t.Errorf("%s %s: Found = %v; want %v", res.Container, res.Operation, res.Found, want)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, samplePairs, Options{Target: DefaultTarget})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v; want %v", err, context.Canceled)
	}
	if report != nil {
		t.Errorf("a cancelled run must not return a report")
	}
}

func TestRunWithProgress(t *testing.T) {
	var progress bytes.Buffer
	if _, err := Run(context.Background(), samplePairs, Options{Target: DefaultTarget, Progress: &progress}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if progress.Len() == 0 {
		t.Errorf("progress bar wrote nothing")
	}
}

func TestWriteRaw(t *testing.T) {
	report, err := Run(context.Background(), samplePairs, Options{Target: DefaultTarget})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := report.WriteRaw(&out); err != nil {
		t.Fatalf("WriteRaw() error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(report.Results) {
		t.Errorf("WriteRaw() wrote %d lines; want %d", len(lines), len(report.Results))
	}
}

func TestRender(t *testing.T) {
	report, err := Run(context.Background(), samplePairs, Options{Target: DefaultTarget})
	if err != nil {
		t.Fatal(err)
	}

	out := report.Render()
	for _, want := range []string{"CONTAINER", "stack", "avl", "set", "linear search", "4 points"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output is missing %q", want)
		}
	}
}
