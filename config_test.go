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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybrota/pointavl/bench"
	"github.com/cybrota/pointavl/point"
)

func TestLoadConfigFrom(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr bool
	}{
		{
			name:    "Empty file keeps defaults",
			content: "",
			want:    defaultConfig,
		},
		{
			name:    "Origin reference",
			content: "order:\n  reference_x: 0\n  reference_y: 0\n",
			want: Config{
				Order: OrderConfig{},
				Bench: defaultConfig.Bench,
			},
		},
		{
			name:    "Bench section only",
			content: "bench:\n  repeat: 5\n  show_progress: false\n",
			want: Config{
				Order: defaultConfig.Order,
				Bench: BenchConfig{
					TargetX:      bench.DefaultTarget.X,
					TargetY:      bench.DefaultTarget.Y,
					Repeat:       5,
					ShowProgress: false,
				},
			},
		},
		{
			name:    "Non positive repeat",
			content: "bench:\n  repeat: 0\n",
			want:    defaultConfig,
		},
		{
			name:    "Malformed yaml",
			content: "order: [unclosed\n",
			want:    defaultConfig,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), configFileName)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}

			got, err := loadConfigFrom(path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("loadConfigFrom() error = %v; wantErr %v", err, tc.wantErr)
			}
			if *got != tc.want {
				t.Errorf("loadConfigFrom() = %+v; want %+v", *got, tc.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	got, err := loadConfigFrom(filepath.Join(t.TempDir(), configFileName))
	if err != nil {
		t.Fatalf("loadConfigFrom() error: %v", err)
	}
	if *got != defaultConfig {
		t.Errorf("missing file should give defaults, got %+v", *got)
	}
	if got.PointOrder() != point.DefaultOrder {
		t.Errorf("default order should be point.DefaultOrder")
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatalf("createDefaultConfigFile() error: %v", err)
	}

	got, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom() error: %v", err)
	}
	if *got != defaultConfig {
		t.Errorf("round trip of the default file = %+v; want %+v", *got, defaultConfig)
	}
	if got.BenchTarget() != bench.DefaultTarget {
		t.Errorf("BenchTarget() = %s; want %s", got.BenchTarget(), bench.DefaultTarget)
	}
}

func TestLoadConfigUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	content := "order:\n  reference_x: 1\n  reference_y: 2\n"
	if err := os.WriteFile(filepath.Join(home, configFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	want := point.DistanceOrder{Ref: point.New(1, 2)}
	if config.PointOrder() != want {
		t.Errorf("PointOrder() = %v; want %v", config.PointOrder(), want)
	}
}

func TestDisplaySettingsCreatesFileWithSingleSpacedStatus(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var status bytes.Buffer
	statusOutput = &status
	t.Cleanup(func() { statusOutput = os.Stderr })

	displaySettings()

	if _, err := os.Stat(filepath.Join(home, configFileName)); err != nil {
		t.Fatalf("default config not created: %v", err)
	}
	out := status.String()
	if !strings.Contains(out, "Created default configuration at:") {
		t.Errorf("status output missing the created line: %q", out)
	}
	if strings.Contains(out, "\n\n") {
		t.Errorf("status lines should end in a single newline: %q", out)
	}
}
