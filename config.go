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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/pointavl/bench"
	"github.com/cybrota/pointavl/point"
)

const configFileName = ".pointavl.yaml"

type OrderConfig struct {
	ReferenceX float64 `yaml:"reference_x"`
	ReferenceY float64 `yaml:"reference_y"`
}

type BenchConfig struct {
	TargetX      float64 `yaml:"target_x"`
	TargetY      float64 `yaml:"target_y"`
	Repeat       int     `yaml:"repeat"`
	ShowProgress bool    `yaml:"show_progress"`
}

type Config struct {
	Order OrderConfig `yaml:"order"`
	Bench BenchConfig `yaml:"bench"`
}

var defaultConfig = Config{
	Order: OrderConfig{
		ReferenceX: point.DefaultReference.X,
		ReferenceY: point.DefaultReference.Y,
	},
	Bench: BenchConfig{
		TargetX:      bench.DefaultTarget.X,
		TargetY:      bench.DefaultTarget.Y,
		Repeat:       1,
		ShowProgress: true,
	},
}

// PointOrder is the distance order around the configured reference.
func (c *Config) PointOrder() point.Order {
	return point.DistanceOrder{Ref: point.New(c.Order.ReferenceX, c.Order.ReferenceY)}
}

func (c *Config) BenchTarget() point.Point {
	return point.New(c.Bench.TargetX, c.Bench.TargetY)
}

// LoadConfig reads ~/.pointavl.yaml. A missing or unreadable file yields the
// defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	// keys left out of the file keep their default values
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("failed to parse %s: %v", configPath, err)
	}
	if config.Bench.Repeat <= 0 {
		config.Bench.Repeat = 1
	}

	return config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		printError("Failed to get config path: %v", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		printInfo("Configuration file not found. Creating default configuration...")

		if err := createDefaultConfigFile(configPath); err != nil {
			printError("Failed to create default config file: %v", err)
			return
		}
		printSuccess("Created default configuration at: %s", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		printWarning("%v. Showing default settings.", err)
	}

	fmt.Printf("🔧 pointavl Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🧭 %s\n", heading("Point order:"))
	fmt.Printf("  • %s: %v\n", key("reference_x"), config.Order.ReferenceX)
	fmt.Printf("  • %s: %v\n", key("reference_y"), config.Order.ReferenceY)
	fmt.Printf("    Points are ordered by their distance from %s\n\n", point.New(config.Order.ReferenceX, config.Order.ReferenceY))

	fmt.Printf("⏱  %s\n", heading("Benchmark:"))
	fmt.Printf("  • %s: %v\n", key("target_x"), config.Bench.TargetX)
	fmt.Printf("  • %s: %v\n", key("target_y"), config.Bench.TargetY)
	fmt.Printf("  • %s: %d\n", key("repeat"), config.Bench.Repeat)
	fmt.Printf("  • %s: %t\n\n", key("show_progress"), config.Bench.ShowProgress)

	fmt.Printf("💡 To change the reference point, edit %s:\n", configPath)
	fmt.Printf("   order:\n     reference_x: 0\n     reference_y: 0\n")
}
