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
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/avlset/workload"
)

const configFileName = ".avlset.yaml"

type ShellConfig struct {
	ShowDiagram bool `yaml:"show_diagram"`
	HistorySize int  `yaml:"history_size"`
}

type BenchConfig struct {
	Size    int    `yaml:"size"`
	Pattern string `yaml:"pattern"`
	Seed    int64  `yaml:"seed"`
	Verify  bool   `yaml:"verify"`
	Timeout string `yaml:"timeout"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Config struct {
	Shell ShellConfig `yaml:"shell"`
	Bench BenchConfig `yaml:"bench"`
	Log   LogConfig   `yaml:"log"`
}

var defaultConfig = Config{
	Shell: ShellConfig{
		ShowDiagram: true,
		HistorySize: 32,
	},
	Bench: BenchConfig{
		Size:    100000,
		Pattern: "random",
		Seed:    1,
		Verify:  false,
		Timeout: "5m",
	},
	Log: LogConfig{
		Level: "warn",
	},
}

// TimeoutDuration parses Timeout, falling back to the runner default.
func (b BenchConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(b.Timeout)
	if err != nil || d <= 0 {
		return workload.DefaultRunTimeout
	}
	return d
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the config file at path. A missing file yields the
// defaults; an unreadable or invalid one yields the defaults and an error
// saying why. Keys absent from the file keep their default values.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	config := defaultConfig

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return &config, errors.Wrapf(err, "failed to read %s", path)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, errors.Wrapf(err, "failed to parse %s", path)
	}

	return &config, nil
}

func createDefaultConfigFile(fs afero.Fs, path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = afero.WriteFile(fs, path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(fs afero.Fs, configPath string, w io.Writer) error {
	exists, err := afero.Exists(fs, configPath)
	if err != nil {
		return errors.Wrap(err, "failed to stat config file")
	}
	if !exists {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(fs, configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig(fs, configPath)
	if err != nil {
		fmt.Fprintf(w, "⚠️  %v (showing defaults)\n\n", err)
	}

	fmt.Fprintf(w, "🔧 avlset Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")
	fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)

	fmt.Fprintf(w, "🌲 %sShell:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • show_diagram: %t\n", config.Shell.ShowDiagram)
	fmt.Fprintf(w, "  • history_size: %d (undo depth)\n\n", config.Shell.HistorySize)

	fmt.Fprintf(w, "⏱  %sBench:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • size: %d\n", config.Bench.Size)
	fmt.Fprintf(w, "  • pattern: %s\n", config.Bench.Pattern)
	fmt.Fprintf(w, "  • seed: %d\n", config.Bench.Seed)
	fmt.Fprintf(w, "  • verify: %t\n", config.Bench.Verify)
	fmt.Fprintf(w, "  • timeout: %s\n\n", config.Bench.TimeoutDuration())

	fmt.Fprintf(w, "📜 %sLog:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • level: %s\n", config.Log.Level)
	fmt.Fprintf(w, "  • development: %t\n", config.Log.Development)
	return nil
}
