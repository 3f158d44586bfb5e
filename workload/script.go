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

package workload

import (
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Script is a named, hand-written list of operations. Each entry of Ops is
// one line such as "insert 10 20 30" or "erase 40".
type Script struct {
	Name string   `yaml:"name"`
	Ops  []string `yaml:"ops"`
}

// LoadScript reads and parses the YAML script at path.
func LoadScript(fs afero.Fs, path string) (*Script, []Op, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read script %s", path)
	}
	script, ops, err := ParseScript(data)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "script %s", path)
	}
	return script, ops, nil
}

// ParseScript decodes a YAML script and expands it into operations.
func ParseScript(data []byte) (*Script, []Op, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, nil, errors.Wrap(err, "invalid yaml")
	}

	var ops []Op
	for i, line := range script.Ops {
		lineOps, err := ParseLine(line)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "op %d", i+1)
		}
		ops = append(ops, lineOps...)
	}
	return &script, ops, nil
}

// ParseLine splits a line into words and turns "<verb> <key>..." into one
// operation per key. Blank lines and lines starting with # yield nothing.
func ParseLine(line string) ([]Op, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	words, err := shellwords.Parse(line)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %q", line)
	}
	if len(words) < 2 {
		return nil, errors.Errorf("%q needs a verb and at least one key", line)
	}

	kind, err := ParseKind(words[0])
	if err != nil {
		return nil, err
	}
	keys, err := ParseKeys(words[1:])
	if err != nil {
		return nil, err
	}

	ops := make([]Op, len(keys))
	for i, k := range keys {
		ops[i] = Op{Kind: kind, Key: k}
	}
	return ops, nil
}
