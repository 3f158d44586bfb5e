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
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// readKeys reads one integer key per line from path. Blank lines and lines
// starting with '#' are skipped.
func readKeys(fs afero.Fs, path string) ([]int, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open key file %s", path)
	}
	defer file.Close()

	// Pre-allocate with estimated capacity
	var keys []int
	if stat, err := file.Stat(); err == nil {
		// Estimate ~8 bytes per line average
		keys = make([]int, 0, int(stat.Size()/8))
	}

	scanner := bufio.NewScanner(file)
	// Increase buffer size for better performance with large key files
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, err := strconv.Atoi(line)
		if err != nil {
			return nil, errors.Errorf("%s:%d: %q is not an integer key", path, lineNo, line)
		}
		keys = append(keys, key)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read key file %s", path)
	}

	return keys, nil
}
