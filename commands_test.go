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
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cybrota/avlset/workload"
)

const testScript = `
name: scenario-4
ops:
  - insert 10 20 30 40 50 25
  - erase 40 50
  - find 25 99
`

func TestRunScript(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/s4.yaml", []byte(testScript), 0644))

	var out, trace bytes.Buffer
	opts := RunOptions{Verify: true, Print: true, Diagram: true, Trace: &trace}
	err := runScript(context.Background(), fs, "/work/s4.yaml", opts, &out, zap.NewNop().Sugar())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "scenario-4: 10 operations")
	assert.Contains(t, out.String(), "inserted=6 duplicates=0 erased=2 missing=0 found=1 not_found=1")
	assert.Contains(t, out.String(), "len=4 height=2")
	assert.Contains(t, out.String(), "<10 20 25 30>")
	assert.Contains(t, out.String(), "20 (h=2)")
	assert.Contains(t, trace.String(), "erase 50 -> true")
}

func TestRunScriptErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/bad.yaml", []byte("ops:\n  - rotate 5\n"), 0644))

	var out bytes.Buffer
	err := runScript(context.Background(), fs, "/work/missing.yaml", RunOptions{}, &out, zap.NewNop().Sugar())
	assert.Error(t, err)

	err = runScript(context.Background(), fs, "/work/bad.yaml", RunOptions{}, &out, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rotate")
	assert.Empty(t, out.String())
}

func TestRunBench(t *testing.T) {
	registry := workload.NewRegistry()

	for _, pattern := range registry.Names() {
		t.Run(pattern, func(t *testing.T) {
			var out, progress bytes.Buffer
			bench := BenchOptions{Size: 2000, Pattern: pattern, Seed: 7}
			opts := RunOptions{Verify: pattern == "zigzag", Progress: &progress}

			err := runBench(context.Background(), registry, bench, opts, &out, zap.NewNop().Sugar())
			require.NoError(t, err)
			assert.Contains(t, out.String(), "pattern="+pattern)
			assert.Contains(t, out.String(), "bound=")
		})
	}
}

func TestRunBenchRejectsBadInput(t *testing.T) {
	registry := workload.NewRegistry()
	var out bytes.Buffer

	err := runBench(context.Background(), registry, BenchOptions{Size: 0, Pattern: "random"}, RunOptions{}, &out, zap.NewNop().Sugar())
	assert.Error(t, err)

	err = runBench(context.Background(), registry, BenchOptions{Size: 10, Pattern: "spiral"}, RunOptions{}, &out, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spiral")
}

func TestRunBenchHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runBench(ctx, workload.NewRegistry(), BenchOptions{Size: 5000, Pattern: "sequential"}, RunOptions{}, &out, zap.NewNop().Sugar())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/keys.txt", []byte("# keys\n5\n3\n\n8\n3\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, runLoad(fs, "/keys.txt", &out))
	assert.Equal(t, "read=4 unique=3 duplicates=1 height=1\n<3 5 8>\n", out.String())

	assert.Error(t, runLoad(fs, "/absent.txt", &out))
}

func TestHeightBound(t *testing.T) {
	assert.InDelta(t, 1.4405, heightBound(0), 1e-9)
	assert.Greater(t, heightBound(1000), 14.0)
}
