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
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/cybrota/avlset/avl"
	"github.com/cybrota/avlset/workload"
)

// RunOptions controls how a workload script or benchmark is replayed.
type RunOptions struct {
	Verify  bool
	Print   bool
	Diagram bool
	Timeout time.Duration

	Trace    io.Writer
	Progress io.Writer
}

// BenchOptions selects the generated workload.
type BenchOptions struct {
	Size    int
	Pattern string
	Seed    int64
}

// heightBound is the worst-case AVL height for n elements.
func heightBound(n int) float64 {
	return 1.4405 * math.Log2(float64(n+2))
}

func newRunner(tree *avl.Tree[int], opts RunOptions) *workload.Runner {
	runner := workload.NewRunner()
	if opts.Timeout > 0 {
		runner.Timeout = opts.Timeout
	}
	if opts.Verify {
		runner.Verify = tree.Check
	}
	runner.Trace = opts.Trace
	runner.Progress = opts.Progress
	return runner
}

// runScript replays a YAML workload script against a fresh tree.
func runScript(ctx context.Context, fs afero.Fs, path string, opts RunOptions, w io.Writer, logger *zap.SugaredLogger) error {
	script, ops, err := workload.LoadScript(fs, path)
	if err != nil {
		return err
	}
	logger.Debugw("script loaded", "name", script.Name, "path", path, "ops", len(ops))

	tree := avl.New[int]()
	stats, err := newRunner(tree, opts).Run(ctx, tree, ops)
	if err != nil {
		return errors.Wrapf(err, "script %s", script.Name)
	}

	fmt.Fprintf(w, "%s: %d operations\n", script.Name, len(ops))
	fmt.Fprintln(w, stats)
	fmt.Fprintf(w, "len=%d height=%d\n", tree.Len(), tree.Height())
	if opts.Print {
		fmt.Fprintln(w, tree)
	}
	if opts.Diagram {
		fmt.Fprint(w, tree.Diagram())
	}
	return nil
}

// runBench generates a workload and applies it, reporting the final shape
// against the AVL height bound.
func runBench(ctx context.Context, registry *workload.Registry, bench BenchOptions, opts RunOptions, w io.Writer, logger *zap.SugaredLogger) error {
	if bench.Size <= 0 {
		return errors.Errorf("benchmark size must be positive, got %d", bench.Size)
	}
	generator, err := registry.Lookup(bench.Pattern)
	if err != nil {
		return err
	}
	logger.Debugw("generating workload", "generator", generator.Name(), "size", bench.Size, "seed", bench.Seed)
	ops := generator.Generate(bench.Size, bench.Seed)

	tree := avl.New[int]()
	stats, err := newRunner(tree, opts).Run(ctx, tree, ops)
	if err != nil {
		return errors.Wrapf(err, "%s benchmark", generator.Name())
	}
	if err := tree.Check(); err != nil {
		return errors.Wrap(err, "final check")
	}

	bound := heightBound(tree.Len())
	fmt.Fprintf(w, "pattern=%s size=%d seed=%d\n", generator.Name(), len(ops), bench.Seed)
	fmt.Fprintln(w, stats)
	fmt.Fprintf(w, "len=%d height=%d bound=%.2f\n", tree.Len(), tree.Height(), bound)
	if elapsed := stats.Elapsed; elapsed > 0 && len(ops) > 0 {
		fmt.Fprintf(w, "%.0f ops/s\n", float64(len(ops))/elapsed.Seconds())
	}
	if float64(tree.Height()) > bound {
		logger.Warnw("height exceeds AVL bound", "height", tree.Height(), "bound", bound)
	}
	return nil
}

// runLoad inserts every key of a key list file and prints the ordered set.
func runLoad(fs afero.Fs, path string, w io.Writer) error {
	keys, err := readKeys(fs, path)
	if err != nil {
		return err
	}

	tree := avl.New[int]()
	duplicates := 0
	for _, k := range keys {
		if !tree.Insert(k) {
			duplicates++
		}
	}

	fmt.Fprintf(w, "read=%d unique=%d duplicates=%d height=%d\n", len(keys), tree.Len(), duplicates, tree.Height())
	fmt.Fprintln(w, tree)
	return nil
}
