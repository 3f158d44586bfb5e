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
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

const (
	DefaultRunTimeout = 5 * time.Minute
	MaxTraceSize      = 1024 * 1024 // 1MB

	// The context is polled and the bar advanced once per batch.
	batchSize = 1024
)

// Stats summarises a run.
type Stats struct {
	Inserted   int
	Duplicates int
	Erased     int
	Missing    int
	Found      int
	NotFound   int
	Elapsed    time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("inserted=%d duplicates=%d erased=%d missing=%d found=%d not_found=%d elapsed=%s",
		s.Inserted, s.Duplicates, s.Erased, s.Missing, s.Found, s.NotFound, s.Elapsed.Round(time.Microsecond))
}

// Runner applies operations to a Set with a timeout, an optional invariant
// check after every operation, a progress bar and an operation trace.
type Runner struct {
	Timeout  time.Duration
	Verify   func() error
	Progress io.Writer // nil disables the progress bar
	Trace    io.Writer // nil disables the trace

	TraceLimit int64
}

// NewRunner creates a runner with the default timeout and trace limit
func NewRunner() *Runner {
	return &Runner{Timeout: DefaultRunTimeout, TraceLimit: MaxTraceSize}
}

// Run applies ops in order. On cancellation, timeout or a failed check it
// returns the stats gathered so far together with the error.
func (r *Runner) Run(ctx context.Context, set Set, ops []Op) (Stats, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var bar *progressbar.ProgressBar
	if r.Progress != nil {
		bar = newProgressBar(r.Progress, len(ops))
	}

	var trace *LimitedWriter
	if r.Trace != nil {
		limit := r.TraceLimit
		if limit <= 0 {
			limit = MaxTraceSize
		}
		trace = &LimitedWriter{w: r.Trace, limit: limit}
	}

	var stats Stats
	start := time.Now()
	defer func() {
		if trace != nil && trace.truncated {
			fmt.Fprintln(r.Trace, "\n[TRACE TRUNCATED - Size limit exceeded]")
		}
	}()

	for i, op := range ops {
		if i%batchSize == 0 {
			if err := ctx.Err(); err != nil {
				stats.Elapsed = time.Since(start)
				return stats, errors.Wrapf(err, "stopped after %d of %d operations", i, len(ops))
			}
			if bar != nil && i > 0 {
				_ = bar.Add(batchSize)
			}
		}

		result := apply(set, op, &stats)
		if trace != nil {
			fmt.Fprintf(trace, "%s -> %t\n", op, result)
		}

		if r.Verify != nil {
			if err := r.Verify(); err != nil {
				stats.Elapsed = time.Since(start)
				return stats, errors.Wrapf(err, "after op %d (%s)", i+1, op)
			}
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	stats.Elapsed = time.Since(start)
	return stats, nil
}

func apply(set Set, op Op, stats *Stats) bool {
	switch op.Kind {
	case Insert:
		if set.Insert(op.Key) {
			stats.Inserted++
			return true
		}
		stats.Duplicates++
	case Erase:
		if set.Erase(op.Key) {
			stats.Erased++
			return true
		}
		stats.Missing++
	case Find:
		if set.Contains(op.Key) {
			stats.Found++
			return true
		}
		stats.NotFound++
	}
	return false
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("🌲 Applying operations..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
	)
}

// LimitedWriter implements io.Writer with size limiting
type LimitedWriter struct {
	w         io.Writer
	limit     int64
	written   int64
	truncated bool
}

// Truncated reports whether any write was cut short.
func (lw *LimitedWriter) Truncated() bool {
	return lw.truncated
}

func (lw *LimitedWriter) Write(p []byte) (n int, err error) {
	if lw.written >= lw.limit {
		lw.truncated = true
		return len(p), nil
	}

	remaining := lw.limit - lw.written
	if int64(len(p)) > remaining {
		lw.truncated = true
		n, err = lw.w.Write(p[:remaining])
		lw.written += int64(n)
		return len(p), err
	}

	n, err = lw.w.Write(p)
	lw.written += int64(n)
	return n, err
}
