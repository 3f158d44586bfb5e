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
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// newLogger builds the CLI logger. Output goes to stderr so it never mixes
// with listings written to stdout.
func newLogger(cfg LogConfig) (*zap.SugaredLogger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}
	zc.Level = level
	zc.Encoding = "console"
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	rawlog, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}
	return rawlog.Sugar().With("source", "avlset"), nil
}
