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
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// OpKind is the operation applied to a set.
type OpKind int

const (
	Insert OpKind = iota
	Erase
	Find
)

var opNames = map[OpKind]string{
	Insert: "insert",
	Erase:  "erase",
	Find:   "find",
}

func (k OpKind) String() string {
	if name, ok := opNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// ParseKind maps a verb to its OpKind. "delete" and "remove" are accepted for
// erase, "contains" for find.
func ParseKind(verb string) (OpKind, error) {
	switch verb {
	case "insert", "add":
		return Insert, nil
	case "erase", "delete", "remove":
		return Erase, nil
	case "find", "contains":
		return Find, nil
	}
	return 0, errors.Errorf("unknown operation %q", verb)
}

// ParseKeys converts every argument to an integer key.
func ParseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Errorf("key %q is not an integer", arg)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Op is a single operation on a key.
type Op struct {
	Kind OpKind
	Key  int
}

func (o Op) String() string {
	return fmt.Sprintf("%s %d", o.Kind, o.Key)
}

// Set is what a workload is applied to.
type Set interface {
	Insert(key int) bool
	Erase(key int) bool
	Contains(key int) bool
	Len() int
}

// Generator defines the interface for the different workload patterns
type Generator interface {
	Name() string
	Generate(n int, seed int64) []Op
	Supports(name string) bool
	Priority() int // Lower number = higher priority
}

func inserts(keys []int) []Op {
	ops := make([]Op, len(keys))
	for i, k := range keys {
		ops[i] = Op{Kind: Insert, Key: k}
	}
	return ops
}
