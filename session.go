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
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/cybrota/avlset/avl"
	"github.com/cybrota/avlset/workload"
)

const shellHelp = `# Shell commands

| command | effect |
|---|---|
| insert k... | add keys, duplicates are ignored |
| erase k... | remove keys, absent keys are ignored |
| find k... | report whether each key is stored |
| min / max / root | smallest, largest or root element |
| range lo hi | elements with lo <= k < hi |
| len / height | element count and tree height |
| list | all elements in ascending order |
| check | verify ordering, balance and heights |
| clear | remove everything |
| undo | restore the tree before the last change |
| help | this page |
`

var errNothingToUndo = errors.New("nothing to undo")

// Session is one interactive shell session over an integer tree. It keeps a
// bounded stack of snapshots for undo and caches rendered diagrams per tree
// generation.
type Session struct {
	tree       *avl.Tree[int]
	undo       []*avl.Tree[int]
	maxUndo    int
	generation uint64
	renders    *cache.Cache
}

func NewSession(historySize int, renders *cache.Cache) *Session {
	return &Session{
		tree:    avl.New[int](),
		maxUndo: max(historySize, 0),
		renders: renders,
	}
}

// Tree exposes the session's tree for read-only use.
func (s *Session) Tree() *avl.Tree[int] {
	return s.tree
}

// Diagram renders the current tree shape, reusing the cached rendering while
// the tree has not changed.
func (s *Session) Diagram() string {
	key := "diagram:" + strconv.FormatUint(s.generation, 10)
	if rendered := GetRender(s.renders, key); rendered != "" {
		return rendered
	}
	rendered := s.tree.Diagram()
	CacheRender(s.renders, key, rendered)
	return rendered
}

// Listing returns the elements in ascending order.
func (s *Session) Listing() string {
	return s.tree.String()
}

// Execute runs one command line and returns its output.
func (s *Session) Execute(line string) (string, error) {
	words, err := shellwords.Parse(strings.TrimSpace(line))
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse command %q", line)
	}
	if len(words) == 0 {
		return "", nil
	}

	verb, args := strings.ToLower(words[0]), words[1:]
	switch verb {
	case "insert", "add", "erase", "delete", "remove", "find", "contains":
		kind, err := workload.ParseKind(verb)
		if err != nil {
			return "", err
		}
		keys, err := workload.ParseKeys(args)
		if err != nil {
			return "", err
		}
		if len(keys) == 0 {
			return "", errors.Errorf("%s needs at least one key", verb)
		}
		return s.apply(kind, keys), nil
	case "min":
		return s.element(s.tree.Min)
	case "max":
		return s.element(s.tree.Max)
	case "root":
		return s.element(s.tree.Root)
	case "range":
		bounds, err := workload.ParseKeys(args)
		if err != nil {
			return "", err
		}
		if len(bounds) != 2 {
			return "", errors.New("range needs exactly two bounds: range lo hi")
		}
		return fmt.Sprint(slices.Collect(s.tree.Range(bounds[0], bounds[1]))), nil
	case "len", "size":
		return strconv.Itoa(s.tree.Len()), nil
	case "height":
		return strconv.Itoa(s.tree.Height()), nil
	case "list", "print":
		return s.Listing(), nil
	case "check":
		if err := s.tree.Check(); err != nil {
			return "", err
		}
		return "ok", nil
	case "clear":
		n := s.tree.Len()
		if n > 0 {
			s.snapshot()
			s.tree.Clear()
			s.generation++
		}
		return fmt.Sprintf("cleared %d elements", n), nil
	case "undo":
		if len(s.undo) == 0 {
			return "", errNothingToUndo
		}
		s.tree = s.undo[len(s.undo)-1]
		s.undo = s.undo[:len(s.undo)-1]
		s.generation++
		return "undone", nil
	case "help", "?":
		return shellHelp, nil
	}
	return "", errors.Errorf("unknown command %q (try \"help\")", words[0])
}

// apply runs kind for every key. The pre-change tree is kept for undo only
// when something actually changed.
func (s *Session) apply(kind workload.OpKind, keys []int) string {
	before := s.tree.Clone()
	changed := false

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		switch kind {
		case workload.Insert:
			if s.tree.Insert(k) {
				changed = true
				lines = append(lines, fmt.Sprintf("inserted %d", k))
			} else {
				lines = append(lines, fmt.Sprintf("%d already present", k))
			}
		case workload.Erase:
			if s.tree.Erase(k) {
				changed = true
				lines = append(lines, fmt.Sprintf("erased %d", k))
			} else {
				lines = append(lines, fmt.Sprintf("%d not present", k))
			}
		case workload.Find:
			if s.tree.Contains(k) {
				lines = append(lines, fmt.Sprintf("%d found", k))
			} else {
				lines = append(lines, fmt.Sprintf("%d not found", k))
			}
		}
	}

	if changed {
		s.push(before)
		s.generation++
	}
	return strings.Join(lines, "\n")
}

func (s *Session) element(get func() (int, error)) (string, error) {
	v, err := get()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}

func (s *Session) snapshot() {
	s.push(s.tree.Clone())
}

func (s *Session) push(t *avl.Tree[int]) {
	if s.maxUndo == 0 {
		return
	}
	if len(s.undo) == s.maxUndo {
		s.undo = slices.Delete(s.undo, 0, 1)
	}
	s.undo = append(s.undo, t)
}
