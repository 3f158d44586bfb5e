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
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/pkg/errors"

	"github.com/cybrota/avlset/avl"
)

type demoScenario struct {
	title  string
	note   string
	insert []int
	erase  []int
}

var demoScenarios = []demoScenario{
	{
		title:  "Right-right: single left rotation",
		note:   "Ascending inserts make the root right-heavy by two.",
		insert: []int{10, 20, 30},
	},
	{
		title:  "Left-left: single right rotation",
		note:   "The mirror image of the first scenario.",
		insert: []int{30, 20, 10},
	},
	{
		title:  "Left-right: double rotation",
		note:   "The left child leans right, so it is rotated left before the root is rotated right.",
		insert: []int{30, 10, 20},
	},
	{
		title:  "Erase with rebalancing",
		note:   "Removing the right side leaves the root left-heavy and the tree rebalances on the way up.",
		insert: []int{10, 20, 30, 40, 50, 25},
		erase:  []int{40, 50},
	},
	{
		title: "Erase on an empty tree",
		note:  "Erasing from an empty tree or erasing an absent value changes nothing.",
		erase: []int{10},
	},
}

// demoReport runs every scenario and describes the result as markdown.
func demoReport() (string, error) {
	var sb strings.Builder
	sb.WriteString("# AVL rotation scenarios\n\n")

	for i, sc := range demoScenarios {
		tree := avl.New[int]()
		for _, v := range sc.insert {
			tree.Insert(v)
		}
		erased := 0
		for _, v := range sc.erase {
			if tree.Erase(v) {
				erased++
			}
		}
		if err := tree.Check(); err != nil {
			return "", errors.Wrapf(err, "scenario %d (%s)", i+1, sc.title)
		}

		fmt.Fprintf(&sb, "## %d. %s\n\n%s\n\n", i+1, sc.title, sc.note)
		if len(sc.insert) > 0 {
			fmt.Fprintf(&sb, "* **insert:** %s\n", joinKeys(sc.insert))
		}
		if len(sc.erase) > 0 {
			fmt.Fprintf(&sb, "* **erase:** %s (%d removed)\n", joinKeys(sc.erase), erased)
		}
		fmt.Fprintf(&sb, "* **elements:** %s\n", tree.String())
		fmt.Fprintf(&sb, "* **height:** %d\n\n", tree.Height())
		sb.WriteString("```\n")
		sb.WriteString(tree.Diagram())
		sb.WriteString("```\n\n")
	}
	return sb.String(), nil
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return strings.Join(parts, ", ")
}

// printDemo renders the scenario report for the terminal.
func printDemo(w io.Writer) error {
	report, err := demoReport()
	if err != nil {
		return err
	}
	_, err = w.Write(markdown.Render(report, 80, 3))
	return err
}
