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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlset %s**

A balanced ordered set (AVL tree) with a playground around it: watch rotations happen,
replay scripted workloads and benchmark insert/erase patterns while every invariant is checked.

Built with Go %s

# 1. Commands
* **shell** (default): interactive session, type *help* inside for the command list
* **demo**: the classic rotation scenarios with their resulting shapes
* **run** *script.yaml*: replay a scripted workload
* **bench**: generated workloads (sequential, reverse, zigzag, random, churn)
* **load** *keys.txt*: insert one integer key per line
* **settings**: show or create ~/.avlset.yaml

# 2. Script format
A script is YAML with a *name* and a list of *ops*, one verb per line:
*insert 10 20 30*, *erase 20*, *find 10*.

# 3. Guarantees
* Elements are unique and kept in ascending order
* Height stays within 1.44 log2(n+2)
* Insert, erase and find visit O(log n) nodes

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
