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
	"sort"

	"github.com/pkg/errors"
)

// Registry manages the available workload generators
type Registry struct {
	generators []Generator
}

// NewRegistry creates a registry with every built-in generator
func NewRegistry() *Registry {
	registry := &Registry{}

	registry.Register(&SequentialGenerator{})
	registry.Register(&ReverseGenerator{})
	registry.Register(&ZigzagGenerator{})
	registry.Register(NewRandomGenerator(DefaultFalsePositiveRate))
	registry.Register(NewChurnGenerator(DefaultEraseRatio, DefaultFindRatio))

	return registry
}

// Register registers a new generator
func (r *Registry) Register(g Generator) {
	r.generators = append(r.generators, g)
}

// Lookup returns the highest priority generator supporting name.
func (r *Registry) Lookup(name string) (Generator, error) {
	var best Generator
	for _, g := range r.generators {
		if !g.Supports(name) {
			continue
		}
		if best == nil || g.Priority() < best.Priority() {
			best = g
		}
	}
	if best == nil {
		return nil, errors.Errorf("no workload pattern named %q (available: %v)", name, r.Names())
	}
	return best, nil
}

// Names lists the canonical names of the registered generators, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for _, g := range r.generators {
		names = append(names, g.Name())
	}
	sort.Strings(names)
	return names
}
