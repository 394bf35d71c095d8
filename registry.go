/*
 * Copyright 2019 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cachesim

import "sort"

// Factory constructs a fresh Policy instance, drawing any randomness it
// needs from r.
type Factory func(r *Rand) Policy

// registry is the process-wide name->constructor map every built-in
// policy registers itself into.
var registry = map[string]Factory{
	"LRU":       func(r *Rand) Policy { return NewLRU() },
	"FIFO":      func(r *Rand) Policy { return NewFIFO() },
	"Filter":    func(r *Rand) Policy { return NewFilter() },
	"ThLRU":     func(r *Rand) Policy { return NewThLRU() },
	"ExpLRU":    func(r *Rand) Policy { return NewExpLRU(r) },
	"AdaptSize": func(r *Rand) Policy { return NewAdaptSize(r) },
	"S4LRU":     func(r *Rand) Policy { return NewS4LRU() },
	"SLRU":      func(r *Rand) Policy { return NewSLRU(r) },
	"TinyLFU":   func(r *Rand) Policy { return NewTinyLFU(r) },
	"WTinyLFU":  func(r *Rand) Policy { return NewWTinyLFU(r) },
}

// NewPolicy constructs the named policy, or reports ok=false if name is
// not registered.
func NewPolicy(name string, r *Rand) (p Policy, ok bool) {
	f, ok := registry[name]
	if !ok {
		return nil, false
	}
	return f(r), true
}

// PolicyNames returns every registered policy name, sorted.
func PolicyNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
