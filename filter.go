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

// Filter admits an object once it has been looked up at least n times
// (default 2): every lookup, hit or miss, increments a per-id counter
// before the lookup itself runs. The nth lookup is still a miss, but its
// Admit sees the counter at n and stores the object, so the (n+1)th
// lookup finds it resident.
// Hits behave exactly like plain LRU (promote to MRU).
type Filter struct {
	core   *LRUCore
	counts map[uint64]uint64
	n      uint64
}

// NewFilter returns a Filter policy with the default threshold n=2.
func NewFilter() *Filter {
	return &Filter{
		core:   NewLRUCore(),
		counts: make(map[uint64]uint64),
		n:      2,
	}
}

func (p *Filter) SetSize(capacity uint64) { p.core.SetSize(capacity) }

func (p *Filter) SetPar(name, value string) error {
	if name != "n" {
		return errUnknownParam("Filter", name)
	}
	n, err := parseUintParam(name, value)
	if err != nil {
		return err
	}
	p.n = n
	return nil
}

func (p *Filter) Lookup(req Request) bool {
	p.counts[req.ID]++
	return p.core.Lookup(req.ID)
}

func (p *Filter) Admit(req Request) {
	if p.counts[req.ID] < p.n {
		return
	}
	p.core.Admit(req)
}
