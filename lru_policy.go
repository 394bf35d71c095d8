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

// LRU is a plain least-recently-used policy: every hit moves the object
// to the MRU end, and admission is unconditional (subject only to
// LRUCore's own oversized-object check).
type LRU struct {
	core *LRUCore
}

// NewLRU returns an empty LRU policy.
func NewLRU() *LRU {
	return &LRU{core: NewLRUCore()}
}

func (p *LRU) SetSize(capacity uint64)         { p.core.SetSize(capacity) }
func (p *LRU) SetPar(name, value string) error { return errUnknownParam("LRU", name) }

func (p *LRU) Lookup(req Request) bool { return p.core.Lookup(req.ID) }
func (p *LRU) Admit(req Request)       { p.core.Admit(req) }
