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

// FIFO reuses the LRU core's eviction order (always the list's tail) but
// never promotes on a hit, so the tail stays in pure insertion order — a
// first-in-first-out queue built on the same recency list LRU uses.
type FIFO struct {
	core *LRUCore
}

// NewFIFO returns an empty FIFO policy.
func NewFIFO() *FIFO {
	return &FIFO{core: NewLRUCore()}
}

func (p *FIFO) SetSize(capacity uint64)         { p.core.SetSize(capacity) }
func (p *FIFO) SetPar(name, value string) error { return errUnknownParam("FIFO", name) }

func (p *FIFO) Lookup(req Request) bool { return p.core.LookupNoTouch(req.ID) }
func (p *FIFO) Admit(req Request)       { p.core.Admit(req) }
