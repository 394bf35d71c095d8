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

// S4LRU partitions its byte budget into four equal-sized LRU segments.
// A miss is admitted into segment 0; each hit promotes its object one
// segment up (capped at segment 3), demoting whatever the destination
// segment evicts to make room down into the next segment, cascading as
// far as segment 0, whose overflow is simply dropped.
type S4LRU struct {
	segments [4]*LRUCore
}

// NewS4LRU returns an S4LRU policy with four empty segments.
func NewS4LRU() *S4LRU {
	s := &S4LRU{}
	for i := range s.segments {
		s.segments[i] = NewLRUCore()
	}
	return s
}

// SetSize splits capacity into four quarters, with any remainder from
// integer division going to segment 0.
func (p *S4LRU) SetSize(capacity uint64) {
	quarter := capacity / 4
	p.segments[0].SetSize(quarter + capacity%4)
	for i := 1; i < 4; i++ {
		p.segments[i].SetSize(quarter)
	}
}

func (p *S4LRU) SetPar(name, value string) error { return errUnknownParam("S4LRU", name) }

// Lookup probes segments 0..3 in order. A hit in segment i promotes the
// object into segment i+1 (segment 3 hits just touch in place).
func (p *S4LRU) Lookup(req Request) bool {
	for i := 0; i < 4; i++ {
		if !p.segments[i].Contains(req.ID) {
			continue
		}
		if i == 3 {
			p.segments[3].Touch(req.ID)
			return true
		}
		p.segments[i].Evict(req.ID)
		p.segmentAdmit(i+1, req)
		return true
	}
	return false
}

// Admit inserts a miss into segment 0.
func (p *S4LRU) Admit(req Request) {
	p.segmentAdmit(0, req)
}

// segmentAdmit inserts req into segment idx, cascading whatever that
// segment evicts down into segment idx-1, and so on; segment 0's
// overflow is discarded entirely.
func (p *S4LRU) segmentAdmit(idx int, req Request) {
	seg := p.segments[idx]
	if req.Size > seg.GetSize() {
		return
	}
	for seg.GetCurrentSize()+req.Size > seg.GetSize() {
		victim, ok := seg.EvictReturn()
		if !ok {
			break
		}
		if idx > 0 {
			p.segmentAdmit(idx-1, victim)
		}
	}
	seg.Admit(req)
}

// Evict removes id from whichever segment holds it, if any.
func (p *S4LRU) Evict(id uint64) {
	for i := range p.segments {
		p.segments[i].Evict(id)
	}
}
