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

// SLRU splits its byte budget into a 20% probation segment and an 80%
// protected segment. A miss enters probation; a probation hit promotes
// the object into protected, demoting whatever protected evicts back
// down into probation. A protected hit just touches in place.
//
// SLRU owns a single Count-Min sketch paired with a doorkeeper (a binary
// Count-Min row, set on an id's first observed access and only then
// backed by the counting sketch on subsequent accesses). Contains/Set/
// Bump expose that one tracker so an enclosing W-TinyLFU policy can
// drive its own admission gate and SLRU's AdmitFromWindow victim
// comparison off the exact same frequency data, rather than keeping a
// second, unsynchronized tracker of its own.
type SLRU struct {
	probation *LRUCore
	protected *LRUCore
	freq      *freqTracker
	rand      *Rand
}

// NewSLRU returns an SLRU policy; r seeds the sketch and doorkeeper once
// SetSize is first called.
func NewSLRU(r *Rand) *SLRU {
	return &SLRU{
		probation: NewLRUCore(),
		protected: NewLRUCore(),
		rand:      r,
	}
}

func (p *SLRU) SetSize(capacity uint64) {
	probationSize := capacity / 5
	p.probation.SetSize(probationSize)
	p.protected.SetSize(capacity - probationSize)

	p.freq = newFreqTracker(capacity/4, 4, p.rand)
}

func (p *SLRU) SetPar(name, value string) error { return errUnknownParam("SLRU", name) }

func (p *SLRU) Lookup(req Request) bool {
	if p.protected.Contains(req.ID) {
		p.protected.Touch(req.ID)
		return true
	}
	if p.probation.Contains(req.ID) {
		p.probation.Evict(req.ID)
		p.segmentAdmit(p.protected, p.probation, req)
		return true
	}
	return false
}

// Admit inserts a miss directly into probation.
func (p *SLRU) Admit(req Request) {
	p.probation.Admit(req)
}

// AdmitFromWindow offers req — a candidate evicted from some other
// policy's window, not yet known to SLRU — for admission into probation,
// guarded by the frequency comparison against probation's current
// LRU-end incumbent. It reports whether req was admitted.
func (p *SLRU) AdmitFromWindow(req Request) bool {
	if req.Size > p.probation.GetSize() {
		return false
	}
	if p.probation.GetCurrentSize()+req.Size <= p.probation.GetSize() {
		p.probation.Admit(req)
		return true
	}

	victim, ok := p.probation.PeekBack()
	if !ok {
		return false
	}
	if p.freq.Score(req.ID) < p.freq.Score(victim.ID) {
		return false
	}

	for p.probation.GetCurrentSize()+req.Size > p.probation.GetSize() {
		if _, ok := p.probation.EvictReturn(); !ok {
			break
		}
	}
	p.probation.Admit(req)
	return true
}

// segmentAdmit promotes req into dst, demoting whatever dst evicts into
// spillTo.
func (p *SLRU) segmentAdmit(dst, spillTo *LRUCore, req Request) {
	if req.Size > dst.GetSize() {
		spillTo.Admit(req)
		return
	}
	for dst.GetCurrentSize()+req.Size > dst.GetSize() {
		victim, ok := dst.EvictReturn()
		if !ok {
			break
		}
		spillTo.Admit(victim)
	}
	dst.Admit(req)
}

// Contains reports whether id's doorkeeper bit is already set in the
// shared frequency tracker.
func (p *SLRU) Contains(id uint64) bool {
	return p.freq.Contains(id)
}

// Set flags id in the shared frequency tracker's doorkeeper.
func (p *SLRU) Set(id uint64) {
	p.freq.Set(id)
}

// Bump increments id's row in the shared frequency tracker's counting
// sketch.
func (p *SLRU) Bump(id uint64) {
	p.freq.Bump(id)
}
