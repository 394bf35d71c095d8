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

// TinyLFU is plain LRU admission guarded by an approximate frequency
// comparison: a miss only displaces the current LRU-end victim when the
// candidate's own Count-Min estimate exceeds the victim's, so a
// once-popular-now-cold object can't keep evicting genuinely hot ones.
// Admission proceeds once the eviction loop has actually freed enough
// room, not merely because some attempt in the loop succeeded.
type TinyLFU struct {
	core   *LRUCore
	sketch *CountMinSketch
	rand   *Rand

	requestCount   uint64
	resetThreshold uint64
}

// NewTinyLFU returns a TinyLFU policy; r seeds the frequency sketch once
// SetSize is first called.
func NewTinyLFU(r *Rand) *TinyLFU {
	return &TinyLFU{core: NewLRUCore(), rand: r}
}

// SetSize configures the byte budget and (re)builds the frequency sketch
// sized to it; resetThreshold is ten times the sketch width (capacity
// rounded up to a prime) in requests, a standard TinyLFU aging cadence.
func (p *TinyLFU) SetSize(capacity uint64) {
	p.core.SetSize(capacity)
	width := capacity
	if width == 0 {
		width = 1
	}
	p.sketch = NewCountMinSketch(width, 4, p.rand)
	p.resetThreshold = 10 * p.sketch.Width()
	if p.resetThreshold == 0 {
		p.resetThreshold = 10
	}
}

func (p *TinyLFU) SetPar(name, value string) error { return errUnknownParam("TinyLFU", name) }

func (p *TinyLFU) Lookup(req Request) bool {
	hit := p.core.Lookup(req.ID)
	p.sketch.Update(req.ID, 1)
	p.requestCount++
	if p.requestCount >= p.resetThreshold {
		p.sketch.Reset()
		p.requestCount = 0
	}
	return hit
}

func (p *TinyLFU) Admit(req Request) {
	if req.Size > p.core.GetSize() {
		return
	}
	if p.core.GetCurrentSize()+req.Size <= p.core.GetSize() {
		p.core.Admit(req)
		return
	}

	victim, ok := p.core.PeekBack()
	if !ok {
		p.core.Admit(req)
		return
	}
	if p.sketch.Estimate(req.ID) <= p.sketch.Estimate(victim.ID) {
		return
	}

	cleared := false
	for p.core.GetCurrentSize()+req.Size > p.core.GetSize() {
		victim, ok := p.core.PeekBack()
		if !ok {
			break
		}
		if p.sketch.Estimate(req.ID) <= p.sketch.Estimate(victim.ID) {
			return
		}
		p.core.EvictReturn()
		cleared = true
	}
	if cleared {
		p.core.Admit(req)
	}
}
