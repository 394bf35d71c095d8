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

// WTinyLFU composes a small LRU "window" in front of an SLRU "main
// cache". Main's own doorkeeper/sketch doubles as the gate for the
// whole cache: an id's first observed access only sets its doorkeeper
// bit and is dropped (a one-hit wonder never occupies a slot); its
// second and every later access admits the candidate into the window.
// Once the window is full, its LRU-end victim competes for a slot in
// main via main's own frequency-guarded AdmitFromWindow, reading that
// same tracker.
//
// Window share defaults to 1% of capacity, the parameter "window" (a
// percentage, 0-100) overrides it — and only "window" is recognized; any
// other parameter name is reported as unrecognized. An optional hill
// climber can periodically nudge the split toward whichever direction
// recent hit rate improved; it is disabled by default, and its cadence
// is a request-count interval rather than a byte-capacity comparison.
type WTinyLFU struct {
	window *LRUCore
	main   *SLRU

	capacity      uint64
	windowPercent float64

	hillClimbing    bool
	climberInterval uint64
	climberStep     float64
	direction       float64
	reqCount        uint64
	hitCount        uint64
	prevHitRate     float64
}

// NewWTinyLFU returns a WTinyLFU policy with a 1% window share and the
// hill climber disabled.
func NewWTinyLFU(r *Rand) *WTinyLFU {
	return &WTinyLFU{
		window:          NewLRUCore(),
		main:            NewSLRU(r),
		windowPercent:   1,
		climberInterval: 500000,
		climberStep:     1,
		direction:       1,
	}
}

func (p *WTinyLFU) SetSize(capacity uint64) {
	p.capacity = capacity
	p.resize()
}

func (p *WTinyLFU) resize() {
	windowSize := uint64(float64(p.capacity) * p.windowPercent / 100)
	p.window.SetSize(windowSize)
	p.main.SetSize(p.capacity - windowSize)
}

// SetPar recognizes only "window", a percentage in [0, 100]. Any other
// name is reported as unrecognized.
func (p *WTinyLFU) SetPar(name, value string) error {
	if name != "window" {
		return errUnknownParam("WTinyLFU", name)
	}
	pct, err := parseFloatParam(name, value)
	if err != nil {
		return err
	}
	p.windowPercent = pct
	if p.capacity > 0 {
		p.resize()
	}
	return nil
}

// SetHillClimbing enables or disables the periodic window/main resizing.
func (p *WTinyLFU) SetHillClimbing(enabled bool) { p.hillClimbing = enabled }

func (p *WTinyLFU) Lookup(req Request) bool {
	p.reqCount++

	if p.main.Contains(req.ID) {
		p.main.Bump(req.ID)
	}

	hit := p.window.Lookup(req.ID)
	if !hit {
		hit = p.main.Lookup(req)
	}
	if hit {
		p.main.Set(req.ID)
		p.hitCount++
	}
	if p.hillClimbing && p.reqCount >= p.climberInterval {
		p.climb()
	}
	return hit
}

// Admit is only called after a Lookup miss. A candidate seen for the
// first time only flags main's shared doorkeeper bit and is dropped;
// the request will only reach the cache on its second sighting.
func (p *WTinyLFU) Admit(req Request) {
	if !p.main.Contains(req.ID) {
		p.main.Set(req.ID)
		return
	}
	if p.window.GetSize() == 0 {
		p.main.AdmitFromWindow(req)
		return
	}
	if req.Size > p.window.GetSize() {
		return
	}
	for p.window.GetCurrentSize()+req.Size > p.window.GetSize() {
		victim, ok := p.window.EvictReturn()
		if !ok {
			break
		}
		p.main.AdmitFromWindow(victim)
	}
	p.window.Admit(req)
}

// climb compares this interval's hit rate against the previous one: a
// drop reverses the direction, while an improvement or an equal rate
// keeps nudging the window share in the same direction. The share is clamped to [1, 99] so
// neither side ever starves entirely.
func (p *WTinyLFU) climb() {
	hitRate := float64(p.hitCount) / float64(p.reqCount)
	if hitRate < p.prevHitRate {
		p.direction = -p.direction
	}
	p.prevHitRate = hitRate

	p.windowPercent += p.direction * p.climberStep
	if p.windowPercent < 1 {
		p.windowPercent = 1
	} else if p.windowPercent > 99 {
		p.windowPercent = 99
	}
	p.resize()

	p.reqCount = 0
	p.hitCount = 0
}
