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

// freqTracker pairs a doorkeeper with a counting sketch to implement the
// standard two-stage TinyLFU aging rule: an id's first observed access
// only sets its doorkeeper bit; a second or later access increments the
// counting sketch instead, and both structures reset together once an
// id's sketch estimate (its row minimum) reaches 15 (the largest value a
// 4-bit counter could hold).
// Score combines both into a single comparable estimate.
//
// Factored out of SLRU so the same TinyLFU-admission logic also gates
// WTinyLFU's window entry, rather than living only inside the main
// cache's eviction comparison.
type freqTracker struct {
	sketch *CountMinSketch
	door   *Doorkeeper
}

func newFreqTracker(width uint64, depth int, r *Rand) *freqTracker {
	if width == 0 {
		width = 1
	}
	return &freqTracker{
		sketch: NewCountMinSketch(width, depth, r),
		door:   NewDoorkeeper(width, depth, r),
	}
}

// Score returns a combined frequency estimate for id, used to compare a
// candidate against an eviction victim.
func (t *freqTracker) Score(id uint64) uint64 {
	return t.sketch.Estimate(id) + t.door.Estimate(id)
}

// Contains reports whether id's doorkeeper bit is already set.
func (t *freqTracker) Contains(id uint64) bool {
	return t.door.Estimate(id) != 0
}

// Set flags id in the doorkeeper without touching the counting sketch.
func (t *freqTracker) Set(id uint64) {
	t.door.Update(id)
}

// Bump increments id's counting sketch cells, resetting both structures
// together once id's post-update estimate reaches 15. The caller is responsible for only
// calling this once the doorkeeper bit is already set: sketch updates
// only ever follow a doorkeeper hit.
func (t *freqTracker) Bump(id uint64) {
	if c := t.sketch.Update(id, 1); c >= 15 {
		t.sketch.Reset()
		t.door.Reset()
	}
}
