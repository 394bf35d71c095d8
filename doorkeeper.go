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

// Doorkeeper is the binary-valued Count-Min variant TinyLFU uses to filter
// one-hit wonders before they reach the frequency sketch proper: Update
// sets cells to 1 (so repeated updates of the same id are idempotent) and
// Estimate returns the row-wise minimum, which is therefore always 0 or 1.
type Doorkeeper struct {
	sketch *CountMinSketch
}

// NewDoorkeeper builds a doorkeeper with the given target width and depth.
func NewDoorkeeper(targetWidth uint64, depth int, r *Rand) *Doorkeeper {
	return &Doorkeeper{sketch: NewCountMinSketch(targetWidth, depth, r)}
}

// Update sets id's cells to 1. Calling it again for the same id is a
// no-op: cells are capped at 1, not incremented.
func (d *Doorkeeper) Update(id uint64) {
	for i, h := range d.sketch.hash {
		idx := h.index(id)
		d.sketch.rows[i][idx] = 1
	}
}

// Estimate returns 1 if id has been Update-d (modulo hash collisions with
// other ids across every row), 0 otherwise.
func (d *Doorkeeper) Estimate(id uint64) uint64 {
	return d.sketch.Estimate(id)
}

// Reset clears every cell back to 0.
func (d *Doorkeeper) Reset() {
	d.sketch.Reset()
}
