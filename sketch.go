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

// CountMinSketch is an approximate frequency counter: depth independent
// rows of width counters, each row addressed by its own pairwise hash.
// Update adds an amount to one cell per row; Estimate returns the
// row-wise minimum, which is always >= the true count (the sketch only
// over-counts, via hash collisions, never under-counts). Counters are
// plain uint64s rather than packed nibbles, trading memory density for a
// simpler, allocation-free row layout.
type CountMinSketch struct {
	rows  [][]uint64
	hash  []pairwiseHash
	width uint64
	depth int
}

// NewCountMinSketch builds a sketch with the requested depth and a width
// rounded up to the nearest prime >= targetWidth, seeded from r.
func NewCountMinSketch(targetWidth uint64, depth int, r *Rand) *CountMinSketch {
	if targetWidth == 0 {
		panic("cachesim: CountMinSketch width must be positive")
	}
	if depth <= 0 {
		panic("cachesim: CountMinSketch depth must be positive")
	}
	width := nextPrime(targetWidth)
	s := &CountMinSketch{
		rows:  make([][]uint64, depth),
		hash:  make([]pairwiseHash, depth),
		width: width,
		depth: depth,
	}
	for i := 0; i < depth; i++ {
		s.rows[i] = make([]uint64, width)
		s.hash[i] = newPairwiseHash(r, width)
	}
	return s
}

// Update adds delta to id's counter in every row and returns the new
// point estimate (the post-update row minimum).
func (s *CountMinSketch) Update(id uint64, delta uint64) uint64 {
	min := uint64(0)
	for i := 0; i < s.depth; i++ {
		idx := s.hash[i].index(id)
		s.rows[i][idx] += delta
		if i == 0 || s.rows[i][idx] < min {
			min = s.rows[i][idx]
		}
	}
	return min
}

// Estimate returns the row-wise minimum counter value for id, an upper
// bound on id's true count.
func (s *CountMinSketch) Estimate(id uint64) uint64 {
	min := uint64(0)
	for i := 0; i < s.depth; i++ {
		v := s.rows[i][s.hash[i].index(id)]
		if i == 0 || v < min {
			min = v
		}
	}
	return min
}

// Reset zeroes every counter.
func (s *CountMinSketch) Reset() {
	for i := range s.rows {
		row := s.rows[i]
		for j := range row {
			row[j] = 0
		}
	}
}

// Width reports the sketch's (prime-rounded) row width.
func (s *CountMinSketch) Width() uint64 { return s.width }
