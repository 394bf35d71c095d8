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

import "math/rand"

// Rand is the single pseudo-random source threaded through policies and
// sketches that need randomness (ExpLRU/AdaptSize admission rolls, CM/
// doorkeeper hash parameter generation). Per the design notes, randomness
// is scoped to an explicit, seeded source rather than package-level state,
// so two simulations constructed with the same seed reproduce identical
// (reqs, hits) totals.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded with seed. The same seed always produces
// the same sequence of draws.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a pseudo-random number in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Uint32 returns a pseudo-random 32-bit value, used for CM/doorkeeper hash
// parameters.
func (r *Rand) Uint32() uint32 {
	return r.r.Uint32()
}

// Bernoulli reports true with probability p (clamped to [0, 1]).
func (r *Rand) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}
