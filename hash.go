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

// mersennePrime is the modulus for the pairwise-independent hash family
// used by every sketch row. It is large enough that (a*x + b) does not
// wrap a uint64 once x has been folded into [0, mersennePrime) first, and
// is a standard choice (2^31 - 1) for Carter-Wegman style universal
// hashing of 32/64-bit keys.
const mersennePrime = (1 << 31) - 1

// pairwiseHash is h(x) = ((a*x + b) mod p) mod width, one instance per
// sketch row. a and b are drawn once, at sketch construction, from the
// shared seeded Rand; width is the sketch's (prime) width.
type pairwiseHash struct {
	a, b  uint64
	width uint64
}

// newPairwiseHash draws fresh (a, b) parameters from r. a is forced
// nonzero so the hash doesn't degenerate into a constant function of b.
func newPairwiseHash(r *Rand, width uint64) pairwiseHash {
	a := uint64(r.Uint32())%(mersennePrime-1) + 1
	b := uint64(r.Uint32()) % mersennePrime
	return pairwiseHash{a: a, b: b, width: width}
}

func (h pairwiseHash) index(id uint64) uint64 {
	x := id % mersennePrime
	return ((h.a*x + h.b) % mersennePrime) % h.width
}
