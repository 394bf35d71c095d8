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

// Package cachesim implements the cache admission/eviction policy engines
// used to compare recency-, frequency-, size-, and sketch-based policies on
// a trace of object requests. A cachesim.Policy is given a fixed byte
// budget and told, one request at a time, whether each request hit or
// should be admitted; it does not read traces or print results itself —
// see cmd/cachesim for that.
package cachesim

// Request is one line of a trace: an object identified by ID, with Size
// bytes. Two requests name the same object iff their IDs match; Size is
// re-read at every admission, so a request that changes an object's size
// is treated as if it were admitting a brand new object.
type Request struct {
	ID   uint64
	Size uint64
}
