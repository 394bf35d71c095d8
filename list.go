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

// recencyList is the doubly-linked recency list shared by the entire LRU
// family. It is modeled as an arena of nodes addressed by stable integer
// handles rather than as container/list elements reached through Go
// pointers: a slice can reallocate on growth, which would invalidate raw
// pointers into it, but an index into the slice survives reallocation
// untouched. Handle 0 is a permanent sentinel (the "root") whose own
// id/size fields are never read; list.root.next is the MRU end,
// list.root.prev is the LRU end.
type recencyList struct {
	nodes []listNode
	free  []int32
	len   int
}

type listNode struct {
	id         uint64
	size       uint64
	prev, next int32
}

const listRoot int32 = 0

func newRecencyList() *recencyList {
	l := &recencyList{nodes: make([]listNode, 1, 16)}
	l.nodes[listRoot].prev = listRoot
	l.nodes[listRoot].next = listRoot
	return l
}

// Len reports the number of real (non-sentinel) nodes.
func (l *recencyList) Len() int { return l.len }

func (l *recencyList) alloc(id, size uint64) int32 {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[h] = listNode{id: id, size: size}
		return h
	}
	l.nodes = append(l.nodes, listNode{id: id, size: size})
	return int32(len(l.nodes) - 1)
}

func (l *recencyList) linkAfter(at, h int32) {
	a := &l.nodes[at]
	next := a.next
	l.nodes[h].prev = at
	l.nodes[h].next = next
	l.nodes[next].prev = h
	a.next = h
}

func (l *recencyList) unlink(h int32) {
	n := l.nodes[h]
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
}

// PushFront inserts a new (id, size) node at the MRU end and returns its
// handle.
func (l *recencyList) PushFront(id, size uint64) int32 {
	h := l.alloc(id, size)
	l.linkAfter(listRoot, h)
	l.len++
	return h
}

// MoveToFront splices an existing node to the MRU end in O(1).
func (l *recencyList) MoveToFront(h int32) {
	if l.nodes[listRoot].next == h {
		return
	}
	l.unlink(h)
	l.linkAfter(listRoot, h)
}

// Remove unlinks h and returns its arena slot to the free list.
func (l *recencyList) Remove(h int32) {
	l.unlink(h)
	l.nodes[h] = listNode{}
	l.free = append(l.free, h)
	l.len--
}

// Back returns the handle at the LRU end, or ok=false if the list is
// empty.
func (l *recencyList) Back() (h int32, ok bool) {
	if l.len == 0 {
		return 0, false
	}
	return l.nodes[listRoot].prev, true
}

// Value returns the (id, size) pair stored at handle h.
func (l *recencyList) Value(h int32) (id, size uint64) {
	n := l.nodes[h]
	return n.id, n.size
}
