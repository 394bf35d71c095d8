package cachesim

// LRUCore is the recency-ordered, byte-accounted container shared by the
// entire LRU family. It owns the recency list and the id->position index
// and enforces the core invariants: the index's keys are exactly the
// slots' ids, current bytes equal the sum of resident slot sizes, and
// Admit never leaves current bytes above capacity. SetSize does not
// evict, so lowering capacity below the resident bytes leaves the core
// over budget until the next Admit makes room.
//
// Every LRU-family policy holds an LRUCore rather than subclassing it:
// variants override admission/hit behavior by calling LRUCore's
// primitives in a different order, not by overriding virtual methods.
type LRUCore struct {
	list     *recencyList
	index    map[uint64]int32
	capacity uint64
	current  uint64
}

// NewLRUCore returns an empty core with zero capacity; call SetSize
// before use.
func NewLRUCore() *LRUCore {
	return &LRUCore{
		list:  newRecencyList(),
		index: make(map[uint64]int32),
	}
}

// SetSize sets the byte budget. It may be called more than once (e.g. by
// a segmented policy re-partitioning capacity across its segments); it
// never evicts on its own.
func (c *LRUCore) SetSize(capacity uint64) { c.capacity = capacity }

// GetSize returns the configured capacity.
func (c *LRUCore) GetSize() uint64 { return c.capacity }

// GetCurrentSize returns the current resident byte count.
func (c *LRUCore) GetCurrentSize() uint64 { return c.current }

// Len returns the number of resident slots.
func (c *LRUCore) Len() int { return c.list.Len() }

// Contains reports whether id is resident, without affecting recency.
func (c *LRUCore) Contains(id uint64) bool {
	_, ok := c.index[id]
	return ok
}

// Touch moves id to the MRU end. The caller must already know id is
// resident (e.g. via Contains).
func (c *LRUCore) Touch(id uint64) {
	c.list.MoveToFront(c.index[id])
}

// Lookup reports whether id is resident and, if so, moves it to the MRU
// end (the behavior every LRU-family policy except FIFO wants on a hit).
func (c *LRUCore) Lookup(id uint64) bool {
	h, ok := c.index[id]
	if !ok {
		return false
	}
	c.list.MoveToFront(h)
	return true
}

// LookupNoTouch reports whether id is resident without adjusting
// recency — FIFO's hit behavior.
func (c *LRUCore) LookupNoTouch(id uint64) bool {
	_, ok := c.index[id]
	return ok
}

// Admit evicts from the LRU end until req fits, then inserts it at the
// MRU end. It is a silent no-op if req is larger than the whole capacity.
// The caller (LRU, or a variant's admission predicate) is responsible for
// only calling Admit on a miss; admitting an id already present is a
// programming error and its behavior is unspecified, per the data model.
func (c *LRUCore) Admit(req Request) {
	if req.Size > c.capacity {
		return
	}
	for c.current+req.Size > c.capacity {
		if _, ok := c.EvictReturn(); !ok {
			break
		}
	}
	h := c.list.PushFront(req.ID, req.Size)
	c.index[req.ID] = h
	c.current += req.Size
}

// Evict removes id's slot if present; otherwise it is a no-op.
func (c *LRUCore) Evict(id uint64) {
	h, ok := c.index[id]
	if !ok {
		return
	}
	_, size := c.list.Value(h)
	c.list.Remove(h)
	delete(c.index, id)
	c.current -= size
}

// PeekBack returns the LRU-end slot's Request without removing it; ok is
// false if the core is empty. Frequency-aware admission (TinyLFU and its
// relatives) uses this to compare a candidate against the incumbent it
// would have to evict before committing to the eviction.
func (c *LRUCore) PeekBack() (Request, bool) {
	h, ok := c.list.Back()
	if !ok {
		return Request{}, false
	}
	id, size := c.list.Value(h)
	return Request{ID: id, Size: size}, true
}

// EvictOne evicts the LRU-end slot, if any.
func (c *LRUCore) EvictOne() {
	c.EvictReturn()
}

// EvictReturn removes the LRU-end slot and returns a freshly materialized
// Request for it; ok is false if the core is empty. Ownership of the
// returned Request passes to the caller — it is either consumed by
// another segment's Admit or simply dropped.
func (c *LRUCore) EvictReturn() (Request, bool) {
	h, ok := c.list.Back()
	if !ok {
		return Request{}, false
	}
	id, size := c.list.Value(h)
	c.list.Remove(h)
	delete(c.index, id)
	c.current -= size
	return Request{ID: id, Size: size}, true
}
