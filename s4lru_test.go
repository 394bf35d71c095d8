package cachesim

import "testing"

func TestS4LRUSplitsCapacityIntoQuarters(t *testing.T) {
	p := NewS4LRU()
	p.SetSize(10) // quarter=2, remainder 2 goes to segment 0
	if got := p.segments[0].GetSize(); got != 4 {
		t.Fatalf("segment 0 size = %d, want 4", got)
	}
	for i := 1; i < 4; i++ {
		if got := p.segments[i].GetSize(); got != 2 {
			t.Fatalf("segment %d size = %d, want 2", i, got)
		}
	}
}

func TestS4LRUPromotesOnHit(t *testing.T) {
	p := NewS4LRU()
	p.SetSize(8) // each segment gets 2
	p.Admit(Request{ID: 1, Size: 1})
	if !p.segments[0].Contains(1) {
		t.Fatal("id 1 should land in segment 0 on first admit")
	}
	if !p.Lookup(Request{ID: 1, Size: 1}) {
		t.Fatal("id 1 should be resident")
	}
	if p.segments[0].Contains(1) || !p.segments[1].Contains(1) {
		t.Fatal("a hit in segment 0 should promote id 1 into segment 1")
	}
}

func TestS4LRUSegmentThreeHitDoesNotPromoteFurther(t *testing.T) {
	p := NewS4LRU()
	p.SetSize(8)
	p.Admit(Request{ID: 1, Size: 1})
	p.Lookup(Request{ID: 1, Size: 1}) // -> segment 1
	p.Lookup(Request{ID: 1, Size: 1}) // -> segment 2
	p.Lookup(Request{ID: 1, Size: 1}) // -> segment 3
	if !p.segments[3].Contains(1) {
		t.Fatal("id 1 should have reached segment 3")
	}
	if !p.Lookup(Request{ID: 1, Size: 1}) {
		t.Fatal("id 1 should still be a hit in segment 3")
	}
	if !p.segments[3].Contains(1) {
		t.Fatal("a segment-3 hit should leave id 1 in segment 3")
	}
}

func TestS4LRUEvictRemovesFromEverySegment(t *testing.T) {
	p := NewS4LRU()
	p.SetSize(8)
	p.Admit(Request{ID: 1, Size: 1})
	p.Evict(1)
	if p.Lookup(Request{ID: 1, Size: 1}) {
		t.Fatal("id 1 should be gone from every segment after Evict")
	}
}
