package cachesim

import "testing"

// TestTinyLFUVictimComparison replays the capacity-1 scenario where a
// five-times-seen incumbent should survive against a cold challenger: id 1
// is admitted into the empty cache, then looked up four more times,
// building up a frequency estimate no single lookup of id 2 can match, so
// id 2's admission attempts never evict it.
func TestTinyLFUVictimComparison(t *testing.T) {
	p := NewTinyLFU(NewRand(1))
	p.SetSize(1)
	trace := [][2]uint64{
		{1, 1}, {1, 1}, {1, 1}, {1, 1}, {1, 1},
		{2, 1}, {2, 1},
	}
	reqs, hits := replay(p, trace)
	if reqs != 7 || hits != 4 {
		t.Fatalf("got (reqs=%d, hits=%d), want (7, 4)", reqs, hits)
	}
	if !p.core.Contains(1) {
		t.Fatal("id 1 should still be resident; its frequency estimate should have kept id 2 out")
	}
}

func TestTinyLFUAdmitsIntoEmptyRoom(t *testing.T) {
	p := NewTinyLFU(NewRand(1))
	p.SetSize(10)
	p.Lookup(Request{ID: 1, Size: 1})
	p.Admit(Request{ID: 1, Size: 1})
	if !p.core.Contains(1) {
		t.Fatal("a miss should be admitted directly when there is room")
	}
}

func TestTinyLFUUnknownParam(t *testing.T) {
	p := NewTinyLFU(NewRand(1))
	if err := p.SetPar("x", "1"); err == nil {
		t.Fatal("expected an error for an unrecognized parameter")
	}
}
