package cachesim

import "testing"

func TestThLRUThresholdT1(t *testing.T) {
	p := NewThLRU()
	p.SetSize(10)
	if err := p.SetPar("t", "1"); err != nil {
		t.Fatal(err)
	}
	trace := [][2]uint64{{1, 1}, {1, 1}, {2, 2}, {2, 2}}
	reqs, hits := replay(p, trace)
	// threshold = 2^1 = 2 bytes: id 1 (size 1 < 2) is admitted, id 2
	// (size 2, not < 2) is rejected every time.
	if reqs != 4 || hits != 1 {
		t.Fatalf("got (reqs=%d, hits=%d), want (4, 1)", reqs, hits)
	}
}

func TestThLRUThresholdT0RejectsEverything(t *testing.T) {
	p := NewThLRU()
	p.SetSize(10)
	if err := p.SetPar("t", "0"); err != nil {
		t.Fatal(err)
	}
	trace := [][2]uint64{{1, 1}, {1, 1}}
	_, hits := replay(p, trace)
	if hits != 0 {
		t.Fatalf("got hits=%d, want 0 (threshold of 1 byte admits nothing of size >= 1)", hits)
	}
}
