package cachesim

import "testing"

func TestFilterAdmitsAfterNLookups(t *testing.T) {
	p := NewFilter()
	p.SetSize(10)
	trace := [][2]uint64{
		{1, 1}, {1, 1}, {1, 1},
		{2, 1}, {2, 1}, {2, 1},
	}
	reqs, hits := replay(p, trace)
	if reqs != 6 || hits != 2 {
		t.Fatalf("got (reqs=%d, hits=%d), want (6, 2)", reqs, hits)
	}
}

func TestFilterCustomThreshold(t *testing.T) {
	p := NewFilter()
	p.SetSize(10)
	if err := p.SetPar("n", "1"); err != nil {
		t.Fatal(err)
	}
	p.Lookup(Request{ID: 1, Size: 1})
	p.Admit(Request{ID: 1, Size: 1}) // counts[1] == 1 >= n, admitted now
	if !p.Lookup(Request{ID: 1, Size: 1}) {
		t.Fatal("id 1 should already be resident on its second lookup")
	}
}
