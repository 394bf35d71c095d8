package cachesim

import "testing"

// TestWTinyLFUColdObjectFirstAccessIsDropped replays the capacity-10,
// window=10% scenario: a brand new id's first observed access only sets
// its shared gate's doorkeeper bit, so Admit drops it outright and both
// lookups in the two-line trace miss.
func TestWTinyLFUColdObjectFirstAccessIsDropped(t *testing.T) {
	p := NewWTinyLFU(NewRand(1))
	p.SetSize(10)
	if err := p.SetPar("window", "10"); err != nil {
		t.Fatal(err)
	}
	trace := [][2]uint64{{99, 1}, {99, 1}}
	reqs, hits := replay(p, trace)
	if reqs != 2 || hits != 0 {
		t.Fatalf("got (reqs=%d, hits=%d), want (2, 0)", reqs, hits)
	}
}

func TestWTinyLFUSecondAccessEntersWindow(t *testing.T) {
	p := NewWTinyLFU(NewRand(1))
	p.SetSize(10)
	if err := p.SetPar("window", "10"); err != nil {
		t.Fatal(err)
	}
	trace := [][2]uint64{{99, 1}, {99, 1}, {99, 1}}
	reqs, hits := replay(p, trace)
	if reqs != 3 || hits != 1 {
		t.Fatalf("got (reqs=%d, hits=%d), want (3, 1)", reqs, hits)
	}
	if !p.window.Contains(99) {
		t.Fatal("id 99's second access should have cleared the gate and entered the window")
	}
}

func TestWTinyLFUSetParOnlyRecognizesWindow(t *testing.T) {
	p := NewWTinyLFU(NewRand(1))
	if err := p.SetPar("bogus", "1"); err == nil {
		t.Fatal("expected an error for an unrecognized parameter")
	}
	if err := p.SetPar("window", "notanumber"); err == nil {
		t.Fatal("expected an error for a non-numeric window percentage")
	}
}

func TestWTinyLFUHillClimbingDisabledByDefault(t *testing.T) {
	p := NewWTinyLFU(NewRand(1))
	p.SetSize(100)
	before := p.windowPercent
	for i := 0; i < 10; i++ {
		req := Request{ID: uint64(i), Size: 1}
		if !p.Lookup(req) {
			p.Admit(req)
		}
	}
	if p.windowPercent != before {
		t.Fatalf("windowPercent changed to %v without hill climbing enabled", p.windowPercent)
	}
}
