package cachesim

import "testing"

func TestRecencyListPushFrontOrder(t *testing.T) {
	l := newRecencyList()
	h1 := l.PushFront(1, 1)
	h2 := l.PushFront(2, 1)
	l.PushFront(3, 1)

	back, ok := l.Back()
	if !ok || back != h1 {
		t.Fatalf("Back() = %d, want the first-pushed handle %d", back, h1)
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	id, size := l.Value(h2)
	if id != 2 || size != 1 {
		t.Fatalf("Value(h2) = (%d, %d), want (2, 1)", id, size)
	}
}

func TestRecencyListMoveToFront(t *testing.T) {
	l := newRecencyList()
	h1 := l.PushFront(1, 1)
	h2 := l.PushFront(2, 1)
	l.MoveToFront(h1)

	back, ok := l.Back()
	if !ok || back != h2 {
		t.Fatalf("Back() = %d, want %d (id 2, now the oldest)", back, h2)
	}
}

func TestRecencyListRemoveReclaimsSlot(t *testing.T) {
	l := newRecencyList()
	h1 := l.PushFront(1, 1)
	l.Remove(h1)
	if l.Len() != 0 {
		t.Fatalf("Len() after Remove = %d, want 0", l.Len())
	}
	h2 := l.PushFront(2, 1)
	if h2 != h1 {
		t.Fatalf("PushFront after Remove got handle %d, want the reclaimed handle %d", h2, h1)
	}
}

func TestRecencyListBackEmpty(t *testing.T) {
	l := newRecencyList()
	if _, ok := l.Back(); ok {
		t.Fatal("Back() on an empty list should report ok=false")
	}
}
