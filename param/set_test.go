package param

import "testing"

func TestParseOrdersPairs(t *testing.T) {
	s, err := Parse([]string{"t=1", "c=40"})
	if err != nil {
		t.Fatal(err)
	}
	pairs := s.Pairs()
	if len(pairs) != 2 || pairs[0].Name != "t" || pairs[1].Name != "c" {
		t.Fatalf("got %+v, want t then c in argument order", pairs)
	}
}

func TestParseMalformedToken(t *testing.T) {
	_, err := Parse([]string{"t=1", "bogus"})
	if err == nil {
		t.Fatal("expected an error for a token without '='")
	}
}

func TestUint64Accessor(t *testing.T) {
	s, err := Parse([]string{"t=500000"})
	if err != nil {
		t.Fatal(err)
	}
	v, err := s.Uint64("t")
	if err != nil {
		t.Fatal(err)
	}
	if v != 500000 {
		t.Fatalf("Uint64(\"t\") = %d, want 500000", v)
	}
	if _, err := s.Uint64("missing"); err == nil {
		t.Fatal("expected an error for an unset name")
	}
}

func TestFloat64Accessor(t *testing.T) {
	s, err := Parse([]string{"window=12.5"})
	if err != nil {
		t.Fatal(err)
	}
	v, err := s.Float64("window")
	if err != nil {
		t.Fatal(err)
	}
	if v != 12.5 {
		t.Fatalf("Float64(\"window\") = %v, want 12.5", v)
	}
}

func TestSummary(t *testing.T) {
	s, err := Parse([]string{"t=1", "c=40"})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Summary(); got != "t=1,c=40" {
		t.Fatalf("Summary() = %q, want %q", got, "t=1,c=40")
	}
}

func TestSummaryEmpty(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Summary(); got != "-" {
		t.Fatalf("Summary() on an empty set = %q, want \"-\"", got)
	}
}
