package model

import "testing"

func TestPairIDRoundTrip(t *testing.T) {
	cases := []PairID{
		{Parent: "Checking", Name: "DI"},
		{Parent: "", Name: "Orphan"},
		{Parent: "Food", Name: "Eating.Out"}, // dots in the child name survive
	}
	for _, id := range cases {
		back, err := ParsePairID(id.RawValue())
		if err != nil {
			t.Fatalf("ParsePairID(%q): %v", id.RawValue(), err)
		}
		if back != id {
			t.Errorf("round trip %q = %+v, want %+v", id.RawValue(), back, id)
		}
	}
}

func TestParsePairIDRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"nodot", "Parent."} {
		if _, err := ParsePairID(raw); err == nil {
			t.Errorf("ParsePairID(%q) accepted malformed input", raw)
		}
	}
}

func TestPairIDCaseSensitive(t *testing.T) {
	a := NewPairID("Checking", "di")
	b := NewPairID("Checking", "DI")
	if a == b {
		t.Error("pair identity compared case-insensitively")
	}
}

func TestPairIDString(t *testing.T) {
	if got := NewPairID("", "Root").String(); got != "Root" {
		t.Errorf("root display = %q, want %q", got, "Root")
	}
	if got := NewPairID("Checking", "DI").String(); got != "Checking.DI" {
		t.Errorf("child display = %q, want %q", got, "Checking.DI")
	}
}
