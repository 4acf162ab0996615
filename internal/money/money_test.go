package money

import (
	"encoding/json"
	"testing"
)

func TestParseAndString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"137.50", "137.5"},
		{"0", "0"},
		{"-50", "-50"},
		{"0.005", "0.005"},
	}
	for _, tc := range cases {
		m, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if m.String() != tc.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tc.in, m.String(), tc.want)
		}
	}

	if _, err := Parse("not-a-number"); err == nil {
		t.Error("Parse accepted garbage input")
	}
}

func TestExactArithmetic(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, the classic binary float failure.
	got := MustParse("0.1").Add(MustParse("0.2"))
	if !got.Equal(MustParse("0.3")) {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", got)
	}

	// Percent math stays exact: 8% of 450 is 36.
	pct := MustParse("450").Percent(MustParse("8").Decimal())
	if !pct.Equal(FromInt(36)) {
		t.Errorf("8%% of 450 = %s, want 36", pct)
	}
}

func TestEqualIgnoresExponent(t *testing.T) {
	if !MustParse("1.50").Equal(MustParse("1.5")) {
		t.Error("1.50 != 1.5")
	}
}

func TestMulFraction(t *testing.T) {
	// Weekly-to-monthly: 120 * 52/12 = 520.
	got := FromInt(120).MulFraction(52, 12)
	if !got.Equal(FromInt(520)) {
		t.Errorf("120 * 52/12 = %s, want 520", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	m := MustParse("15.00")
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"15"` {
		t.Errorf("marshal = %s, want \"15\"", data)
	}

	var back Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(m) {
		t.Errorf("round trip = %s, want %s", back, m)
	}

	// Bare numbers decode too.
	if err := json.Unmarshal([]byte("12.34"), &back); err != nil {
		t.Fatalf("unmarshal bare: %v", err)
	}
	if !back.Equal(MustParse("12.34")) {
		t.Errorf("bare decode = %s, want 12.34", back)
	}
}

func TestScanValue(t *testing.T) {
	m := MustParse("99.99")
	v, err := m.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var back Money
	if err := back.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !back.Equal(m) {
		t.Errorf("scan round trip = %s, want %s", back, m)
	}

	if err := back.Scan(3.14); err == nil {
		t.Error("Scan accepted a float64")
	}
}

func TestSum(t *testing.T) {
	got := Sum(MustParse("1.10"), MustParse("2.20"), MustParse("-0.30"))
	if !got.Equal(FromInt(3)) {
		t.Errorf("sum = %s, want 3", got)
	}
	if !Sum().IsZero() {
		t.Error("empty sum is not zero")
	}
}
