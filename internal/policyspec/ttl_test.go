package policyspec

import "testing"

func TestParseTTLDays(t *testing.T) {
	cases := []struct {
		in   string
		days int
		ok   bool
	}{
		{"P90D", 90, true},
		{"p90d", 90, true},
		{"P30D", 30, true},
		{"90d", 90, true},
		{"90D", 90, true},
		{"7d", 7, true},
		{"P0D", 0, true},
		{"", 0, false},
		{"90", 0, false},
		{"P90", 0, false},
		{"PT90D", 0, false},
		{"ninety days", 0, false},
		{"P-5D", 0, false},
	}

	for _, c := range cases {
		days, ok := ParseTTLDays(c.in)
		if ok != c.ok || days != c.days {
			t.Errorf("ParseTTLDays(%q) = (%d, %v), want (%d, %v)", c.in, days, ok, c.days, c.ok)
		}
	}
}

func TestTTLDaysFallback(t *testing.T) {
	if got := TTLDays(nil, 90); got != 90 {
		t.Errorf("nil spec: got %d, want 90", got)
	}

	spec := &Spec{}
	if got := TTLDays(spec, 30); got != 30 {
		t.Errorf("no validity: got %d, want 30", got)
	}

	spec.Validity = &Validity{TTL: "garbage"}
	if got := TTLDays(spec, 30); got != 30 {
		t.Errorf("unparseable TTL: got %d, want 30", got)
	}

	spec.Validity = &Validity{TTL: "P14D"}
	if got := TTLDays(spec, 30); got != 14 {
		t.Errorf("policy TTL: got %d, want 14", got)
	}
}
