package claims

import (
	"testing"

	"github.com/attestia/veriproof/internal/policyspec"
)

var defaultBands = []string{"HIGH", "MEDIUM", "LOW"}

func bandSpec(labels ...string) *policyspec.Spec {
	bands := make([]policyspec.Band, len(labels))
	for i, l := range labels {
		bands[i] = policyspec.Band{Label: l}
	}
	return &policyspec.Spec{
		Outputs: []policyspec.Output{
			{Name: "risk_band", Derive: policyspec.Derivation{Kind: policyspec.KindBand, Bands: bands}},
		},
	}
}

func TestResolveBandFromPolicyTable(t *testing.T) {
	spec := bandSpec("SEVERE", "ELEVATED", "CALM")

	r := ResolveBand(map[string]any{"risk_band": float64(2)}, "risk_band", "result", spec, "risk_band", defaultBands)
	if r.Label != "CALM" || r.Source != "policy" {
		t.Errorf("got %q from %s, want CALM from policy", r.Label, r.Source)
	}
}

func TestResolveBandFallsBackToDefaultTable(t *testing.T) {
	r := ResolveBand(map[string]any{"risk_band": float64(1)}, "risk_band", "result", nil, "risk_band", defaultBands)
	if r.Label != "MEDIUM" || r.Source != "default" {
		t.Errorf("got %q from %s, want MEDIUM from default", r.Label, r.Source)
	}
}

func TestResolveBandSynthesizesOutOfRange(t *testing.T) {
	spec := bandSpec("HIGH", "MEDIUM", "LOW")

	r := ResolveBand(map[string]any{"risk_band": float64(7)}, "risk_band", "result", spec, "risk_band", defaultBands)
	if r.Label != "Band 7" || r.Source != "synthesized" {
		t.Errorf("got %q from %s, want synthesized Band 7", r.Label, r.Source)
	}
}

func TestResolveBandSecondaryClaimName(t *testing.T) {
	r := ResolveBand(map[string]any{"result": float64(0)}, "risk_band", "result", nil, "risk_band", defaultBands)
	if r.Label != "HIGH" {
		t.Errorf("got %q, want HIGH via fallback claim name", r.Label)
	}
}

func TestResolveBandValueCoercion(t *testing.T) {
	cases := []struct {
		name  string
		value any
		index int
	}{
		{"float", float64(2), 2},
		{"int", 1, 1},
		{"numeric string", "2", 2},
		{"float string", "1.0", 1},
		{"garbage string", "not-a-number", 0},
		{"bool", true, 0},
		{"nil", nil, 0},
	}

	for _, c := range cases {
		r := ResolveBand(map[string]any{"risk_band": c.value}, "risk_band", "", nil, "risk_band", defaultBands)
		if r.Index != c.index {
			t.Errorf("%s: index = %d, want %d", c.name, r.Index, c.index)
		}
	}
}

func TestResolvePassFail(t *testing.T) {
	positives := []any{float64(1), 1, int64(1), true, "1"}
	for _, v := range positives {
		if !ResolvePassFail(map[string]any{"approved": v}, "approved", "result") {
			t.Errorf("%v (%T) should resolve positive", v, v)
		}
	}

	negatives := []any{float64(0), 0, false, "0", "yes", "true", nil, 2}
	for _, v := range negatives {
		if ResolvePassFail(map[string]any{"approved": v}, "approved", "result") {
			t.Errorf("%v (%T) should resolve negative", v, v)
		}
	}

	if ResolvePassFail(map[string]any{}, "approved", "result") {
		t.Error("absent claim should resolve negative")
	}

	if !ResolvePassFail(map[string]any{"result": true}, "approved", "result") {
		t.Error("fallback claim name should be honored")
	}
}
