package policyspec

import (
	"encoding/json"
	"testing"
)

// Wire-format check against the platform's policy document shape.
func TestSpecDecodesPlatformJSON(t *testing.T) {
	doc := `{
		"id": "policy-risk-1",
		"version": "0.4.2",
		"metadata": {"title": "Vehicle Usage Risk"},
		"subject": {"type": "vehicle"},
		"outputs": [
			{"name": "risk_band", "type": "numeric",
			 "derive": {"kind": "BAND", "bands": [{"label": "HIGH"}, {"label": "MEDIUM"}, {"label": "LOW"}]}},
			{"name": "score_ok", "type": "boolean", "derive": {"kind": "PASS_FAIL"}}
		],
		"disclosure": {"exposeClaims": ["risk_band"]},
		"validity": {"ttl": "P90D"}
	}`

	var spec Spec
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if spec.ID != "policy-risk-1" || spec.Metadata.Title != "Vehicle Usage Risk" {
		t.Errorf("header fields: %+v", spec)
	}
	if spec.Subject.Type != "vehicle" {
		t.Errorf("subject = %q", spec.Subject.Type)
	}

	out := spec.FindOutput("risk_band")
	if out == nil || out.Derive.Kind != KindBand {
		t.Fatalf("risk_band output: %+v", out)
	}
	labels := spec.BandLabels("risk_band")
	if len(labels) != 3 || labels[0] != "HIGH" || labels[2] != "LOW" {
		t.Errorf("band labels = %v", labels)
	}

	if pf := spec.FindOutput("score_ok"); pf == nil || pf.Derive.Kind != KindPassFail || len(pf.Derive.Bands) != 0 {
		t.Errorf("pass/fail output: %+v", pf)
	}

	if !spec.Discloses("risk_band") || spec.Discloses("score_ok") {
		t.Error("disclosure membership wrong")
	}
	if spec.FindOutput("absent") != nil {
		t.Error("FindOutput must return nil for unknown names")
	}
	if spec.BandLabels("score_ok") != nil {
		t.Error("BandLabels must be nil for outputs without a table")
	}
}
