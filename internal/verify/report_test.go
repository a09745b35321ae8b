package verify

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleReport() *Report {
	r := &Report{
		RunID:        "run-1",
		Mode:         "direct",
		Domain:       "vehicle-risk",
		JobID:        "job-1",
		PolicySource: "lookup",
		Issuer:       "did:web:platform.example",
		Decision:     Decision{Kind: "BAND", Label: "LOW", Passed: true},
		Trace:        &Trace{},
	}
	r.Trace.Begin(StageFetchProof, "Fetch prove job").Note("job job-1 completed (circuit circuit-1)")
	r.Trace.Begin(StageCheckFreshness, "Check proof freshness")
	r.Trace.Begin(StageInterpret, "Interpret claims")
	return r
}

// Step numbers come from enumerating executed steps, so a run that skipped
// validation still renders a gap-free 1..N sequence.
func TestFormatTextNumbersExecutedSteps(t *testing.T) {
	out := FormatText(sampleReport(), false)

	for _, want := range []string{"[1/3] Fetch prove job", "[2/3] Check proof freshness", "[3/3] Interpret claims"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[4/") {
		t.Errorf("unexpected fourth step:\n%s", out)
	}
	if !strings.Contains(out, "Decision: LOW") {
		t.Errorf("decision line missing:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("color disabled but ANSI codes present:\n%s", out)
	}
}

func TestFormatJSONRoundTrips(t *testing.T) {
	out, err := FormatJSON(sampleReport())
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["mode"] != "direct" {
		t.Errorf("mode = %v", decoded["mode"])
	}
	trace, ok := decoded["trace"].(map[string]any)
	if !ok {
		t.Fatal("trace missing")
	}
	if steps := trace["steps"].([]any); len(steps) != 3 {
		t.Errorf("steps = %d, want 3", len(steps))
	}
}
