package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func trailFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "decisions.jsonl")
}

func TestRecordAndVerifyChain(t *testing.T) {
	path := trailFile(t)

	trail, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	entries := []Entry{
		{RunID: "run-1", Mode: "direct", Domain: "vehicle-risk", JobID: "job-1", Outcome: "reported", Decision: "LOW"},
		{RunID: "run-2", Mode: "shared", Domain: "vehicle-risk", ShareID: "share-1", Outcome: "fatal", Reason: "revoked"},
		{RunID: "run-3", Mode: "direct", Domain: "credit", JobID: "job-9", Outcome: "reported", Decision: "PASS"},
	}
	for _, e := range entries {
		if err := trail.Record(e); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	trail.Close()

	result := VerifyChain(path)
	if !result.Valid {
		t.Fatalf("chain should verify: %+v", result)
	}
	if result.Lines != 3 {
		t.Errorf("lines = %d, want 3", result.Lines)
	}
}

func TestChainSurvivesReopen(t *testing.T) {
	path := trailFile(t)

	trail, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	trail.Record(Entry{RunID: "run-1", Mode: "direct", Domain: "vehicle-risk", Outcome: "reported"})
	trail.Close()

	trail, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	trail.Record(Entry{RunID: "run-2", Mode: "direct", Domain: "vehicle-risk", Outcome: "reported"})
	trail.Close()

	result := VerifyChain(path)
	if !result.Valid || result.Lines != 2 {
		t.Errorf("reopened chain should verify: %+v", result)
	}
}

func TestTamperingDetected(t *testing.T) {
	path := trailFile(t)

	trail, _ := Open(path)
	trail.Record(Entry{RunID: "run-1", Mode: "direct", Domain: "vehicle-risk", Outcome: "reported", Decision: "LOW"})
	trail.Record(Entry{RunID: "run-2", Mode: "direct", Domain: "vehicle-risk", Outcome: "reported", Decision: "HIGH"})
	trail.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	tampered := strings.Replace(string(data), `"decision":"LOW"`, `"decision":"MEDIUM"`, 1)
	if tampered == string(data) {
		t.Fatal("tampering substitution did not apply")
	}
	if err := os.WriteFile(path, []byte(tampered), 0600); err != nil {
		t.Fatal(err)
	}

	result := VerifyChain(path)
	if result.Valid {
		t.Fatal("tampered chain must fail verification")
	}
	if result.ErrorLine != 2 {
		t.Errorf("error line = %d, want 2 (first broken link)", result.ErrorLine)
	}
}

func TestFirstEntryMustReferenceGenesis(t *testing.T) {
	path := trailFile(t)
	line := `{"ts":"2026-08-01T00:00:00Z","run_id":"r","mode":"direct","domain":"credit","outcome":"reported","prev_hash":"sha256:deadbeef"}`
	if err := os.WriteFile(path, []byte(line+"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	result := VerifyChain(path)
	if result.Valid || result.ErrorLine != 1 {
		t.Errorf("expected genesis failure on line 1, got %+v", result)
	}
}
