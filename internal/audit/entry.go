package audit

// Entry is one line in the hash-chained JSONL decision trail. All fields
// are scalars (no map[string]any) to guarantee deterministic json.Marshal
// field order for reproducible hashing.
type Entry struct {
	Timestamp string `json:"ts"`
	RunID     string `json:"run_id"`
	Mode      string `json:"mode"` // direct or shared
	Domain    string `json:"domain"`
	JobID     string `json:"job_id,omitempty"`
	ShareID   string `json:"share_id,omitempty"`
	PolicyID  string `json:"policy_id,omitempty"`
	Outcome   string `json:"outcome"` // "reported" or "fatal"
	Decision  string `json:"decision,omitempty"`
	Reason    string `json:"reason,omitempty"`
	PrevHash  string `json:"prev_hash"`
}
