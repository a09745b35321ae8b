package verify

import "fmt"

// JobNotReadyError is returned when a direct prove job is not in the
// completed status. The observed status is part of the message contract.
type JobNotReadyError struct {
	JobID  string
	Status string
}

func (e *JobNotReadyError) Error() string {
	return fmt.Sprintf("prove job %s is not ready: status is %q, need %q", e.JobID, e.Status, "completed")
}

// SharingError is a fatal shared-proof precondition failure: the share was
// revoked, has passed its expiry, or carries no policy linkage.
type SharingError struct {
	ShareID string
	Reason  string
}

func (e *SharingError) Error() string {
	return fmt.Sprintf("shared proof %s: %s", e.ShareID, e.Reason)
}

// CredentialError is a fatal issuance or verification failure. Msg echoes
// the external error verbatim.
type CredentialError struct {
	Op  string // "issue" or "verify"
	Msg string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credential %s failed: %s", e.Op, e.Msg)
}
