package platform

import (
	"time"

	"github.com/attestia/veriproof/internal/policyspec"
)

// Job lifecycle statuses as reported by the platform.
const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ProveJob is a unit of proof work owned by the calling organization.
type ProveJob struct {
	JobID            string     `json:"jobId"`
	CircuitID        string     `json:"circuitId"`
	Status           string     `json:"status"`
	VerificationMode string     `json:"verificationMode"`
	CompletedAt      *time.Time `json:"completedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Circuit describes the proving circuit a job ran against and links it to
// its governing policy.
type Circuit struct {
	CircuitID string `json:"circuitId"`
	Name      string `json:"name"`
	PolicyID  string `json:"policyId"`
}

// ProveJobRef is the job summary embedded in a shared proof.
type ProveJobRef struct {
	CircuitName string     `json:"circuitName"`
	PolicyID    string     `json:"policyId"`
	CompletedAt *time.Time `json:"completedAt"`
}

// SharedProof is a proof result made visible to a second organization,
// with its own revocation/expiry lifecycle. PolicySpec, when the sharing
// party attached one, saves the receiving side a policy fetch.
type SharedProof struct {
	ShareID      string           `json:"shareId"`
	ProveJobID   string           `json:"proveJobId"`
	SharingOrgID string           `json:"sharingOrgId"`
	CreatedAt    time.Time        `json:"createdAt"`
	Note         string           `json:"note,omitempty"`
	RevokedAt    *time.Time       `json:"revokedAt"`
	ExpiresAt    *time.Time       `json:"expiresAt"`
	PolicySpec   *policyspec.Spec `json:"policySpec,omitempty"`
	ProveJob     ProveJobRef      `json:"proveJob"`
}

// Credential is a signed artifact derived from a completed proof job.
type Credential struct {
	CredentialID string    `json:"credentialId"`
	Format       string    `json:"format"`
	IssuedAt     time.Time `json:"issuedAt"`
	JWT          string    `json:"jwt"`
}

// VerifyResult is the platform's verdict on a credential. Claims values
// are raw: numeric, boolean, or numeric-as-string.
type VerifyResult struct {
	Valid   bool           `json:"valid"`
	Issuer  string         `json:"issuer"`
	Subject string         `json:"subject,omitempty"`
	Error   string         `json:"error,omitempty"`
	Claims  map[string]any `json:"claims"`
}
