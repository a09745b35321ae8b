// Package verify orchestrates the policy-gated credential verification
// workflow: fetch a completed proof (owned or shared), resolve and validate
// its governing policy, check freshness, obtain and verify a credential,
// and interpret the disclosed claims into a decision.
package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/attestia/veriproof/internal/claims"
	"github.com/attestia/veriproof/internal/domain"
	"github.com/attestia/veriproof/internal/freshness"
	"github.com/attestia/veriproof/internal/platform"
	"github.com/attestia/veriproof/internal/policyspec"
)

// CredentialFormat is the format requested at issuance.
const CredentialFormat = "jwt"

// Platform is the slice of the proof platform API the orchestrator needs.
// *platform.Client satisfies it; tests use fakes.
type Platform interface {
	GetProveJob(ctx context.Context, jobID string) (*platform.ProveJob, error)
	GetSharedProof(ctx context.Context, shareID string) (*platform.SharedProof, error)
	GetCircuit(ctx context.Context, circuitID string) (*platform.Circuit, error)
	GetPolicy(ctx context.Context, policyID string) (*policyspec.Spec, error)
	ListPolicies(ctx context.Context) ([]policyspec.Spec, error)
	IssueCredential(ctx context.Context, jobID, format string) (*platform.Credential, error)
	VerifyCredential(ctx context.Context, jwt string) (*platform.VerifyResult, error)
}

// Decision is the interpreted outcome for the decision-maker.
type Decision struct {
	Kind   policyspec.DerivationKind `json:"kind"`
	Label  string                    `json:"label"`
	Passed bool                      `json:"passed"`
}

// Report is the result of one successful verification run.
type Report struct {
	RunID        string               `json:"run_id"`
	Mode         string               `json:"mode"` // "direct" or "shared"
	Domain       string               `json:"domain"`
	JobID        string               `json:"job_id,omitempty"`
	ShareID      string               `json:"share_id,omitempty"`
	SharingOrgID string               `json:"sharing_org_id,omitempty"`
	PolicyID     string               `json:"policy_id,omitempty"`
	PolicySource string               `json:"policy_source"` // resolution source, or "unresolved"
	Findings     []string             `json:"findings,omitempty"`
	Freshness    *freshness.Result    `json:"freshness"`
	CredentialID string               `json:"credential_id"`
	Issuer       string               `json:"issuer"`
	Subject      string               `json:"subject,omitempty"`
	Decision     Decision             `json:"decision"`
	Trace        *Trace               `json:"trace"`
	Credential   *platform.Credential `json:"-"`
}

// Orchestrator runs the verification workflow for one decision domain.
// Each run is independent and stateless; nothing is cached across runs.
type Orchestrator struct {
	client  Platform
	profile *domain.Profile
	now     func() time.Time
}

// New creates an orchestrator for the given platform client and domain
// profile.
func New(client Platform, profile *domain.Profile) *Orchestrator {
	return &Orchestrator{client: client, profile: profile, now: time.Now}
}

// RunDirect verifies a prove job owned by the calling organization.
func (o *Orchestrator) RunDirect(ctx context.Context, jobID string) (*Report, error) {
	report := o.newReport("direct")
	report.JobID = jobID
	trace := report.Trace

	step := trace.Begin(StageFetchProof, "Fetch prove job")
	job, err := o.client.GetProveJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != platform.StatusCompleted {
		return nil, &JobNotReadyError{JobID: jobID, Status: job.Status}
	}
	step.Note(fmt.Sprintf("job %s completed (circuit %s)", job.JobID, job.CircuitID))

	step = trace.Begin(StageResolvePolicy, "Resolve policy")
	res := o.resolveDirect(ctx, job, step)
	report.PolicySource = res.Source
	if !res.Resolved {
		report.PolicySource = "unresolved"
	}

	return o.finish(ctx, report, res, job.JobID, job.CompletedAt, job.CreatedAt)
}

// RunShared verifies a proof shared by another organization.
func (o *Orchestrator) RunShared(ctx context.Context, shareID string) (*Report, error) {
	report := o.newReport("shared")
	report.ShareID = shareID
	trace := report.Trace

	step := trace.Begin(StageFetchProof, "Fetch shared proof")
	share, err := o.client.GetSharedProof(ctx, shareID)
	if err != nil {
		return nil, err
	}
	if err := o.checkShare(share); err != nil {
		return nil, err
	}
	report.SharingOrgID = share.SharingOrgID
	step.Note(fmt.Sprintf("shared by %s (circuit %s)", share.SharingOrgID, share.ProveJob.CircuitName))
	if share.Note != "" {
		step.Note("note: " + share.Note)
	}

	step = trace.Begin(StageResolvePolicy, "Resolve policy")
	report.PolicyID = share.ProveJob.PolicyID
	strategies := []resolveStrategy{}
	if share.PolicySpec != nil {
		strategies = append(strategies, embeddedStrategy(share.PolicySpec))
	}
	strategies = append(strategies,
		lookupStrategy(o.client, share.ProveJob.PolicyID),
		listingStrategy(o.client, share.ProveJob.PolicyID),
	)
	res := resolvePolicy(ctx, strategies)
	noteResolution(step, res, share.ProveJob.PolicyID)
	report.PolicySource = res.Source
	if !res.Resolved {
		report.PolicySource = "unresolved"
	}

	return o.finish(ctx, report, res, share.ProveJobID, share.ProveJob.CompletedAt, share.CreatedAt)
}

// checkShare enforces shared-proof preconditions before any policy or
// freshness work: revocation, expiry, and policy linkage.
func (o *Orchestrator) checkShare(share *platform.SharedProof) error {
	if share.RevokedAt != nil {
		return &SharingError{ShareID: share.ShareID, Reason: fmt.Sprintf("revoked at %s", share.RevokedAt.Format(time.RFC3339))}
	}
	if share.ExpiresAt != nil && share.ExpiresAt.Before(o.now()) {
		return &SharingError{ShareID: share.ShareID, Reason: fmt.Sprintf("sharing expired at %s", share.ExpiresAt.Format(time.RFC3339))}
	}
	if share.ProveJob.PolicyID == "" {
		return &SharingError{ShareID: share.ShareID, Reason: "proof not associated with a policy"}
	}
	return nil
}

// resolveDirect resolves the policy for a directly owned job: circuit
// lookup yields the policy id, then the by-id/listing chain runs. A failed
// circuit fetch leaves the policy unresolved (non-fatal).
func (o *Orchestrator) resolveDirect(ctx context.Context, job *platform.ProveJob, step *Step) Resolution {
	circuit, err := o.client.GetCircuit(ctx, job.CircuitID)
	if err != nil {
		step.Note(fmt.Sprintf("circuit %s unavailable: %v", job.CircuitID, err))
		step.Note("policy unresolved; validation will be skipped")
		return Resolution{}
	}

	res := resolvePolicy(ctx, []resolveStrategy{
		lookupStrategy(o.client, circuit.PolicyID),
		listingStrategy(o.client, circuit.PolicyID),
	})
	noteResolution(step, res, circuit.PolicyID)
	return res
}

// finish runs the downstream states shared by both variants: validation
// (when a policy resolved), freshness, issuance, verification, and claim
// interpretation.
func (o *Orchestrator) finish(ctx context.Context, report *Report, res Resolution, jobID string, completedAt *time.Time, createdAt time.Time) (*Report, error) {
	trace := report.Trace
	if res.Resolved {
		report.PolicyID = res.Spec.ID
	}

	if res.Resolved {
		step := trace.Begin(StageValidatePolicy, "Validate policy")
		vr, err := policyspec.Validate(res.Spec, o.profile.Target())
		if err != nil {
			return nil, err
		}
		for _, f := range vr.Findings {
			step.Note(f)
		}
		report.Findings = vr.Findings
	}

	step := trace.Begin(StageCheckFreshness, "Check proof freshness")
	fr, err := freshness.Check(completedAt, createdAt, res.Spec, o.profile.DefaultTTLDays, o.now())
	if err != nil {
		return nil, err
	}
	report.Freshness = fr
	source := "domain default"
	if fr.FromPolicy {
		source = "policy validity"
	}
	step.Note(fmt.Sprintf("proof age %d days, TTL %d days (%s)", fr.AgeDays, fr.TTLDays, source))

	step = trace.Begin(StageIssueCredential, "Issue credential")
	cred, err := o.client.IssueCredential(ctx, jobID, CredentialFormat)
	if err != nil {
		return nil, &CredentialError{Op: "issue", Msg: err.Error()}
	}
	report.CredentialID = cred.CredentialID
	report.Credential = cred
	step.Note(fmt.Sprintf("credential %s issued (%s)", cred.CredentialID, cred.Format))

	step = trace.Begin(StageVerifyCredential, "Verify credential")
	result, err := o.client.VerifyCredential(ctx, cred.JWT)
	if err != nil {
		return nil, &CredentialError{Op: "verify", Msg: err.Error()}
	}
	if !result.Valid {
		return nil, &CredentialError{Op: "verify", Msg: result.Error}
	}
	report.Issuer = result.Issuer
	report.Subject = result.Subject
	step.Note(fmt.Sprintf("valid, issued by %s", result.Issuer))

	step = trace.Begin(StageInterpret, "Interpret claims")
	report.Decision = o.interpret(result.Claims, res.Spec, step)

	return report, nil
}

// interpret decodes the target claim per the profile's derivation kind.
// Never fatal: decoding happens after cryptographic verification succeeded.
func (o *Orchestrator) interpret(claimSet map[string]any, spec *policyspec.Spec, step *Step) Decision {
	p := o.profile
	if p.Kind() == policyspec.KindPassFail {
		passed := claims.ResolvePassFail(claimSet, p.ClaimName, p.FallbackClaim)
		label := "FAIL"
		if passed {
			label = "PASS"
		}
		step.Note(fmt.Sprintf("%s: %s", p.TargetOutput, label))
		return Decision{Kind: policyspec.KindPassFail, Label: label, Passed: passed}
	}

	br := claims.ResolveBand(claimSet, p.ClaimName, p.FallbackClaim, spec, p.TargetOutput, p.DefaultBands)
	step.Note(fmt.Sprintf("%s: %s (index %d, %s table)", p.TargetOutput, br.Label, br.Index, br.Source))
	return Decision{Kind: policyspec.KindBand, Label: br.Label, Passed: true}
}

func noteResolution(step *Step, res Resolution, policyID string) {
	if res.Resolved {
		step.Note(fmt.Sprintf("policy %s resolved via %s", res.Spec.ID, res.Source))
		return
	}
	step.Note(fmt.Sprintf("policy %s unresolved (tried: %v)", policyID, res.Tried))
	step.Note("validation will be skipped; proceeding on cryptographic validity alone")
}

func (o *Orchestrator) newReport(mode string) *Report {
	return &Report{
		RunID:  uuid.NewString(),
		Mode:   mode,
		Domain: o.profile.Name,
		Trace:  &Trace{},
	}
}
