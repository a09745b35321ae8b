package verify

// Stage tags the workflow states a run actually executed. The user-facing
// step numbers come from enumerating the recorded steps, so optional stages
// (policy validation) never leave gaps in the numbering.
type Stage string

const (
	StageFetchProof       Stage = "fetch_proof"
	StageResolvePolicy    Stage = "resolve_policy"
	StageValidatePolicy   Stage = "validate_policy"
	StageCheckFreshness   Stage = "check_freshness"
	StageIssueCredential  Stage = "issue_credential"
	StageVerifyCredential Stage = "verify_credential"
	StageInterpret        Stage = "interpret"
)

// Step is one executed stage with its display lines.
type Step struct {
	Stage   Stage    `json:"stage"`
	Title   string   `json:"title"`
	Details []string `json:"details,omitempty"`
}

// Trace is the ordered list of executed steps for one run.
type Trace struct {
	Steps []Step `json:"steps"`
}

// Begin appends a new step and returns it for detail accumulation.
func (t *Trace) Begin(stage Stage, title string) *Step {
	t.Steps = append(t.Steps, Step{Stage: stage, Title: title})
	return &t.Steps[len(t.Steps)-1]
}

// Note appends a detail line to the step.
func (s *Step) Note(line string) {
	s.Details = append(s.Details, line)
}
