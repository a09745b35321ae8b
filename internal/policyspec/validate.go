package policyspec

import "fmt"

// AcceptedVersionPrefix is the policy version line the verifier currently
// trusts. Pre-release policies only; bumped when the platform stabilizes.
const AcceptedVersionPrefix = "0."

// Target parameterizes validation: which output the verifier's decision
// depends on, how that output must be derived, and what subject the policy
// must be about.
type Target struct {
	SubjectType string
	Output      string
	Kind        DerivationKind
}

// Report is the outcome of a successful validation: ordered human-readable
// findings plus the facts downstream stages need.
type Report struct {
	Findings   []string
	BandLabels []string
	Disclosed  bool
}

// RejectedError is a fatal policy rejection. A rejected policy cannot
// become acceptable within one run, so callers must not retry.
type RejectedError struct {
	PolicyID string
	Reason   string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("policy %s rejected: %s", e.PolicyID, e.Reason)
}

// Validate checks that a fetched policy spec is acceptable for the decision
// described by target. Checks run in a fixed order; the first fatal
// condition aborts with a RejectedError. Non-fatal observations are
// appended to the report as findings.
func Validate(spec *Spec, target Target) (*Report, error) {
	report := &Report{}

	// 1. Version: only the accepted pre-release line is trusted.
	if !spec.HasVersionPrefix(AcceptedVersionPrefix) {
		return nil, &RejectedError{
			PolicyID: spec.ID,
			Reason:   fmt.Sprintf("version %s outside accepted %sx line", spec.Version, AcceptedVersionPrefix),
		}
	}
	report.add("version %s accepted", spec.Version)

	// 2. Subject type must match the decision domain.
	if spec.Subject.Type != target.SubjectType {
		return nil, &RejectedError{
			PolicyID: spec.ID,
			Reason:   fmt.Sprintf("subject type %q, expected %q", spec.Subject.Type, target.SubjectType),
		}
	}
	report.add("subject type %q matches", spec.Subject.Type)

	// 3. The target output must be declared.
	out := spec.FindOutput(target.Output)
	if out == nil {
		return nil, &RejectedError{
			PolicyID: spec.ID,
			Reason:   fmt.Sprintf("no output named %q", target.Output),
		}
	}
	report.add("output %q declared (%s)", out.Name, out.Type)

	// 4. Derivation kind must match; band outputs need a non-empty table.
	if out.Derive.Kind != target.Kind {
		return nil, &RejectedError{
			PolicyID: spec.ID,
			Reason:   fmt.Sprintf("output %q derived as %s, expected %s", out.Name, out.Derive.Kind, target.Kind),
		}
	}
	if target.Kind == KindBand {
		if len(out.Derive.Bands) == 0 {
			return nil, &RejectedError{
				PolicyID: spec.ID,
				Reason:   fmt.Sprintf("output %q declares BAND derivation with an empty band table", out.Name),
			}
		}
		report.BandLabels = spec.BandLabels(target.Output)
		report.add("band table: %v", report.BandLabels)
	} else {
		report.add("derivation %s", out.Derive.Kind)
	}

	// 5. Disclosure membership is a warning, not a rejection: the claim may
	// still arrive through an alternate encoding. Deliberately lenient;
	// whether a verifier should ever trust an undisclosed claim is an open
	// product question.
	report.Disclosed = spec.Discloses(target.Output)
	if report.Disclosed {
		report.add("output %q is disclosed", target.Output)
	} else {
		report.add("warning: output %q is not in the disclosure set", target.Output)
	}

	return report, nil
}

func (r *Report) add(format string, args ...any) {
	r.Findings = append(r.Findings, fmt.Sprintf(format, args...))
}
