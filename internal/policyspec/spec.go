// Package policyspec models proof-policy specifications: the declarative
// documents describing what a proof attests, its accepted subject, declared
// outputs, disclosure rules, and validity window. It also implements the
// acceptability checks a verifier runs before trusting a proof.
package policyspec

import "strings"

// DerivationKind tags how an output's disclosed value is derived.
type DerivationKind string

const (
	KindBand     DerivationKind = "BAND"
	KindPassFail DerivationKind = "PASS_FAIL"
)

// Spec is a policy specification as served by the proof platform.
type Spec struct {
	ID         string      `json:"id" yaml:"id"`
	Version    string      `json:"version" yaml:"version"`
	Metadata   Metadata    `json:"metadata" yaml:"metadata"`
	Subject    Subject     `json:"subject" yaml:"subject"`
	Outputs    []Output    `json:"outputs" yaml:"outputs"`
	Disclosure *Disclosure `json:"disclosure,omitempty" yaml:"disclosure,omitempty"`
	Validity   *Validity   `json:"validity,omitempty" yaml:"validity,omitempty"`
}

// Metadata carries display fields not used for acceptance decisions.
type Metadata struct {
	Title string `json:"title" yaml:"title"`
}

// Subject describes what entity the policy's proof is about.
type Subject struct {
	Type string `json:"type" yaml:"type"`
}

// Output is one declared output of the policy's circuit. Names are unique
// within a policy.
type Output struct {
	Name   string     `json:"name" yaml:"name"`
	Type   string     `json:"type" yaml:"type"`
	Derive Derivation `json:"derive" yaml:"derive"`
}

// Derivation is a tagged variant over DerivationKind. Bands is meaningful
// only when Kind is BAND; its order is significant, the list index is the
// canonical encoding of the disclosed claim value.
type Derivation struct {
	Kind  DerivationKind `json:"kind" yaml:"kind"`
	Bands []Band         `json:"bands,omitempty" yaml:"bands,omitempty"`
}

// Band is one label in an ordered classification table.
type Band struct {
	Label string `json:"label" yaml:"label"`
}

// Disclosure lists the output names the policy promises to expose as
// plaintext claims in an issued credential.
type Disclosure struct {
	ExposeClaims []string `json:"exposeClaims" yaml:"exposeClaims"`
}

// Validity declares how long a completed proof stays acceptable.
type Validity struct {
	TTL string `json:"ttl" yaml:"ttl"`
}

// FindOutput returns the output with the given name, or nil.
func (s *Spec) FindOutput(name string) *Output {
	for i := range s.Outputs {
		if s.Outputs[i].Name == name {
			return &s.Outputs[i]
		}
	}
	return nil
}

// Discloses reports whether the policy promises to expose the named output
// as a plaintext claim.
func (s *Spec) Discloses(name string) bool {
	if s.Disclosure == nil {
		return false
	}
	for _, c := range s.Disclosure.ExposeClaims {
		if c == name {
			return true
		}
	}
	return false
}

// BandLabels returns the ordered band labels of the named output, or nil if
// the output is absent or carries no band table.
func (s *Spec) BandLabels(name string) []string {
	out := s.FindOutput(name)
	if out == nil || len(out.Derive.Bands) == 0 {
		return nil
	}
	labels := make([]string, len(out.Derive.Bands))
	for i, b := range out.Derive.Bands {
		labels[i] = b.Label
	}
	return labels
}

// HasVersionPrefix reports whether the spec's version string begins with the
// given major prefix (e.g. "0."). Full semver range matching is a known
// future requirement; prefix matching is the current acceptance rule.
func (s *Spec) HasVersionPrefix(prefix string) bool {
	return strings.HasPrefix(s.Version, prefix)
}
