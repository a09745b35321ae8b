// Package domain defines decision-domain profiles: what a verifying
// organization expects from a policy, which claim carries the decision,
// and the defaults used when a policy cannot be resolved.
package domain

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/attestia/veriproof/internal/policyspec"
)

//go:embed profiles/vehicle-risk.yaml
var vehicleRiskYAML []byte

//go:embed profiles/credit.yaml
var creditYAML []byte

var builtinProfiles = map[string][]byte{
	"vehicle-risk": vehicleRiskYAML,
	"credit":       creditYAML,
}

// Profile describes one decision domain (e.g. vehicle usage risk for an
// insurer, creditworthiness for a lender).
type Profile struct {
	Name           string   `yaml:"name"`
	Title          string   `yaml:"title"`
	SubjectType    string   `yaml:"subject_type"`
	TargetOutput   string   `yaml:"target_output"`
	TargetKind     string   `yaml:"target_kind"`
	ClaimName      string   `yaml:"claim_name"`
	FallbackClaim  string   `yaml:"fallback_claim"`
	DefaultTTLDays int      `yaml:"default_ttl_days"`
	DefaultBands   []string `yaml:"default_bands"`
	Scoring        Scoring  `yaml:"scoring"`
}

// Scoring holds the advisory reference-scorer parameters for a profile.
// The scorer previews what an authoritative proof is expected to compute;
// it never gates a verification decision.
type Scoring struct {
	Baseline      int     `yaml:"baseline"`
	Max           int     `yaml:"max"`
	MinDataPoints int     `yaml:"min_data_points"`
	Bonuses       []Bonus `yaml:"bonuses"`
	Cuts          []Cut   `yaml:"cuts"`
	WorstBand     string  `yaml:"worst_band"`
}

// Bonus is one independent additive scoring rule. Bonuses are not mutually
// exclusive: an input satisfying both a strict and a loose threshold on the
// same metric receives both.
type Bonus struct {
	Metric    string  `yaml:"metric"`
	Op        string  `yaml:"op"` // lt, le, ge
	Threshold float64 `yaml:"threshold"`
	Points    int     `yaml:"points"`
	Label     string  `yaml:"label"`
}

// Cut maps a minimum score to a band label. Cuts are evaluated highest
// minimum first; a score below every cut falls into WorstBand.
type Cut struct {
	Min  int    `yaml:"min"`
	Band string `yaml:"band"`
}

// Kind returns the profile's target derivation kind.
func (p *Profile) Kind() policyspec.DerivationKind {
	return policyspec.DerivationKind(p.TargetKind)
}

// Target builds the validation target this profile demands of a policy.
func (p *Profile) Target() policyspec.Target {
	return policyspec.Target{
		SubjectType: p.SubjectType,
		Output:      p.TargetOutput,
		Kind:        p.Kind(),
	}
}

// Load returns a built-in profile by name.
func Load(name string) (*Profile, error) {
	data, ok := builtinProfiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown domain profile: %q (available: %v)", name, Names())
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %q: %w", name, err)
	}
	if err := validate(&p); err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}

	return &p, nil
}

// Names lists the built-in profile names in stable order.
func Names() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validate(p *Profile) error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.SubjectType == "" {
		return fmt.Errorf("subject_type is required")
	}
	if p.TargetOutput == "" {
		return fmt.Errorf("target_output is required")
	}
	switch policyspec.DerivationKind(p.TargetKind) {
	case policyspec.KindBand, policyspec.KindPassFail:
	default:
		return fmt.Errorf("target_kind must be %q or %q, got %q", policyspec.KindBand, policyspec.KindPassFail, p.TargetKind)
	}
	if p.DefaultTTLDays <= 0 {
		return fmt.Errorf("default_ttl_days must be positive")
	}
	if policyspec.DerivationKind(p.TargetKind) == policyspec.KindBand && len(p.DefaultBands) == 0 {
		return fmt.Errorf("band profiles need a default_bands table")
	}
	return nil
}
