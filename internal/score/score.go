// Package score implements the advisory reference scorer: a deterministic
// preview of what an authoritative proof circuit is expected to compute.
// Display only: it never gates a verification decision.
package score

import (
	"fmt"
	"sort"

	"github.com/attestia/veriproof/internal/domain"
)

// Input is the metric set a candidate would submit as private inputs,
// keyed by metric name (mileage, speedMax, dataPoints, ...).
type Input map[string]float64

// Applied records one bonus that fired.
type Applied struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// Result is a computed reference score.
type Result struct {
	Score   int       `json:"score"`
	Band    string    `json:"band"`
	Applied []Applied `json:"applied"`
	// SufficientData is false when the input carries fewer data points
	// than the profile requires for a meaningful preview.
	SufficientData bool `json:"sufficient_data"`
}

// Compute scores an input against a profile's scoring parameters. Bonuses
// are independent and additive: an input under both a strict and a loose
// threshold on the same metric earns both. The total is clamped to the
// profile maximum and mapped to a band via the profile cuts.
func Compute(p *domain.Profile, in Input) Result {
	s := p.Scoring
	total := s.Baseline

	var applied []Applied
	for _, b := range s.Bonuses {
		v, ok := in[b.Metric]
		if !ok {
			continue
		}
		if satisfies(v, b.Op, b.Threshold) {
			total += b.Points
			applied = append(applied, Applied{Label: b.Label, Points: b.Points})
		}
	}

	if total > s.Max {
		total = s.Max
	}

	return Result{
		Score:          total,
		Band:           bandFor(s, total),
		Applied:        applied,
		SufficientData: in["dataPoints"] >= float64(s.MinDataPoints),
	}
}

func satisfies(v float64, op string, threshold float64) bool {
	switch op {
	case "lt":
		return v < threshold
	case "le":
		return v <= threshold
	case "ge":
		return v >= threshold
	default:
		return false
	}
}

// bandFor maps a score to a band label, checking cuts highest minimum
// first. A score below every cut lands in the worst band.
func bandFor(s domain.Scoring, total int) string {
	cuts := make([]domain.Cut, len(s.Cuts))
	copy(cuts, s.Cuts)
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].Min > cuts[j].Min })

	for _, c := range cuts {
		if total >= c.Min {
			return c.Band
		}
	}
	return s.WorstBand
}

// FormatText renders a result for console display.
func FormatText(p *domain.Profile, in Input, r Result) string {
	out := fmt.Sprintf("Reference score (%s): %d → %s\n", p.Title, r.Score, r.Band)
	out += fmt.Sprintf("  baseline %d\n", p.Scoring.Baseline)
	for _, a := range r.Applied {
		out += fmt.Sprintf("  +%-3d %s\n", a.Points, a.Label)
	}
	if !r.SufficientData {
		out += fmt.Sprintf("  note: fewer than %d data points; preview may be unreliable\n", p.Scoring.MinDataPoints)
	}
	out += "  advisory only; the authoritative result comes from the proof circuit\n"
	return out
}
