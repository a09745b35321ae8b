// Package freshness decides whether a completed proof is still within its
// policy's validity window.
package freshness

import (
	"fmt"
	"time"

	"github.com/attestia/veriproof/internal/policyspec"
)

// ExpiredError is a fatal freshness failure. The proof cannot regain
// freshness within one run; the remediation is to request a new proof.
type ExpiredError struct {
	AgeDays int
	TTLDays int
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("proof is %d days old, exceeds %d-day validity window; request a fresh proof", e.AgeDays, e.TTLDays)
}

// Result records what the check measured, for the run trace.
type Result struct {
	ProvedAt time.Time
	AgeDays  int
	TTLDays  int
	// FromPolicy is true when the TTL came from the policy's validity
	// descriptor rather than the domain default.
	FromPolicy bool
}

// Check computes proof age against the resolved TTL.
//
// Proved-at time is completedAt when present, else fallback (the job or
// share creation time). Age is whole days, truncated toward zero. The TTL
// comes from the policy's validity descriptor when parseable, else
// defaultTTLDays. Boundary equality counts as fresh: age == ttl passes.
func Check(completedAt *time.Time, fallback time.Time, spec *policyspec.Spec, defaultTTLDays int, now time.Time) (*Result, error) {
	provedAt := fallback
	if completedAt != nil {
		provedAt = *completedAt
	}

	age := int(now.Sub(provedAt).Hours() / 24)

	ttl := defaultTTLDays
	fromPolicy := false
	if spec != nil && spec.Validity != nil {
		if days, ok := policyspec.ParseTTLDays(spec.Validity.TTL); ok {
			ttl = days
			fromPolicy = true
		}
	}

	if age > ttl {
		return nil, &ExpiredError{AgeDays: age, TTLDays: ttl}
	}

	return &Result{
		ProvedAt:   provedAt,
		AgeDays:    age,
		TTLDays:    ttl,
		FromPolicy: fromPolicy,
	}, nil
}
