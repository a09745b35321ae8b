package verify

import (
	"context"
	"fmt"

	"github.com/attestia/veriproof/internal/policyspec"
)

// Resolution is the outcome of the policy resolution chain. Resolved false
// is an explicit "no policy" variant, never a bare nil surprise: the run
// continues without acceptability checks, on domain defaults.
type Resolution struct {
	Spec     *policyspec.Spec
	Source   string // "embedded", "lookup", "listing", or "" when unresolved
	Resolved bool
	Tried    []string
}

// resolveStrategy is one best-effort policy source. It returns nil, nil
// when the source has nothing; errors are treated the same way (the chain
// is best-effort, not transactional).
type resolveStrategy struct {
	name string
	fn   func(ctx context.Context) (*policyspec.Spec, error)
}

// resolvePolicy tries each strategy in order and short-circuits on the
// first success.
func resolvePolicy(ctx context.Context, strategies []resolveStrategy) Resolution {
	res := Resolution{}
	for _, s := range strategies {
		res.Tried = append(res.Tried, s.name)
		spec, err := s.fn(ctx)
		if err != nil || spec == nil {
			continue
		}
		res.Spec = spec
		res.Source = s.name
		res.Resolved = true
		return res
	}
	return res
}

// embeddedStrategy serves a policy spec the sharing party attached to the
// proof, avoiding a redundant fetch.
func embeddedStrategy(spec *policyspec.Spec) resolveStrategy {
	return resolveStrategy{
		name: "embedded",
		fn: func(context.Context) (*policyspec.Spec, error) {
			return spec, nil
		},
	}
}

// lookupStrategy fetches the policy by id.
func lookupStrategy(client Platform, policyID string) resolveStrategy {
	return resolveStrategy{
		name: "lookup",
		fn: func(ctx context.Context) (*policyspec.Spec, error) {
			return client.GetPolicy(ctx, policyID)
		},
	}
}

// listingStrategy scans the full policy listing for a matching id, for
// platforms where direct lookup is unavailable to the caller's role.
func listingStrategy(client Platform, policyID string) resolveStrategy {
	return resolveStrategy{
		name: "listing",
		fn: func(ctx context.Context) (*policyspec.Spec, error) {
			specs, err := client.ListPolicies(ctx)
			if err != nil {
				return nil, err
			}
			for i := range specs {
				if specs[i].ID == policyID {
					return &specs[i], nil
				}
			}
			return nil, fmt.Errorf("policy %s not in listing", policyID)
		},
	}
}
