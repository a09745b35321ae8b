// Package claims decodes raw disclosed claim values into human-meaningful
// results. Decoding runs after cryptographic verification has already
// succeeded, so it never fails: unknown shapes degrade to synthesized
// output instead of aborting.
package claims

import (
	"fmt"
	"strconv"

	"github.com/attestia/veriproof/internal/policyspec"
)

// BandResult is the outcome of band-mode resolution.
type BandResult struct {
	Index int
	Label string
	// Source names which table produced the label: "policy", "default",
	// or "synthesized".
	Source string
}

// ResolveBand maps a disclosed claim to a band label.
//
// The claim is read under name, falling back to fallbackName when absent.
// Numeric values are used as the band index directly; strings are parsed as
// numbers; anything else is treated as index 0. The label comes from the
// policy's band table, else defaultBands, else a synthesized "Band <index>".
func ResolveBand(claimSet map[string]any, name, fallbackName string, spec *policyspec.Spec, outputName string, defaultBands []string) BandResult {
	idx := claimIndex(lookup(claimSet, name, fallbackName))

	if spec != nil {
		if labels := spec.BandLabels(outputName); idx >= 0 && idx < len(labels) {
			return BandResult{Index: idx, Label: labels[idx], Source: "policy"}
		}
	}
	if idx >= 0 && idx < len(defaultBands) {
		return BandResult{Index: idx, Label: defaultBands[idx], Source: "default"}
	}
	return BandResult{Index: idx, Label: fmt.Sprintf("Band %d", idx), Source: "synthesized"}
}

// ResolvePassFail maps a disclosed claim to a boolean outcome. Numeric 1,
// boolean true, and the string "1" are positive; everything else, including
// an absent claim, is negative.
func ResolvePassFail(claimSet map[string]any, name, fallbackName string) bool {
	switch v := lookup(claimSet, name, fallbackName).(type) {
	case bool:
		return v
	case float64:
		return v == 1
	case int:
		return v == 1
	case int64:
		return v == 1
	case string:
		return v == "1"
	default:
		return false
	}
}

func lookup(claimSet map[string]any, name, fallbackName string) any {
	if v, ok := claimSet[name]; ok {
		return v
	}
	if fallbackName != "" {
		if v, ok := claimSet[fallbackName]; ok {
			return v
		}
	}
	return nil
}

// claimIndex coerces a raw claim value to a band index. JSON numbers arrive
// as float64; platform SDKs occasionally deliver numeric strings.
func claimIndex(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case string:
		if parsed, err := strconv.ParseFloat(n, 64); err == nil {
			return int(parsed)
		}
		return 0
	default:
		return 0
	}
}
