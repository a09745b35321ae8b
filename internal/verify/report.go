package verify

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/attestia/veriproof/internal/credential"
)

// ANSI colors for the console trace.
const (
	green = "\033[0;32m"
	cyan  = "\033[0;36m"
	dim   = "\033[2m"
	bold  = "\033[1m"
	reset = "\033[0m"
)

// FormatText renders a report as a numbered step trace plus a decision
// block. Step numbers come from enumerating the executed steps.
func FormatText(r *Report, color bool) string {
	var b strings.Builder

	c := func(code, s string) string {
		if !color {
			return s
		}
		return code + s + reset
	}

	header := fmt.Sprintf("Verification (%s, %s)", r.Domain, r.Mode)
	fmt.Fprintln(&b, c(bold, header))
	fmt.Fprintln(&b, strings.Repeat("─", len(header)))

	for i, step := range r.Trace.Steps {
		fmt.Fprintf(&b, "%s %s\n", c(cyan, fmt.Sprintf("[%d/%d]", i+1, len(r.Trace.Steps))), step.Title)
		for _, d := range step.Details {
			fmt.Fprintf(&b, "      %s\n", c(dim, d))
		}
	}

	fmt.Fprintln(&b, strings.Repeat("─", len(header)))
	fmt.Fprintf(&b, "Issuer:   %s\n", r.Issuer)
	if r.Subject != "" {
		fmt.Fprintf(&b, "Subject:  %s\n", r.Subject)
	}
	if preview, err := credential.DecodePreview(credentialJWT(r)); err == nil {
		fmt.Fprintf(&b, "Credential: %s\n", preview.Summary())
	}
	fmt.Fprintf(&b, "Decision: %s\n", c(green, r.Decision.Label))

	return b.String()
}

// FormatJSON renders a report for machine consumption.
func FormatJSON(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data), nil
}

func credentialJWT(r *Report) string {
	if r.Credential == nil {
		return ""
	}
	return r.Credential.JWT
}
