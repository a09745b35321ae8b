package policyspec

import (
	"regexp"
	"strconv"
)

// TTL encodings accepted from policy validity descriptors: an ISO-8601-like
// whole-day duration ("P90D") or a bare day count ("90d"). Both are
// case-insensitive.
var (
	isoDayTTL  = regexp.MustCompile(`(?i)^P(\d+)D$`)
	bareDayTTL = regexp.MustCompile(`(?i)^(\d+)D$`)
)

// ParseTTLDays parses a validity TTL string into a whole day count.
// The second return is false when the string matches neither encoding;
// callers then fall back to their domain default.
func ParseTTLDays(ttl string) (int, bool) {
	for _, re := range []*regexp.Regexp{isoDayTTL, bareDayTTL} {
		if m := re.FindStringSubmatch(ttl); m != nil {
			days, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, false
			}
			return days, true
		}
	}
	return 0, false
}

// TTLDays resolves the spec's validity window in days, falling back to
// defaultDays when the spec is nil, has no validity descriptor, or carries
// an unparseable TTL.
func TTLDays(spec *Spec, defaultDays int) int {
	if spec == nil || spec.Validity == nil {
		return defaultDays
	}
	if days, ok := ParseTTLDays(spec.Validity.TTL); ok {
		return days
	}
	return defaultDays
}
