package freshness

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/attestia/veriproof/internal/policyspec"
)

var now = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func specWithTTL(ttl string) *policyspec.Spec {
	return &policyspec.Spec{Validity: &policyspec.Validity{TTL: ttl}}
}

func TestBoundaryEqualityIsFresh(t *testing.T) {
	completed := daysAgo(90)
	result, err := Check(&completed, daysAgo(120), specWithTTL("P90D"), 30, now)
	if err != nil {
		t.Fatalf("age == ttl must be fresh: %v", err)
	}
	if result.AgeDays != 90 || result.TTLDays != 90 {
		t.Errorf("got age %d ttl %d, want 90/90", result.AgeDays, result.TTLDays)
	}
}

func TestOneDayPastTTLIsExpired(t *testing.T) {
	completed := daysAgo(91)
	_, err := Check(&completed, daysAgo(120), specWithTTL("P90D"), 30, now)

	var expired *ExpiredError
	if !errors.As(err, &expired) {
		t.Fatalf("expected ExpiredError, got %v", err)
	}
	if expired.AgeDays != 91 || expired.TTLDays != 90 {
		t.Errorf("got age %d ttl %d, want 91/90", expired.AgeDays, expired.TTLDays)
	}
	if !strings.Contains(expired.Error(), "request a fresh proof") {
		t.Errorf("remediation hint missing from %q", expired.Error())
	}
}

func TestFallbackTimestampWhenNoCompletion(t *testing.T) {
	result, err := Check(nil, daysAgo(10), specWithTTL("P90D"), 30, now)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if result.AgeDays != 10 {
		t.Errorf("age from fallback timestamp = %d, want 10", result.AgeDays)
	}
}

func TestDomainDefaultWhenNoPolicy(t *testing.T) {
	completed := daysAgo(31)
	_, err := Check(&completed, daysAgo(31), nil, 30, now)
	var expired *ExpiredError
	if !errors.As(err, &expired) {
		t.Fatalf("expected expiry against domain default, got %v", err)
	}
	if expired.TTLDays != 30 {
		t.Errorf("ttl = %d, want domain default 30", expired.TTLDays)
	}
}

func TestDomainDefaultWhenTTLUnparseable(t *testing.T) {
	completed := daysAgo(45)
	result, err := Check(&completed, daysAgo(45), specWithTTL("forever"), 90, now)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if result.TTLDays != 90 || result.FromPolicy {
		t.Errorf("got ttl %d fromPolicy %v, want 90/false", result.TTLDays, result.FromPolicy)
	}
}

func TestAgeTruncatesTowardZero(t *testing.T) {
	completed := now.Add(-47 * time.Hour) // 1.958 days
	result, err := Check(&completed, completed, specWithTTL("P1D"), 30, now)
	if err != nil {
		t.Fatalf("1.96 days must truncate to age 1: %v", err)
	}
	if result.AgeDays != 1 {
		t.Errorf("age = %d, want 1", result.AgeDays)
	}
}
