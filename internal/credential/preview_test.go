package credential

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestDecodePreview(t *testing.T) {
	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "did:web:platform.example",
		"sub": "org-1234",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	p, err := DecodePreview(signed)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Issuer != "did:web:platform.example" || p.Subject != "org-1234" {
		t.Errorf("unexpected preview %+v", p)
	}
	if p.ExpiresAt == nil || !p.ExpiresAt.Equal(exp) {
		t.Errorf("exp = %v, want %v", p.ExpiresAt, exp)
	}
	if !strings.Contains(p.Summary(), "unverified") {
		t.Errorf("summary must flag unverified decode: %q", p.Summary())
	}
}

func TestDecodePreviewRejectsGarbage(t *testing.T) {
	if _, err := DecodePreview(""); err == nil {
		t.Error("empty token should error")
	}
	if _, err := DecodePreview("not.a.jwt"); err == nil {
		t.Error("malformed token should error")
	}
}
