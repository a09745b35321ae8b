// Package credential inspects issued credential JWTs for display.
// Decoding here is unverified and informational only; the authoritative
// signature check is the platform's verify call.
package credential

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Preview is the displayable metadata of a credential JWT.
type Preview struct {
	Issuer    string
	Subject   string
	ExpiresAt *time.Time
}

// DecodePreview parses a credential JWT without verifying its signature.
func DecodePreview(token string) (*Preview, error) {
	if token == "" {
		return nil, fmt.Errorf("empty credential token")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode credential: %w", err)
	}

	p := &Preview{}
	if iss, err := claims.GetIssuer(); err == nil {
		p.Issuer = iss
	}
	if sub, err := claims.GetSubject(); err == nil {
		p.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		p.ExpiresAt = &t
	}
	return p, nil
}

// Summary renders the preview as a single display line.
func (p *Preview) Summary() string {
	s := fmt.Sprintf("iss=%s", p.Issuer)
	if p.Subject != "" {
		s += fmt.Sprintf(" sub=%s", p.Subject)
	}
	if p.ExpiresAt != nil {
		s += fmt.Sprintf(" exp=%s", p.ExpiresAt.Format(time.RFC3339))
	}
	return s + " (unverified decode)"
}
