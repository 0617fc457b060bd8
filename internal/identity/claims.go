// Package identity turns verified token claims into the caller's stable subject and email.
package identity

import (
	"strings"

	"contract-mgmt/backend/internal/platform/apperr"
)

// StandardEmailClaim is the OIDC email claim used when the custom claim is absent.
const StandardEmailClaim = "email"

// Claims is a verified claim set produced by the Authenticate stage.
type Claims map[string]any

// Caller is the identity asserted by the provider.
type Caller struct {
	Subject string
	Email   string
}

// Extractor reads subject and email from Claims. It has no side effects.
type Extractor struct {
	emailClaims []string
}

// NewExtractor returns an Extractor that tries customEmailClaim before the standard email claim.
func NewExtractor(customEmailClaim string) *Extractor {
	claims := make([]string, 0, 2)
	if c := strings.TrimSpace(customEmailClaim); c != "" && c != StandardEmailClaim {
		claims = append(claims, c)
	}
	return &Extractor{emailClaims: append(claims, StandardEmailClaim)}
}

// Extract returns the caller or apperr.ErrMissingSubject / apperr.ErrMissingEmail.
func (e *Extractor) Extract(c Claims) (Caller, error) {
	sub := stringClaim(c, "sub")
	if sub == "" {
		return Caller{}, apperr.ErrMissingSubject
	}
	for _, name := range e.emailClaims {
		if email := stringClaim(c, name); email != "" {
			return Caller{Subject: sub, Email: email}, nil
		}
	}
	return Caller{}, apperr.ErrMissingEmail
}

func stringClaim(c Claims, name string) string {
	v, ok := c[name].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
