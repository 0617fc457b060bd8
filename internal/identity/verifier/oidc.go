package verifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"contract-mgmt/backend/internal/identity"
)

// OIDC verifies JWT access tokens against the issuer's discovered JWKS (e.g. Auth0).
type OIDC struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDC runs discovery against issuer. audience is checked against the aud claim.
func NewOIDC(ctx context.Context, issuer, audience string) (*OIDC, error) {
	if issuer == "" || audience == "" {
		return nil, errors.New("oidc verifier: issuer and audience are required")
	}
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	return &OIDC{verifier: provider.Verifier(&oidc.Config{ClientID: audience})}, nil
}

// NewOIDCWithVerifier wraps an already configured go-oidc verifier.
func NewOIDCWithVerifier(v *oidc.IDTokenVerifier) *OIDC {
	return &OIDC{verifier: v}
}

// Verify checks signature, issuer, audience and expiry, then returns every claim in the token.
func (o *OIDC) Verify(ctx context.Context, credential string) (identity.Claims, error) {
	tok, err := o.verifier.Verify(ctx, credential)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	claims := identity.Claims{}
	if err := tok.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: decode claims: %v", ErrInvalidCredential, err)
	}
	return claims, nil
}
