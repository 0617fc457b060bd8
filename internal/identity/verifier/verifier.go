// Package verifier implements the Authenticate stage: it turns a bearer credential into verified claims.
package verifier

import (
	"context"
	"errors"
	"fmt"

	"contract-mgmt/backend/internal/config"
	"contract-mgmt/backend/internal/identity"
)

// ErrInvalidCredential is returned for any credential that fails verification.
// Callers map it to Unauthenticated without exposing the cause.
var ErrInvalidCredential = errors.New("invalid credential")

// Verifier validates a bearer credential and returns its claims.
type Verifier interface {
	Verify(ctx context.Context, credential string) (identity.Claims, error)
}

// New builds the Verifier selected by cfg.AuthProvider. cfg must have passed ValidateAuth.
func New(ctx context.Context, cfg *config.Config) (Verifier, error) {
	switch cfg.AuthProvider {
	case config.AuthProviderOIDC:
		return NewOIDC(ctx, cfg.AuthIssuerURL, cfg.AuthAudience)
	case config.AuthProviderKratos:
		return NewKratos(cfg.KratosPublicURL), nil
	case config.AuthProviderJWT:
		return NewStaticKey(cfg.AuthJWTPublicKey, cfg.AuthIssuerURL, cfg.AuthAudience)
	default:
		return nil, fmt.Errorf("verifier: unsupported provider %q", cfg.AuthProvider)
	}
}

// Func adapts a function to Verifier. Handy for tests and local tooling.
type Func func(ctx context.Context, credential string) (identity.Claims, error)

// Verify calls f.
func (f Func) Verify(ctx context.Context, credential string) (identity.Claims, error) {
	return f(ctx, credential)
}
