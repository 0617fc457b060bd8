package verifier

import (
	"context"
	"crypto"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"contract-mgmt/backend/internal/identity"
	"contract-mgmt/backend/internal/security"
)

// StaticKey verifies RS256/ES256 JWTs against one configured public key.
// Used for local development and tests where no identity provider runs.
type StaticKey struct {
	key    crypto.PublicKey
	method jwt.SigningMethod
	opts   []jwt.ParserOption
}

// NewStaticKey parses pemOrPath. Empty issuer or audience skips that check.
func NewStaticKey(pemOrPath, issuer, audience string) (*StaticKey, error) {
	pub, err := security.ParsePublicKey(pemOrPath)
	if err != nil {
		return nil, fmt.Errorf("jwt verifier: %w", err)
	}
	method := security.SigningMethodFor(pub)
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return &StaticKey{key: pub, method: method, opts: opts}, nil
}

// Verify checks signature, expiry and, when configured, issuer and audience.
func (s *StaticKey) Verify(_ context.Context, credential string) (identity.Claims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(credential, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	return identity.Claims(claims), nil
}
