package verifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	kratos "github.com/ory/kratos-client-go"

	"contract-mgmt/backend/internal/identity"
)

const kratosTimeout = 3 * time.Second

// Kratos verifies Ory Kratos session tokens via the public whoami endpoint.
// The identity id becomes sub and the email trait becomes email.
type Kratos struct {
	client *kratos.APIClient
}

// NewKratos returns a verifier talking to the Kratos public API at baseURL.
func NewKratos(baseURL string) *Kratos {
	cfg := kratos.NewConfiguration()
	cfg.Servers = kratos.ServerConfigurations{{URL: baseURL}}
	cfg.HTTPClient = &http.Client{Timeout: kratosTimeout}
	return &Kratos{client: kratos.NewAPIClient(cfg)}
}

// Verify resolves the session token to an active session.
func (k *Kratos) Verify(ctx context.Context, credential string) (identity.Claims, error) {
	ctx, cancel := context.WithTimeout(ctx, kratosTimeout)
	defer cancel()

	session, resp, err := k.client.FrontendAPI.ToSession(ctx).XSessionToken(credential).Execute()
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: kratos status %d", ErrInvalidCredential, resp.StatusCode)
		}
		return nil, fmt.Errorf("kratos whoami: %w", err)
	}
	if session.Active != nil && !*session.Active {
		return nil, fmt.Errorf("%w: session inactive", ErrInvalidCredential)
	}
	if session.Identity == nil {
		return nil, fmt.Errorf("%w: session has no identity", ErrInvalidCredential)
	}

	claims := identity.Claims{"sub": session.Identity.Id}
	if traits, ok := session.Identity.Traits.(map[string]any); ok {
		if email, ok := traits["email"].(string); ok {
			claims[identity.StandardEmailClaim] = email
		}
	}
	return claims, nil
}
