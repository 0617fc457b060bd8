package rbac

import (
	"context"

	"contract-mgmt/backend/internal/membership/domain"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/policy/engine"
)

// RequireOrgMember returns the caller's membership in orgID (any role) or NotAMember.
func (c *Checker) RequireOrgMember(ctx context.Context, userID, orgID string) (*domain.Membership, error) {
	m, err := c.decide(ctx, userID, orgID, engine.ActionOrganizationRead)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.ErrNotAMember
	}
	return m, nil
}
